package decode

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// WAV decodes a RIFF/WAVE stream into mono PCM16. The source name is used
// only for error messages.
func WAV(r io.ReadSeeker, source string) (*PCM, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", source)
	}

	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	// Reject stereo before reading any sample data.
	if err := checkMono(format.NumChannels, source); err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data from %s: %w", source, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			// 8-bit WAV is unsigned.
			samples[i] = int16((v - 128) << 8)
		} else {
			samples[i] = toInt16(v, bitDepth)
		}
	}

	if err := checkNotEmpty(samples, source); err != nil {
		return nil, err
	}

	return &PCM{
		Samples: samples,
		Rate:    format.SampleRate,
		Source:  source,
	}, nil
}
