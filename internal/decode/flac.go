package decode

import (
	"errors"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
)

// FLAC decodes a FLAC stream into mono PCM16. The source name is used only
// for error messages.
func FLAC(r io.Reader, source string) (*PCM, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("invalid FLAC file %s: %w", source, err)
	}
	defer func() { _ = stream.Close() }()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)

	// Reject stereo before decoding any frames; the channel count is known
	// from the STREAMINFO block.
	if err := checkMono(channels, source); err != nil {
		return nil, err
	}

	var samples []int16
	if info.NSamples > 0 {
		samples = make([]int16, 0, info.NSamples)
	}
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode FLAC frame from %s: %w", source, err)
		}
		for _, v := range frame.Subframes[0].Samples {
			samples = append(samples, toInt16(int(v), bitDepth))
		}
	}

	if err := checkNotEmpty(samples, source); err != nil {
		return nil, err
	}

	return &PCM{
		Samples: samples,
		Rate:    int(info.SampleRate),
		Source:  source,
	}, nil
}
