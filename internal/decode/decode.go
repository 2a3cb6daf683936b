// Package decode turns supported audio files into mono 16-bit PCM for the
// converter core.
//
// The core itself never touches a file; this package is the upstream
// boundary. Its one hard contract with the core is the mono rule: any input
// reporting a channel count other than 1 is rejected before any resampling
// can happen. Bit depths other than 16 are widened or narrowed by plain
// shifts, with no dithering.
package decode

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/modkit/svxconv"
)

// PCM is a decoded mono clip.
type PCM struct {
	// Samples is the mono 16-bit audio.
	Samples []int16

	// Rate is the source sample rate in Hz.
	Rate int

	// Source names the origin for diagnostics, usually the file path.
	Source string
}

// File decodes an audio file based on its extension. Supported: .wav, .flac.
func File(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return WAV(f, path)
	case ".flac":
		return FLAC(f, path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .wav or .flac): %s",
			filepath.Ext(path), path)
	}
}

// checkMono rejects any input reporting a channel count other than 1.
func checkMono(channels int, source string) error {
	if channels != 1 {
		return fmt.Errorf("%w: %d channels in %s", svxconv.ErrNonMono, channels, source)
	}
	return nil
}

// checkNotEmpty rejects inputs that decoded to zero samples.
func checkNotEmpty(samples []int16, source string) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: %s", svxconv.ErrEmptyAudio, source)
	}
	return nil
}

// toInt16 narrows or widens a raw sample of the given signed bit depth.
func toInt16(v int, bitDepth int) int16 {
	switch bitDepth {
	case 8:
		return int16(v << 8)
	case 16:
		return int16(v)
	case 24:
		return int16(v >> 8)
	case 32:
		return int16(v >> 16)
	default:
		return int16(v)
	}
}
