package decode

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modkit/svxconv"
)

// writeWAV writes a PCM WAV file for decoder tests.
func writeWAV(t *testing.T, path string, rate, bitDepth, channels int, data []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	enc := wav.NewEncoder(f, rate, bitDepth, channels, 1)
	err = enc.Write(&audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	require.NoError(t, err)
	require.NoError(t, enc.Close())
}

func TestWAV_Mono16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	writeWAV(t, path, 44100, 16, 1, []int{-32768, -1, 0, 1, 32767})

	pcm, err := File(path)
	require.NoError(t, err)

	assert.Equal(t, 44100, pcm.Rate)
	assert.Equal(t, []int16{-32768, -1, 0, 1, 32767}, pcm.Samples)
	assert.Equal(t, path, pcm.Source)
}

func TestWAV_StereoRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, 44100, 16, 2, []int{0, 0, 100, 100})

	_, err := File(path)
	require.ErrorIs(t, err, svxconv.ErrNonMono)
	assert.Contains(t, err.Error(), "2 channels")
	assert.Contains(t, err.Error(), path)
}

func TestWAV_EmptyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wav")
	writeWAV(t, path, 44100, 16, 1, []int{})

	_, err := File(path)
	require.ErrorIs(t, err, svxconv.ErrEmptyAudio)
}

func TestWAV_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav file"), 0o644))

	_, err := File(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid WAV file")
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File("/nonexistent/input.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestFile_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.mp3")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := File(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported input format")
}

func TestFLAC_InvalidStream(t *testing.T) {
	_, err := FLAC(bytes.NewReader([]byte("definitely not flac")), "bad.flac")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid FLAC file")
}

func TestToInt16(t *testing.T) {
	tests := []struct {
		name     string
		v        int
		bitDepth int
		want     int16
	}{
		{"16-bit passthrough", -12345, 16, -12345},
		{"24-bit narrows", 0x123456, 24, 0x1234},
		{"24-bit negative", -0x800000, 24, -0x8000},
		{"32-bit narrows", 0x12345678, 32, 0x1234},
		{"8-bit signed widens", -128, 8, -32768},
		{"unknown depth passthrough", 100, 20, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toInt16(tt.v, tt.bitDepth))
		})
	}
}
