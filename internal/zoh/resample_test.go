package zoh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResample_Identity(t *testing.T) {
	input := []int16{-32768, -1, 0, 1, 255, 256, 32767}

	out := Resample(input, 44100, 44100)
	assert.Equal(t, input, out)

	// The fast path must copy, never alias the caller's buffer.
	out[0] = 99
	assert.Equal(t, int16(-32768), input[0])
}

func TestResample_EmptyInput(t *testing.T) {
	assert.Empty(t, Resample(nil, 44100, 8287))
	assert.Empty(t, Resample([]int16{}, 8000, 44100))
}

func TestResample_ExtremeDownsampleToZeroLength(t *testing.T) {
	// round(1 * 2 / 44100) == 0: not an error, just no output.
	out := Resample([]int16{1234}, 44100, 2)
	assert.Empty(t, out)
}

func TestResample_SingleSampleInput(t *testing.T) {
	out := Resample([]int16{-7}, 8000, 44100)
	require.Len(t, out, 6) // round(1 * 44100 / 8000)
	for i, s := range out {
		assert.Equal(t, int16(-7), s, "index %d", i)
	}
}

func TestResample_DownsampleHoldsEverySecondSample(t *testing.T) {
	// 4 -> 2 Hz: cursor advances two inputs per output.
	out := Resample([]int16{1, 2, 3, 4}, 4, 2)
	assert.Equal(t, []int16{1, 3}, out)
}

func TestResample_UpsampleRepeatsSamples(t *testing.T) {
	out := Resample([]int16{10, 20}, 1, 3)
	assert.Equal(t, []int16{10, 10, 10, 20, 20, 20}, out)
}

func TestResample_NeverReadsPastEnd(t *testing.T) {
	// Upsampling by a non-integer ratio parks the cursor on the final sample
	// for the tail of the output instead of running off the slice.
	out := Resample([]int16{5, 6, 7}, 3, 7)
	require.Len(t, out, 7)
	assert.Equal(t, int16(5), out[0])
	assert.Equal(t, int16(7), out[len(out)-1])
}

func TestResample_Deterministic(t *testing.T) {
	input := make([]int16, 4410)
	for i := range input {
		input[i] = int16(i*31 - 16384)
	}

	first := Resample(input, 44100, 8287)
	second := Resample(input, 44100, 8287)
	assert.Equal(t, first, second)
}

func TestOutputLen_LengthLaw(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		src, dst int
		want     int
	}{
		{"44100 to C-2 rate", 44100, 44100, 8287, 8287},
		{"48000 to 22050", 48000, 48000, 22050, 22050},
		{"8000 to 44100", 8000, 8000, 44100, 44100},
		{"short buffer down", 1000, 44100, 8287, 188},
		{"short buffer half", 1000, 48000, 22050, 459},
		{"short buffer up", 100, 8000, 44100, 551},
		{"empty", 0, 44100, 8287, 0},
		{"identity", 123, 8287, 8287, 123},
		{"rounds half away from zero", 1, 2, 1, 1}, // 0.5 rounds up, not to even
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputLen(tt.n, tt.src, tt.dst))
			assert.Len(t, Resample(make([]int16, tt.n), tt.src, tt.dst), tt.want)
		})
	}
}

func TestResample_ImpulsePreservation(t *testing.T) {
	// A single non-zero input sample must come out as one run of consecutive
	// equal samples, floor(k) or ceil(k) long for upsample ratio k, never
	// smeared across non-adjacent positions.
	input := make([]int16, 50)
	input[20] = 1000

	for _, rates := range [][2]int{{8000, 44100}, {8287, 22050}, {11025, 16574}} {
		src, dst := rates[0], rates[1]
		out := Resample(input, src, dst)

		first, last := -1, -1
		for i, s := range out {
			if s != 0 {
				require.Equal(t, int16(1000), s, "rate %d->%d index %d", src, dst, i)
				if first == -1 {
					first = i
				}
				last = i
			}
		}
		require.NotEqual(t, -1, first, "impulse lost at %d->%d", src, dst)

		run := last - first + 1
		floorK := dst / src
		ceilK := (dst + src - 1) / src
		assert.GreaterOrEqual(t, run, floorK, "run too short at %d->%d", src, dst)
		assert.LessOrEqual(t, run, ceilK, "run too long at %d->%d", src, dst)

		// No zeros inside the run.
		for i := first; i <= last; i++ {
			assert.Equal(t, int16(1000), out[i], "hole in impulse run at %d", i)
		}
	}
}
