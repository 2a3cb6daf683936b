// Package testutil provides shared test signal generators for converter tests.
package testutil

import "math"

// Sine returns n samples of a sine wave at freq Hz sampled at rateHz,
// scaled to the given peak amplitude.
func Sine(freq float64, rateHz, n int, amplitude int16) []int16 {
	out := make([]int16, n)
	w := 2 * math.Pi * freq / float64(rateHz)
	for i := range out {
		out[i] = int16(float64(amplitude) * math.Sin(w*float64(i)))
	}
	return out
}

// Impulse returns n zero samples with a single non-zero sample at pos.
func Impulse(n, pos int, amplitude int16) []int16 {
	out := make([]int16, n)
	out[pos] = amplitude
	return out
}

// Ramp returns n samples rising linearly from lo to hi inclusive.
func Ramp(n int, lo, hi int16) []int16 {
	out := make([]int16, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = lo
		return out
	}
	span := float64(hi) - float64(lo)
	for i := range out {
		out[i] = int16(float64(lo) + span*float64(i)/float64(n-1))
	}
	return out
}
