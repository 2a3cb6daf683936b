// Package quantize reduces 16-bit PCM to the 8-bit byte stream Paula plays.
package quantize

// Bytes maps each 16-bit sample to one output byte by biasing into unsigned
// range and keeping the top 8 bits. The shift always lands in 0..255, so
// there is no clamping and no branching on sign:
//
//	-32768 -> 0, 0 -> 128, 32767 -> 255
//
// No rounding or dither is applied; truncation keeps the mapping exact and
// platform-independent.
func Bytes(samples []int16) []byte {
	out := make([]byte, len(samples))
	for i, s := range samples {
		out[i] = byte((int32(s) + 32768) >> 8)
	}
	return out
}
