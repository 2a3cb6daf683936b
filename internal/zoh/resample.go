// Package zoh implements zero-order-hold sample rate conversion.
//
// Paula plays samples with no interpolation at all: the DAC holds each byte
// until the period counter expires. Converting source material with the same
// sample-and-hold rule is therefore a faithful rendition of what the chip
// will do, not an approximation. The converter runs entirely in integer
// arithmetic (a Bresenham-style accumulator), so repeated runs on any
// platform produce bit-identical output.
package zoh

// Resample converts input at srcHz to a new slice at dstHz using
// sample-and-hold. Rates must be positive. There is no error path: empty
// input yields empty output, and extreme downsampling that rounds the output
// length to zero yields empty output as well.
func Resample(input []int16, srcHz, dstHz int) []int16 {
	if srcHz == dstHz {
		// Identity conversions must be exact copies, not round-trips through
		// the accumulator.
		out := make([]int16, len(input))
		copy(out, input)
		return out
	}

	outLen := OutputLen(len(input), srcHz, dstHz)
	if outLen == 0 {
		return []int16{}
	}

	out := make([]int16, outLen)
	last := len(input) - 1
	acc := 0
	idx := 0
	for i := 0; i < outLen; i++ {
		out[i] = input[idx]
		acc += srcHz
		for acc >= dstHz {
			acc -= dstHz
			if idx < last {
				idx++
			}
		}
	}
	return out
}

// OutputLen returns the number of output samples produced when converting n
// input samples from srcHz to dstHz: round(n * dst / src) with ties rounded
// away from zero, computed in exact integer arithmetic. Golden-output lengths
// are derived from this formula, so it must never fall back to
// floating-point rounding.
func OutputLen(n, srcHz, dstHz int) int {
	if n == 0 {
		return 0
	}
	if srcHz == dstHz {
		return n
	}
	num := 2*uint64(n)*uint64(dstHz) + uint64(srcHz)
	return int(num / (2 * uint64(srcHz)))
}
