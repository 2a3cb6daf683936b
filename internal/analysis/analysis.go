// Package analysis computes level and pitch diagnostics for conversion
// reports.
//
// Everything here is advisory output for the operator: cramming material
// into 8 bits at a low rate is lossy, and knowing the source level and
// dominant pitch helps pick a target note. Nothing in this package feeds the
// deterministic transcoding path.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// maxFFTWindow bounds the analysis window; longer inputs are truncated.
	maxFFTWindow = 32768

	// minFFTWindow is the shortest input worth estimating a pitch from.
	minFFTWindow = 256

	fullScale = 32768.0
)

// Levels summarizes signal level relative to full scale.
type Levels struct {
	// PeakDBFS is the largest absolute sample in dBFS (0 = full scale).
	PeakDBFS float64

	// RMSDBFS is the root-mean-square level in dBFS.
	RMSDBFS float64
}

// Measure computes peak and RMS levels over the source PCM. Silence yields
// -Inf on both fields.
func Measure(samples []int16) Levels {
	if len(samples) == 0 {
		return Levels{PeakDBFS: math.Inf(-1), RMSDBFS: math.Inf(-1)}
	}

	raw := make([]float64, len(samples))
	for i, s := range samples {
		raw[i] = float64(s)
	}
	norm := make([]float64, len(raw))
	f64.Scale(norm, raw, 1/fullScale)

	peak := 0.0
	for _, v := range norm {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	sumSq := f64.DotProductUnsafe(norm, norm)
	rms := math.Sqrt(sumSq / float64(len(norm)))

	return Levels{
		PeakDBFS: dbfs(peak),
		RMSDBFS:  dbfs(rms),
	}
}

// DominantFrequency estimates the strongest spectral component of the input
// in Hz. It analyzes a power-of-two window from the start of the clip and
// returns 0 when the input is too short or has no energy. The resolution is
// rateHz/window, which is plenty for choosing a tracker note.
func DominantFrequency(samples []int16, rateHz int) float64 {
	window := fftWindow(len(samples))
	if window == 0 || rateHz <= 0 {
		return 0
	}

	data := make([]float64, window)
	for i := 0; i < window; i++ {
		data[i] = float64(samples[i]) / fullScale
	}

	fft := fourier.NewFFT(window)
	coeffs := fft.Coefficients(nil, data)

	// Skip the DC bin.
	bestBin := 0
	bestMag := 0.0
	for i := 1; i < len(coeffs); i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > bestMag {
			bestBin, bestMag = i, mag
		}
	}
	if bestBin == 0 {
		return 0
	}

	return fft.Freq(bestBin) * float64(rateHz)
}

// fftWindow returns the largest usable power-of-two window for n input
// samples, or 0 if n is too short for a meaningful estimate.
func fftWindow(n int) int {
	if n < minFFTWindow {
		return 0
	}
	if n > maxFFTWindow {
		n = maxFFTWindow
	}
	window := minFFTWindow
	for window*2 <= n {
		window *= 2
	}
	return window
}

func dbfs(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
