package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the first half of the FFT of data
// with its mean removed.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	mean := Summarize(data).Mean
	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency in cycles per
// second for data sampled at rate samples per second, and its magnitude.
// A flat series reports zero.
func DominantFrequency(data []float64, rate float64) (freq, power float64) {
	ps := PowerSpectrum(data)
	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			best = i
		}
	}
	if best == 0 {
		return 0, 0
	}
	return float64(best) * rate / float64(len(data)), power
}
