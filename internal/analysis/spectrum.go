package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/ijustbsd/pogruzhatel/internal/harmonic"
)

var ErrShortCurve = errors.New("analysis: curve too short for requested orders")

// HarmonicAmplitudes returns the peak amplitude of harmonic orders 1..orders.
// The closing grid point repeats the first one and is left out of the transform.
func HarmonicAmplitudes(c harmonic.Curve, orders int) ([]float64, error) {
	ys := c.Ys()
	if len(ys) > 1 {
		ys = ys[:len(ys)-1]
	}
	n := len(ys)
	if orders < 1 || n <= 2*orders {
		return nil, fmt.Errorf("%w: %d samples, %d orders", ErrShortCurve, n, orders)
	}

	spectrum := fft.FFTReal(ys)
	amps := make([]float64, orders)
	for k := 1; k <= orders; k++ {
		amps[k-1] = 2 * cmplx.Abs(spectrum[k]) / float64(n)
	}
	return amps, nil
}

// PowerSpectrum returns |X_k| for the first half of the spectrum.
func PowerSpectrum(c harmonic.Curve) []float64 {
	ys := c.Ys()
	if len(ys) == 0 {
		return nil
	}
	spectrum := fft.FFTReal(ys)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantOrder is the 1-based order of the largest amplitude, or 0 for none.
func DominantOrder(amps []float64) int {
	best, order := math.Inf(-1), 0
	for i, a := range amps {
		if a > best {
			best, order = a, i+1
		}
	}
	return order
}
