package harmonic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultGridSize is the number of samples per period used by the mini-apps.
const DefaultGridSize = 1001

// Grid is an ordered set of uniformly spaced time samples.
type Grid []float64

// BuildTimeGrid returns count points spanning one period, -π to π inclusive.
func BuildTimeGrid(count int) (Grid, error) {
	return BuildGrid(-math.Pi, math.Pi, count)
}

// BuildGrid returns count points spanning [a, b] inclusive.
func BuildGrid(a, b float64, count int) (Grid, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, count)
	}
	return Grid(floats.Span(make([]float64, count), a, b)), nil
}

// Step is the spacing between neighbouring points.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return (g[len(g)-1] - g[0]) / float64(len(g)-1)
}

func (g Grid) Len() int { return len(g) }
