package harmonic

import "gonum.org/v1/gonum/floats"

// Sampler recomputes the reference and superposed curves.
type Sampler struct {
	GridSize     int
	Omega        float64
	Coefficients Coefficients
	// ReferenceGain multiplies the reference curve on top of its pair count.
	// The asymmetry model drives its reference at twice the single-pair force.
	ReferenceGain float64
}

// Result is the output of one recompute.
type Result struct {
	Grid       Grid
	Reference  Curve
	Superposed Curve
	Harmonics  int
}

func NewSampler() *Sampler {
	return &Sampler{
		GridSize:      DefaultGridSize,
		Omega:         1.0,
		Coefficients:  Debalances(),
		ReferenceGain: 1.0,
	}
}

// Sample builds a fresh grid and evaluates both curves for n harmonics.
func (s *Sampler) Sample(n int) (*Result, error) {
	if err := checkCount(n, s.Coefficients.Len()); err != nil {
		return nil, err
	}
	grid, err := BuildTimeGrid(s.GridSize)
	if err != nil {
		return nil, err
	}

	ref := ReferenceCurve(grid, 1, s.Coefficients.Mass[0], s.Coefficients.Radius[0], s.Omega)
	if s.ReferenceGain != 1 {
		floats.Scale(s.ReferenceGain, ref)
	}
	sup, err := SuperposedCurve(grid, n, s.Coefficients.Mass, s.Coefficients.Radius, s.Omega)
	if err != nil {
		return nil, err
	}

	return &Result{
		Grid:       grid,
		Reference:  Zip(Legend(1), grid, ref),
		Superposed: Zip(Legend(n), grid, sup),
		Harmonics:  n,
	}, nil
}
