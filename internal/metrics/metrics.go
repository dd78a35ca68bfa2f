package metrics

import "github.com/ijustbsd/pogruzhatel/internal/harmonic"

// Metric accumulates a scalar summary of a sampled force curve.
type Metric interface {
	Name() string
	Observe(t, f float64)
	Value() float64
	Reset()
}

// Default returns the metrics reported for every run.
func Default() []Metric {
	return []Metric{
		NewPeak(),
		NewTrough(),
		NewAsymmetry(),
		NewImpulse(Positive),
		NewImpulse(Negative),
	}
}

// Evaluate resets each metric, feeds it the curve and collects the values.
func Evaluate(c harmonic.Curve, ms ...Metric) map[string]float64 {
	if len(ms) == 0 {
		ms = Default()
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, p := range c.Points {
			m.Observe(p.X, p.Y)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
