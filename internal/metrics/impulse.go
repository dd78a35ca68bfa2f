package metrics

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Sign picks which lobe of the force an Impulse integrates.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// Impulse integrates one lobe of the force over time with the trapezoidal rule.
// The negative lobe is reported as a positive magnitude.
type Impulse struct {
	sign Sign
	ts   []float64
	fs   []float64
}

func NewImpulse(sign Sign) *Impulse {
	return &Impulse{sign: sign}
}

func (im *Impulse) Name() string {
	if im.sign == Negative {
		return "impulse_neg"
	}
	return "impulse_pos"
}

func (im *Impulse) Observe(t, f float64) {
	if im.sign == Negative {
		f = -f
	}
	im.ts = append(im.ts, t)
	im.fs = append(im.fs, math.Max(f, 0))
}

func (im *Impulse) Value() float64 {
	if len(im.ts) < 2 {
		return 0
	}
	return integrate.Trapezoidal(im.ts, im.fs)
}

func (im *Impulse) Reset() {
	im.ts = im.ts[:0]
	im.fs = im.fs[:0]
}
