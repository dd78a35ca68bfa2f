package metrics

import "math"

type Peak struct {
	max     float64
	samples int
}

func NewPeak() *Peak { return &Peak{} }

func (p *Peak) Name() string { return "peak_force" }

func (p *Peak) Observe(t, f float64) {
	if p.samples == 0 || f > p.max {
		p.max = f
	}
	p.samples++
}

func (p *Peak) Value() float64 { return p.max }

func (p *Peak) Reset() {
	p.max = 0
	p.samples = 0
}

type Trough struct {
	min     float64
	samples int
}

func NewTrough() *Trough { return &Trough{} }

func (tr *Trough) Name() string { return "trough_force" }

func (tr *Trough) Observe(t, f float64) {
	if tr.samples == 0 || f < tr.min {
		tr.min = f
	}
	tr.samples++
}

func (tr *Trough) Value() float64 { return tr.min }

func (tr *Trough) Reset() {
	tr.min = 0
	tr.samples = 0
}

// Asymmetry is the ratio of the peak driving force to the peak pulling force.
// A symmetric vibrator gives 1.
type Asymmetry struct {
	peak   Peak
	trough Trough
}

func NewAsymmetry() *Asymmetry { return &Asymmetry{} }

func (a *Asymmetry) Name() string { return "asymmetry" }

func (a *Asymmetry) Observe(t, f float64) {
	a.peak.Observe(t, f)
	a.trough.Observe(t, f)
}

func (a *Asymmetry) Value() float64 {
	lo := math.Abs(a.trough.Value())
	if lo == 0 {
		return 0
	}
	return a.peak.Value() / lo
}

func (a *Asymmetry) Reset() {
	a.peak.Reset()
	a.trough.Reset()
}
