package viz

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	panelFPS       = 60
	panelFrequency = 8.0
	panelDamping   = 1.0
)

// slidePanel animates a panel width towards its open or closed size.
type slidePanel struct {
	spring harmonica.Spring
	width  float64
	vel    float64
	full   float64
	open   bool
}

func newSlidePanel(full int, open bool) slidePanel {
	p := slidePanel{
		spring: harmonica.NewSpring(harmonica.FPS(panelFPS), panelFrequency, panelDamping),
		full:   float64(full),
		open:   open,
	}
	if open {
		p.width = p.full
	}
	return p
}

func (p *slidePanel) target() float64 {
	if p.open {
		return p.full
	}
	return 0
}

func (p *slidePanel) Toggle() { p.open = !p.open }

// Step advances the spring by one frame and snaps once it has settled.
func (p *slidePanel) Step() {
	p.width, p.vel = p.spring.Update(p.width, p.vel, p.target())
	if math.Abs(p.width-p.target()) < 0.5 && math.Abs(p.vel) < 0.5 {
		p.width, p.vel = p.target(), 0
	}
}

func (p *slidePanel) Moving() bool {
	return p.width != p.target() || p.vel != 0
}

// Width is the current width in whole cells, never negative.
func (p *slidePanel) Width() int {
	w := int(math.Round(p.width))
	if w < 0 {
		return 0
	}
	return w
}
