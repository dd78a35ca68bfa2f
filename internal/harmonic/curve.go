package harmonic

import (
	"fmt"
	"math"
)

// ReferenceCurve evaluates count·m·ω²·r·cos(ω·t) at every grid point.
func ReferenceCurve(grid Grid, count int, mass, radius, omega float64) []float64 {
	amp := float64(count) * mass * omega * omega * radius
	out := make([]float64, len(grid))
	for i, t := range grid {
		out[i] = amp * math.Cos(omega*t)
	}
	return out
}

// SuperposedCurve evaluates Σ m[j]·ω_j²·r[j]·cos(ω_j·t) with ω_j = omega0·(j+1)
// for the first n pairs.
func SuperposedCurve(grid Grid, n int, mass, radius []float64, omega0 float64) ([]float64, error) {
	available := len(mass)
	if len(radius) < available {
		available = len(radius)
	}
	if err := checkCount(n, available); err != nil {
		return nil, err
	}

	omega := make([]float64, n)
	amp := make([]float64, n)
	for j := range omega {
		omega[j] = omega0 * float64(j+1)
		amp[j] = mass[j] * omega[j] * omega[j] * radius[j]
	}

	out := make([]float64, len(grid))
	for i, t := range grid {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += amp[j] * math.Cos(omega[j]*t)
		}
		out[i] = sum
	}
	return out, nil
}

// Point is one plotted sample.
type Point struct {
	X, Y float64
}

// Curve is a labelled sequence of points.
type Curve struct {
	Label  string
	Points []Point
}

// Zip pairs grid points with values. Extra entries on either side are dropped.
func Zip(label string, grid Grid, values []float64) Curve {
	n := len(grid)
	if len(values) < n {
		n = len(values)
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point{X: grid[i], Y: values[i]}
	}
	return Curve{Label: label, Points: pts}
}

// Xs returns the abscissas.
func (c Curve) Xs() []float64 {
	xs := make([]float64, len(c.Points))
	for i, p := range c.Points {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the ordinates.
func (c Curve) Ys() []float64 {
	ys := make([]float64, len(c.Points))
	for i, p := range c.Points {
		ys[i] = p.Y
	}
	return ys
}

func (c Curve) Len() int { return len(c.Points) }

// Legend formats the "N = k" label used on plots.
func Legend(n int) string {
	return fmt.Sprintf("N = %d", n)
}
