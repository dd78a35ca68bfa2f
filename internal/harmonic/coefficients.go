package harmonic

const (
	MinHarmonics = 1
	MaxHarmonics = 6
)

// Coefficients holds per-harmonic debalance masses and radii.
// Index j describes harmonic order j+1.
type Coefficients struct {
	Mass   []float64
	Radius []float64
}

var (
	debalanceMass = [MaxHarmonics]float64{
		2.75758026171761,
		0.969494952543874,
		0.486348994233291,
		0.273755006621712,
		0.155229853500278,
		0.076567059516108,
	}
	debalanceRadius = [MaxHarmonics]float64{
		0.020070401444444,
		0.011900487555556,
		0.008428804666667,
		0.006323725555556,
		0.004761892666667,
		0.003344359555556,
	}
)

// Debalances returns a fresh copy of the six debalance pairs of the modelled vibrator.
func Debalances() Coefficients {
	mass, radius := debalanceMass, debalanceRadius
	return Coefficients{Mass: mass[:], Radius: radius[:]}
}

// Len is the number of complete mass/radius pairs.
func (c Coefficients) Len() int {
	if len(c.Mass) < len(c.Radius) {
		return len(c.Mass)
	}
	return len(c.Radius)
}

// Prefix returns a copy of the first n pairs.
func (c Coefficients) Prefix(n int) (Coefficients, error) {
	if err := checkCount(n, c.Len()); err != nil {
		return Coefficients{}, err
	}
	return Coefficients{
		Mass:   append([]float64(nil), c.Mass[:n]...),
		Radius: append([]float64(nil), c.Radius[:n]...),
	}, nil
}

// Amplitude is the peak force contribution of pair j at base frequency omega0.
func (c Coefficients) Amplitude(j int, omega0 float64) float64 {
	w := omega0 * float64(j+1)
	return c.Mass[j] * w * w * c.Radius[j]
}

// ClampCount limits n to [MinHarmonics, max].
func ClampCount(n, max int) int {
	if n < MinHarmonics {
		return MinHarmonics
	}
	if n > max {
		return max
	}
	return n
}

func checkCount(n, available int) error {
	if n < MinHarmonics || n > available {
		return &CountError{Requested: n, Available: available}
	}
	return nil
}
