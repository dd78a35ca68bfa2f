package harmonic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGridSize indicates a grid with fewer than two points.
	ErrInvalidGridSize = errors.New("harmonic: grid needs at least 2 points")

	// ErrInvalidHarmonicCount indicates a harmonic count outside the available coefficient pairs.
	ErrInvalidHarmonicCount = errors.New("harmonic: harmonic count out of range")
)

// CountError reports a rejected harmonic count.
type CountError struct {
	Requested int
	Available int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%v: requested %d, available 1..%d", ErrInvalidHarmonicCount, e.Requested, e.Available)
}

func (e *CountError) Unwrap() error {
	return ErrInvalidHarmonicCount
}
