// Package harmonic evaluates the debalance force model of a vibratory driver.
//
// A vibrator with N debalance pairs rotating at multiples of a base angular
// frequency produces a force that is a cosine sum. The package samples two
// such sums over a shared time grid:
//
//   - [ReferenceCurve]: one harmonic, scaled by a repetition count
//   - [SuperposedCurve]: the first n harmonics added together
//   - [Sampler]: builds the grid and returns both curves as a [Result]
//
// # Example
//
//	s := harmonic.NewSampler()
//	res, err := s.Sample(6)
//	if err != nil {
//	    return err
//	}
//	plot(res.Reference.Points, res.Superposed.Points)
//
// All functions are pure. A [Sampler] holds only immutable parameters, so a
// single value may be shared freely.
package harmonic
