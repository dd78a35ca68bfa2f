// Package analysis inspects sampled force curves in the frequency domain.
//
//   - [HarmonicAmplitudes]: peak amplitude of each harmonic order
//   - [DominantOrder]: the order carrying the largest amplitude
//
// The curve is assumed to cover exactly one period of the base frequency,
// as produced by harmonic.BuildTimeGrid. Bin k of the transform is then
// harmonic order k:
//
//	amps, _ := analysis.HarmonicAmplitudes(res.Superposed, 6)
//	k := analysis.DominantOrder(amps)
package analysis
