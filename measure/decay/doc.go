// Package decay estimates reverberation times from an impulse response via
// Schroeder backward integration.
//
// The backward-integrated energy curve
//
//	S(t) = 10·log10( ∫_t^∞ h²(τ) dτ / ∫_0^∞ h²(τ) dτ )
//
// is fitted by least squares over a dB window and extrapolated to -60 dB:
//
//   - EDT: 0 to -10 dB
//   - T20: -5 to -25 dB
//   - T30: -5 to -35 dB
//
// In this module the impulse responses come from the modal sum at a
// receiver (package response), so the measured decay can be compared
// against the Sabine estimate used by the statistical regime.
//
// # Usage
//
//	a := decay.NewAnalyzer(8000)
//	m, err := a.Analyze(h)
//	fmt.Printf("T30 = %.2f s\n", m.T30)
package decay
