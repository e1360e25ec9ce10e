// Package modal evaluates the modal expansion of the driven Green's function
// of the damped wave equation inside a rectangular room.
//
// Each admitted mode (nx, ny, nz) contributes
//
//	φ(r)·φ(r₀) / D(ω)
//
// to the complex pressure at r, where φ is the separable shape
// sin(kx·x)·sin(ky·y)·sin(kz·z), r₀ the source position and
//
//	D(ω) = (ωn² − ω²) + i·ζ·2ωn·ω
//
// the damped modal denominator. |D| is floored to a small epsilon so that a
// drive exactly on resonance with ζ = 0 stays finite; values near that floor
// are a numerical clamp, not a physical peak amplitude.
//
// Modes whose shape vanishes at the source cannot be excited by it. [Prepare]
// drops them and reports them separately instead of summing a near-zero
// product through a clamped denominator.
package modal
