package modal

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

// Default physical and numerical constants.
const (
	DefaultSpeedOfSound = 343.0 // m/s
	DefaultEpsilon      = 1e-8
)

// Wavenumbers returns kx = π·nx/Lx, ky = π·ny/Ly, kz = π·nz/Lz in rad/m.
func Wavenumbers(m mode.Mode, r geometry.Room) (kx, ky, kz float64) {
	lx, ly, lz := r.Dims()

	return math.Pi * float64(m.NX) / lx,
		math.Pi * float64(m.NY) / ly,
		math.Pi * float64(m.NZ) / lz
}

// NaturalFrequency returns the angular eigenfrequency ωn = c·|k| in rad/s.
func NaturalFrequency(m mode.Mode, r geometry.Room, speedOfSound float64) float64 {
	kx, ky, kz := Wavenumbers(m, r)

	return speedOfSound * math.Sqrt(kx*kx+ky*ky+kz*kz)
}

// NaturalFrequencyHz returns ωn / 2π.
func NaturalFrequencyHz(m mode.Mode, r geometry.Room, speedOfSound float64) float64 {
	return NaturalFrequency(m, r, speedOfSound) / (2 * math.Pi)
}

// Denominator returns the damped modal denominator
// (ωn² − ω²) + i·ζ·(2ωn)·ω for drive frequency omega.
func Denominator(omegaN, omega, zeta float64) complex128 {
	critical := 2 * omegaN

	return complex(omegaN*omegaN-omega*omega, zeta*critical*omega)
}

// ClampDenominator replaces d by eps when |d| <= eps.
func ClampDenominator(d complex128, eps float64) complex128 {
	if cmplx.Abs(d) <= eps {
		return complex(eps, 0)
	}

	return d
}

// Drive describes the harmonic excitation shared by every mode of a sum.
type Drive struct {
	Omega   float64 // angular drive frequency, rad/s
	Zeta    float64 // fraction of critical damping
	Epsilon float64 // denominator floor
}

// Weight returns φ(r₀)/D for one prepared term, the complex factor that
// multiplies the term's grid shape.
func (d Drive) Weight(t Term) complex128 {
	den := ClampDenominator(Denominator(t.OmegaN, d.Omega, d.Zeta), d.Epsilon)

	return complex(t.SourceShape, 0) / den
}
