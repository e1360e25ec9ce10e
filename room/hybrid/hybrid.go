// Package hybrid implements the regime switch between the modal sum and the
// statistical reverberation model, plus the Sabine decay estimate used above
// the crossover frequency.
package hybrid

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-room/room/geometry"
)

const (
	// SabineConstant is the 0.161 s/m factor of Sabine's formula.
	SabineConstant = 0.161

	// DecayExponent is the conventional 6.91 ≈ ln(10³) amplitude-decay
	// constant: exp(-DecayExponent·t/RT60) falls to about 1e-3 of the
	// pressure amplitude, a 60 dB level drop, at t = RT60.
	DecayExponent = 6.91
)

// Regime names the model that produced a field.
type Regime int

const (
	Modal Regime = iota
	Statistical
)

func (r Regime) String() string {
	switch r {
	case Modal:
		return "modal"
	case Statistical:
		return "statistical"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// Select returns Modal when drive <= crossover, Statistical otherwise.
func Select(driveHz, crossoverHz float64) Regime {
	if driveHz <= crossoverHz {
		return Modal
	}

	return Statistical
}

// Sabine returns RT60 = 0.161·V / (S·α + eps) in seconds.
func Sabine(r geometry.Room, absorption, eps float64) float64 {
	return SabineConstant * r.Volume() / (r.SurfaceArea()*absorption + eps)
}

// DecayFactor returns exp(-6.91·t/rt60). It is exactly 1 at t = 0.
func DecayFactor(t, rt60 float64) float64 {
	if t == 0 {
		return 1
	}

	return math.Exp(-DecayExponent * t / rt60)
}

// UniformField returns n copies of value.
func UniformField(n int, value float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}

	return out
}

// SchroederFrequency returns 2000·√(RT60/V), the usual estimate of the
// frequency above which modes overlap densely. It is reported as a
// suggested crossover.
func SchroederFrequency(rt60, volume float64) float64 {
	if rt60 <= 0 || volume <= 0 {
		return 0
	}

	return 2000 * math.Sqrt(rt60/volume)
}
