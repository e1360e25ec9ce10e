package field

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DefaultEpsilon is the range floor used by Normalize.
const DefaultEpsilon = 1e-8

// Magnitude returns |re + i·im| per voxel.
func Magnitude(re, im []float64) []float64 {
	if len(re) == 0 {
		return nil
	}

	out := make([]float64, len(re))
	vecmath.Magnitude(out, re, im)

	return out
}

// Snapshot returns Re(G·e^{iωt}) = re·cos(ωt) − im·sin(ωt) per voxel.
func Snapshot(re, im []float64, omega, t float64) []float64 {
	s, c := math.Sincos(omega * t)
	out := make([]float64, len(re))
	for i := range out {
		out[i] = re[i]*c - im[i]*s
	}

	return out
}

// Normalize maps p to (p − min)/(range + eps). The result lies in [0, 1)
// for any finite input; a flat field becomes all zeros. eps <= 0 uses
// DefaultEpsilon.
func Normalize(p []float64, eps float64) []float64 {
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}

	lo, hi := MinMax(p)
	scale := 1 / (hi - lo + eps)
	for i, v := range p {
		out[i] = (v - lo) * scale
	}

	return out
}

// MinMax returns the smallest and largest element. It returns (0, 0) for an
// empty slice.
func MinMax(p []float64) (lo, hi float64) {
	if len(p) == 0 {
		return 0, 0
	}

	lo, hi = p[0], p[0]
	for _, v := range p[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
