package modal

import (
	"math"

	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/mode"
)

// Term is an admitted mode that couples to the source, with everything the
// accumulator needs precomputed. Terms are immutable once prepared.
type Term struct {
	Mode        mode.Mode
	Kx, Ky, Kz  float64
	OmegaN      float64
	SourceShape float64 // φ(r₀)
}

// ShapeAt evaluates sin(kx·x)·sin(ky·y)·sin(kz·z) at p.
func ShapeAt(kx, ky, kz float64, p geometry.Point) float64 {
	return math.Sin(kx*p.X) * math.Sin(ky*p.Y) * math.Sin(kz*p.Z)
}

// Shape evaluates the term's mode shape at p.
func (t Term) Shape(p geometry.Point) float64 {
	return ShapeAt(t.Kx, t.Ky, t.Kz, p)
}

// AxisShape returns sin(k·c) for every coordinate c.
func AxisShape(k float64, coords []float64) []float64 {
	out := make([]float64, len(coords))
	for i, c := range coords {
		out[i] = math.Sin(k * c)
	}

	return out
}

// Params holds the engine-owned constants used to prepare terms.
type Params struct {
	SpeedOfSound float64
	Epsilon      float64
}

// DefaultParams returns 343 m/s and a 1e-8 floor.
func DefaultParams() Params {
	return Params{SpeedOfSound: DefaultSpeedOfSound, Epsilon: DefaultEpsilon}
}

// Prepare turns a mode sequence into accumulator terms. Modes with
// |φ(source)| < Epsilon are returned in skipped, in input order, and have
// no term.
func Prepare(r geometry.Room, source geometry.Point, modes []mode.Mode, p Params) (terms []Term, skipped []mode.Mode) {
	terms = make([]Term, 0, len(modes))
	for _, m := range modes {
		kx, ky, kz := Wavenumbers(m, r)
		phiSrc := ShapeAt(kx, ky, kz, source)
		if math.Abs(phiSrc) < p.Epsilon {
			skipped = append(skipped, m)
			continue
		}

		terms = append(terms, Term{
			Mode:        m,
			Kx:          kx,
			Ky:          ky,
			Kz:          kz,
			OmegaN:      p.SpeedOfSound * math.Sqrt(kx*kx+ky*ky+kz*kz),
			SourceShape: phiSrc,
		})
	}

	return terms, skipped
}
