package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Dimension bounds in meters.
const (
	MinDimension = 1.0
	MaxDimension = 50.0
)

// Errors returned by geometry constructors.
var (
	ErrDimension   = errors.New("geometry: room dimension out of range")
	ErrOutsideRoom = errors.New("geometry: point lies outside the room")
	ErrResolution  = errors.New("geometry: grid resolution must be >= 2")
)

// Room is an immutable rectangular enclosure with side lengths in meters.
type Room struct {
	lx, ly, lz float64
}

// New validates the three side lengths and returns the room.
func New(lx, ly, lz float64) (Room, error) {
	for _, d := range []struct {
		name string
		v    float64
	}{{"Lx", lx}, {"Ly", ly}, {"Lz", lz}} {
		if math.IsNaN(d.v) || d.v < MinDimension || d.v > MaxDimension {
			return Room{}, fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrDimension, d.name, d.v, MinDimension, MaxDimension)
		}
	}

	return Room{lx: lx, ly: ly, lz: lz}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(lx, ly, lz float64) Room {
	r, err := New(lx, ly, lz)
	if err != nil {
		panic(err)
	}

	return r
}

// Dims returns the side lengths (Lx, Ly, Lz).
func (r Room) Dims() (lx, ly, lz float64) { return r.lx, r.ly, r.lz }

// Lx returns the x side length.
func (r Room) Lx() float64 { return r.lx }

// Ly returns the y side length.
func (r Room) Ly() float64 { return r.ly }

// Lz returns the z side length.
func (r Room) Lz() float64 { return r.lz }

// SurfaceArea returns the total wall, floor and ceiling area in m².
func (r Room) SurfaceArea() float64 {
	return 2 * (r.lx*r.ly + r.lx*r.lz + r.ly*r.lz)
}

// Volume returns the enclosed volume in m³.
func (r Room) Volume() float64 {
	return r.lx * r.ly * r.lz
}

// Center returns the geometric centre of the room.
func (r Room) Center() Point {
	return Point{X: r.lx / 2, Y: r.ly / 2, Z: r.lz / 2}
}

// Contains reports whether p lies inside the closed box [0,L] on every axis.
func (r Room) Contains(p Point) bool {
	return inRange(p.X, r.lx) && inRange(p.Y, r.ly) && inRange(p.Z, r.lz)
}

// CheckPoint returns ErrOutsideRoom naming the first offending axis.
func (r Room) CheckPoint(p Point) error {
	switch {
	case !inRange(p.X, r.lx):
		return fmt.Errorf("%w: x=%g not in [0, %g]", ErrOutsideRoom, p.X, r.lx)
	case !inRange(p.Y, r.ly):
		return fmt.Errorf("%w: y=%g not in [0, %g]", ErrOutsideRoom, p.Y, r.ly)
	case !inRange(p.Z, r.lz):
		return fmt.Errorf("%w: z=%g not in [0, %g]", ErrOutsideRoom, p.Z, r.lz)
	}

	return nil
}

func (r Room) String() string {
	return fmt.Sprintf("%gx%gx%g m", r.lx, r.ly, r.lz)
}

func inRange(v, hi float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= hi
}

// Point is a position in room coordinates (meters).
type Point struct {
	X, Y, Z float64
}
