package testutil

import "github.com/cwbudde/algo-room/room/geometry"

// ShoeboxRoom returns the 5 m × 4 m × 3 m reference room.
func ShoeboxRoom() geometry.Room {
	return geometry.MustNew(5, 4, 3)
}

// OffCenterSource returns a source position in the shoebox room that lies on
// no pressure node of the low-order modes.
func OffCenterSource() geometry.Point {
	return geometry.Point{X: 1.1, Y: 0.7, Z: 0.9}
}

// Ramp returns n values evenly spaced over [0, 1].
func Ramp(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}
