package geometry

import "fmt"

// Grid is a regular res×res×res sampling of a room, including both walls on
// every axis.
type Grid struct {
	Resolution int
	X, Y, Z    []float64
}

// NewGrid builds the per-axis coordinate vectors linspace(0, L, res).
func NewGrid(r Room, res int) (Grid, error) {
	if res < 2 {
		return Grid{}, fmt.Errorf("%w: %d", ErrResolution, res)
	}

	return Grid{
		Resolution: res,
		X:          linspace(r.lx, res),
		Y:          linspace(r.ly, res),
		Z:          linspace(r.lz, res),
	}, nil
}

// Len returns the number of voxels, Resolution³.
func (g Grid) Len() int {
	return g.Resolution * g.Resolution * g.Resolution
}

// Index returns the flat index of voxel (i, j, k).
func (g Grid) Index(i, j, k int) int {
	return (i*g.Resolution+j)*g.Resolution + k
}

// Coord returns the room position of the voxel at flat index idx.
func (g Grid) Coord(idx int) Point {
	n := g.Resolution
	k := idx % n
	j := (idx / n) % n
	i := idx / (n * n)

	return Point{X: g.X[i], Y: g.Y[j], Z: g.Z[k]}
}

func linspace(hi float64, n int) []float64 {
	out := make([]float64, n)
	step := hi / float64(n-1)
	for i := range out {
		out[i] = float64(i) * step
	}
	// pin the far wall exactly
	out[n-1] = hi

	return out
}
