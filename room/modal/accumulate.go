package modal

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-room/room/geometry"
)

// Field is a complex pressure field stored as separate real and imaginary
// planes, each of length Resolution³ in grid order.
type Field struct {
	Re, Im []float64
}

// NewField allocates a zero field of n voxels.
func NewField(n int) *Field {
	return &Field{Re: make([]float64, n), Im: make([]float64, n)}
}

// Len returns the voxel count.
func (f *Field) Len() int { return len(f.Re) }

// At returns voxel idx as a complex value.
func (f *Field) At(idx int) complex128 {
	return complex(f.Re[idx], f.Im[idx])
}

// axisShapes caches sin(k·c) along each axis for one term.
type axisShapes struct {
	x, y, z []float64
}

// Accumulate sums every term's contribution φ(grid)·φ(r₀)/D into a new
// field. The grid is split along x into slabs, one goroutine each; every
// slab folds the terms in slice order, so the result does not depend on
// workers. workers <= 0 uses GOMAXPROCS.
//
// Cancellation is checked between terms. On cancellation no field is
// returned.
func Accumulate(ctx context.Context, g geometry.Grid, terms []Term, d Drive, workers int) (*Field, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	field := NewField(g.Len())
	if len(terms) == 0 {
		return field, nil
	}

	shapes := make([]axisShapes, len(terms))
	weights := make([]complex128, len(terms))
	for i, t := range terms {
		shapes[i] = axisShapes{
			x: AxisShape(t.Kx, g.X),
			y: AxisShape(t.Ky, g.Y),
			z: AxisShape(t.Kz, g.Z),
		}
		weights[i] = d.Weight(t)
	}

	n := g.Resolution
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	eg, egCtx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		eg.Go(func() error {
			return accumulateSlab(egCtx, field, n, lo, hi, shapes, weights)
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return field, nil
}

// accumulateSlab adds every term to the voxels with x index in [lo, hi).
func accumulateSlab(ctx context.Context, f *Field, n, lo, hi int, shapes []axisShapes, weights []complex128) error {
	for t, s := range shapes {
		if err := ctx.Err(); err != nil {
			return err
		}

		wr, wi := real(weights[t]), imag(weights[t])
		for i := lo; i < hi; i++ {
			sx := s.x[i]
			if sx == 0 {
				continue
			}
			for j := range n {
				a := sx * s.y[j]
				if a == 0 {
					continue
				}
				ar, ai := wr*a, wi*a
				base := (i*n + j) * n
				re := f.Re[base : base+n]
				im := f.Im[base : base+n]
				for k, sz := range s.z {
					re[k] += ar * sz
					im[k] += ai * sz
				}
			}
		}
	}

	return nil
}
