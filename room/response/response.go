// Package response evaluates the modal Green's function at a single
// receiver over many drive frequencies, and synthesises the corresponding
// impulse response with an inverse FFT.
package response

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/modal"
)

// Errors returned by this package.
var (
	ErrInvalidLength     = errors.New("response: length must be a power of two >= 2")
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrNoTerms           = errors.New("response: no modes couple to the source")
)

// Point holds the receiver-side data for the prepared terms.
type Point struct {
	terms []modal.Term
	shape []float64 // φ(receiver) per term
}

// At binds prepared terms to a receiver position.
func At(receiver geometry.Point, terms []modal.Term) Point {
	shape := make([]float64, len(terms))
	for i, t := range terms {
		shape[i] = t.Shape(receiver)
	}

	return Point{terms: terms, shape: shape}
}

// Transfer returns G(receiver, ω) for every angular frequency in omegas.
func (p Point) Transfer(omegas []float64, zeta, eps float64) []complex128 {
	out := make([]complex128, len(omegas))
	for i, w := range omegas {
		out[i] = p.at(w, zeta, eps)
	}

	return out
}

func (p Point) at(omega, zeta, eps float64) complex128 {
	d := modal.Drive{Omega: omega, Zeta: zeta, Epsilon: eps}

	var g complex128
	for i, t := range p.terms {
		g += complex(p.shape[i], 0) * d.Weight(t)
	}

	return g
}

// ImpulseResponse samples the transfer function on n/2+1 bins from DC to
// Nyquist, mirrors it into a Hermitian spectrum and returns the real part of
// its inverse FFT. Cancellation is checked while filling the spectrum.
func (p Point) ImpulseResponse(ctx context.Context, sampleRate float64, n int, zeta, eps float64) ([]float64, error) {
	if n < 2 || bits.OnesCount(uint(n)) != 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, ErrInvalidSampleRate
	}
	if len(p.terms) == 0 {
		return nil, ErrNoTerms
	}

	spectrum := make([]complex128, n)
	half := n / 2
	binWidth := 2 * math.Pi * sampleRate / float64(n)

	for k := 0; k <= half; k++ {
		if k%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		spectrum[k] = p.at(float64(k)*binWidth, zeta, eps)
	}

	// DC and Nyquist must be real for a real signal.
	spectrum[0] = complex(real(spectrum[0]), 0)
	spectrum[half] = complex(real(spectrum[half]), 0)
	for k := 1; k < half; k++ {
		v := spectrum[k]
		spectrum[n-k] = complex(real(v), -imag(v))
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, n)
	if err := plan.Inverse(timeDomain, spectrum); err != nil {
		return nil, fmt.Errorf("response: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i, v := range timeDomain {
		out[i] = real(v)
	}

	return out, nil
}

// NextPowerOfTwo returns the smallest power of two >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
