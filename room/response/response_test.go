package response

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-room/internal/testutil"
	"github.com/cwbudde/algo-room/measure/decay"
	"github.com/cwbudde/algo-room/room/geometry"
	"github.com/cwbudde/algo-room/room/modal"
	"github.com/cwbudde/algo-room/room/mode"
)

func shoeboxTerms(t *testing.T, limits mode.Limits) []modal.Term {
	t.Helper()
	terms, _ := modal.Prepare(testutil.ShoeboxRoom(), testutil.OffCenterSource(),
		mode.Collect(limits, mode.FilterAll), modal.DefaultParams())
	if len(terms) == 0 {
		t.Fatal("no terms")
	}
	return terms
}

func TestTransferMatchesFieldVoxel(t *testing.T) {
	r := testutil.ShoeboxRoom()
	terms := shoeboxTerms(t, mode.Limits{NX: 3, NY: 3, NZ: 3})
	g, err := geometry.NewGrid(r, 24)
	if err != nil {
		t.Fatal(err)
	}

	omega := 2 * math.Pi * 120
	drive := modal.Drive{Omega: omega, Zeta: 0.02, Epsilon: modal.DefaultEpsilon}
	f, err := modal.Accumulate(context.Background(), g, terms, drive, 2)
	if err != nil {
		t.Fatal(err)
	}

	idx := g.Index(7, 15, 4)
	p := At(g.Coord(idx), terms)
	got := p.Transfer([]float64{omega}, drive.Zeta, drive.Epsilon)[0]
	want := f.At(idx)

	scale := math.Max(math.Hypot(real(want), imag(want)), 1e-30)
	if math.Hypot(real(got-want), imag(got-want))/scale > 1e-9 {
		t.Errorf("Transfer = %v, field voxel = %v", got, want)
	}
}

func TestImpulseResponseDecays(t *testing.T) {
	terms := shoeboxTerms(t, mode.Limits{NX: 3, NY: 3, NZ: 3})
	p := At(geometry.Point{X: 3.7, Y: 1.3, Z: 2.2}, terms)

	const (
		sampleRate = 8000.0
		n          = 8192
		zeta       = 0.05
	)

	h, err := p.ImpulseResponse(context.Background(), sampleRate, n, zeta, modal.DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != n {
		t.Fatalf("len = %d", len(h))
	}
	testutil.RequireFinite(t, h)

	var early, late float64
	for i, v := range h {
		switch {
		case i < n/4:
			early += v * v
		case i >= 3*n/4:
			late += v * v
		}
	}
	if early == 0 || late > early*1e-6 {
		t.Fatalf("no decay: early %g late %g", early, late)
	}

	m, err := decay.NewAnalyzer(sampleRate).Analyze(h)
	if err != nil {
		t.Fatal(err)
	}

	// The slowest coupled mode, (1,1,1), loses 60 dB of energy in
	// 6.91/(ζ·ωn) seconds; faster modes only shorten the estimate.
	slowest := 6.91 / (zeta * terms[0].OmegaN)
	if m.RT60 <= 0.2*slowest || m.RT60 > 1.2*slowest {
		t.Errorf("modal RT60 = %.3f s, slowest mode %.3f s", m.RT60, slowest)
	}
}

func TestImpulseResponseErrors(t *testing.T) {
	ctx := context.Background()
	p := At(geometry.Point{X: 1, Y: 1, Z: 1}, shoeboxTerms(t, mode.Limits{NX: 1, NY: 1, NZ: 1}))

	if _, err := p.ImpulseResponse(ctx, 8000, 1000, 0.01, 1e-8); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("length: %v", err)
	}
	if _, err := p.ImpulseResponse(ctx, 0, 1024, 0.01, 1e-8); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("sample rate: %v", err)
	}
	if _, err := At(geometry.Point{}, nil).ImpulseResponse(ctx, 8000, 1024, 0.01, 1e-8); !errors.Is(err, ErrNoTerms) {
		t.Errorf("no terms: %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := p.ImpulseResponse(cancelled, 8000, 1024, 0.01, 1e-8); !errors.Is(err, context.Canceled) {
		t.Errorf("cancel: %v", err)
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	for in, want := range map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 1000: 1024, 1024: 1024, 1025: 2048} {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}
