package hybrid

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-room/room/geometry"
)

func TestSelectCrossoverIsInclusive(t *testing.T) {
	tests := []struct {
		drive, crossover float64
		want             Regime
	}{
		{100, 800, Modal},
		{800, 800, Modal},
		{800.5, 800, Statistical},
		{3000, 100, Statistical},
	}

	for _, tc := range tests {
		if got := Select(tc.drive, tc.crossover); got != tc.want {
			t.Errorf("Select(%g, %g) = %v, want %v", tc.drive, tc.crossover, got, tc.want)
		}
	}
}

func TestRegimeString(t *testing.T) {
	if Modal.String() != "modal" || Statistical.String() != "statistical" {
		t.Errorf("labels = %q, %q", Modal, Statistical)
	}
}

func TestSabine(t *testing.T) {
	r := geometry.MustNew(5, 4, 3)
	got := Sabine(r, 0.2, 1e-8)
	want := 0.161 * 60 / (94*0.2 + 1e-8)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Sabine = %v, want %v", got, want)
	}

	// More absorption, shorter reverberation.
	if Sabine(r, 0.8, 1e-8) >= got {
		t.Error("RT60 did not fall with absorption")
	}
}

func TestDecayFactor(t *testing.T) {
	rt60 := 0.5137

	if got := DecayFactor(0, rt60); got != 1 {
		t.Errorf("DecayFactor(0) = %v, want exactly 1", got)
	}

	got := DecayFactor(rt60, rt60)
	if math.Abs(got-math.Exp(-6.91)) > 1e-15 {
		t.Errorf("DecayFactor(RT60) = %v, want exp(-6.91)", got)
	}
	if math.Abs(got-0.000998) > 1e-6 {
		t.Errorf("DecayFactor(RT60) = %v, want ≈ 0.000998", got)
	}
}

func TestUniformField(t *testing.T) {
	f := UniformField(27, 0.25)
	if len(f) != 27 {
		t.Fatalf("len = %d", len(f))
	}
	for i, v := range f {
		if v != 0.25 {
			t.Fatalf("f[%d] = %v", i, v)
		}
	}
}

func TestSchroederFrequency(t *testing.T) {
	got := SchroederFrequency(0.5, 60)
	want := 2000 * math.Sqrt(0.5/60)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SchroederFrequency = %v, want %v", got, want)
	}
	if SchroederFrequency(0, 60) != 0 {
		t.Error("non-positive RT60 must give 0")
	}
}
