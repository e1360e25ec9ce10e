package decay

import (
	"errors"
	"math"
	"testing"
)

// exponentialIR returns h(t) = exp(-6.908·t/rt60), which has exactly -60 dB
// of energy decay at rt60.
func exponentialIR(sampleRate, rt60, seconds float64) []float64 {
	h := make([]float64, int(sampleRate*seconds))
	rate := 6.9078 / rt60
	for i := range h {
		h[i] = math.Exp(-rate * float64(i) / sampleRate)
	}
	return h
}

func TestAnalyzeExponentialDecay(t *testing.T) {
	for _, rt60 := range []float64{0.3, 0.8, 1.5} {
		h := exponentialIR(8000, rt60, 3*rt60)

		m, err := NewAnalyzer(8000).Analyze(h)
		if err != nil {
			t.Fatalf("rt60 %.1f: %v", rt60, err)
		}

		for name, got := range map[string]float64{"EDT": m.EDT, "T20": m.T20, "T30": m.T30, "RT60": m.RT60} {
			if math.Abs(got-rt60) > 0.05*rt60 {
				t.Errorf("rt60 %.1f: %s = %.3f", rt60, name, got)
			}
		}
		if m.PeakIndex != 0 {
			t.Errorf("PeakIndex = %d", m.PeakIndex)
		}
	}
}

func TestAnalyzeStartsAtPeak(t *testing.T) {
	h := append(make([]float64, 400), exponentialIR(8000, 0.5, 1.5)...)

	m, err := NewAnalyzer(8000).Analyze(h)
	if err != nil {
		t.Fatal(err)
	}
	if m.PeakIndex != 400 {
		t.Errorf("PeakIndex = %d, want 400", m.PeakIndex)
	}
	if math.Abs(m.T30-0.5) > 0.025 {
		t.Errorf("T30 = %.3f, want 0.5", m.T30)
	}
}

func TestSchroederIsMonotonic(t *testing.T) {
	a := NewAnalyzer(8000)
	curve, err := a.Schroeder(exponentialIR(8000, 0.5, 1))
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(curve[0]) > 1e-9 {
		t.Errorf("curve[0] = %v dB, want 0", curve[0])
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] > curve[i-1]+1e-9 {
			t.Fatalf("curve rises at %d: %v > %v", i, curve[i], curve[i-1])
		}
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := NewAnalyzer(8000).Analyze(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty: %v", err)
	}
	if _, err := NewAnalyzer(0).Analyze([]float64{1}); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("sample rate: %v", err)
	}

	// Two samples only reach -3 dB.
	short := []float64{1, 1}
	if _, err := NewAnalyzer(8000).Analyze(short); !errors.Is(err, ErrNoDecay) {
		t.Errorf("short: %v", err)
	}
}

func TestSchroederSilence(t *testing.T) {
	curve, err := NewAnalyzer(8000).Schroeder(make([]float64, 8))
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range curve {
		if v != floorDB {
			t.Fatalf("silent curve value %v, want %v", v, floorDB)
		}
	}
}

func TestFitLinearCurve(t *testing.T) {
	const (
		sampleRate = 1000.0
		rt60       = 0.4
	)

	// -60 dB after rt60 seconds, falling well past every window.
	curve := make([]float64, int(sampleRate*rt60))
	for i := range curve {
		curve[i] = -60 * float64(i) / (rt60 * sampleRate)
	}

	a := NewAnalyzer(sampleRate)
	for _, w := range []Window{WindowEDT, WindowT20, WindowT30} {
		if got := a.Fit(curve, w); math.Abs(got-rt60) > 1e-9 {
			t.Errorf("window %+v: Fit = %v, want %v", w, got, rt60)
		}
	}
}

func TestFitShortCurve(t *testing.T) {
	curve := []float64{0, -3, -6, -9, -12}

	if got := NewAnalyzer(1000).Fit(curve, WindowT30); got != 0 {
		t.Errorf("Fit = %v, want 0 for a curve that never reaches -35 dB", got)
	}
}
