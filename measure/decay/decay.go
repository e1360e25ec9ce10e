package decay

import (
	"errors"
	"math"
)

// Errors returned by the analyzer.
var (
	ErrEmpty             = errors.New("decay: impulse response is empty")
	ErrInvalidSampleRate = errors.New("decay: sample rate must be positive")
	ErrNoDecay           = errors.New("decay: insufficient decay for a reverberation estimate")
)

// floorDB is the value assigned where no energy remains.
const floorDB = -200.0

// Window is a dB interval of the Schroeder curve used for a linear fit.
type Window struct {
	StartDB, EndDB float64
}

// Standard fit windows.
var (
	WindowEDT = Window{StartDB: 0, EndDB: -10}
	WindowT20 = Window{StartDB: -5, EndDB: -25}
	WindowT30 = Window{StartDB: -5, EndDB: -35}
)

// Metrics holds the estimated decay times in seconds. A zero value means the
// curve never reached the window's end level.
type Metrics struct {
	EDT       float64
	T20       float64
	T30       float64
	RT60      float64 // T30 when available, else T20
	PeakIndex int     // analysis starts here
}

// Analyzer estimates decay times at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer returns an Analyzer for sampleRate Hz.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// Analyze fits EDT, T20 and T30 starting at the absolute peak of h. It
// returns ErrNoDecay when neither T20 nor T30 can be fitted.
func (a *Analyzer) Analyze(h []float64) (Metrics, error) {
	if len(h) == 0 {
		return Metrics{}, ErrEmpty
	}
	if a.SampleRate <= 0 {
		return Metrics{}, ErrInvalidSampleRate
	}

	peak := peakIndex(h)
	curve := schroeder(h[peak:])

	m := Metrics{
		PeakIndex: peak,
		EDT:       a.fit(curve, WindowEDT),
		T20:       a.fit(curve, WindowT20),
		T30:       a.fit(curve, WindowT30),
	}

	m.RT60 = m.T30
	if m.RT60 == 0 {
		m.RT60 = m.T20
	}
	if m.RT60 == 0 {
		return m, ErrNoDecay
	}

	return m, nil
}

// Schroeder returns the backward-integrated energy curve of h in dB,
// normalized to 0 dB at the first sample.
func (a *Analyzer) Schroeder(h []float64) ([]float64, error) {
	if len(h) == 0 {
		return nil, ErrEmpty
	}

	return schroeder(h), nil
}

// Fit returns the decay time extrapolated to -60 dB from the slope of curve
// over w, or 0 if the curve does not span w.
func (a *Analyzer) Fit(curve []float64, w Window) float64 {
	return a.fit(curve, w)
}

func schroeder(h []float64) []float64 {
	out := make([]float64, len(h))

	var tail float64
	for i := len(h) - 1; i >= 0; i-- {
		tail += h[i] * h[i]
		out[i] = tail
	}

	total := out[0]
	if total <= 0 {
		for i := range out {
			out[i] = floorDB
		}
		return out
	}

	for i, e := range out {
		if e <= 0 {
			out[i] = floorDB
			continue
		}
		out[i] = 10 * math.Log10(e/total)
	}

	return out
}

func (a *Analyzer) fit(curve []float64, w Window) float64 {
	if len(curve) == 0 || a.SampleRate <= 0 {
		return 0
	}

	start, end := -1, -1
	for i, v := range curve {
		if start < 0 && v <= w.StartDB {
			start = i
		}
		if start >= 0 && v <= w.EndDB {
			end = i
			break
		}
	}
	if start < 0 || end <= start {
		return 0
	}

	// Least-squares slope in dB per sample.
	n := float64(end - start + 1)
	var sx, sy, sxx, sxy float64
	for i := start; i <= end; i++ {
		x := float64(i - start)
		y := curve[i]
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
	}

	den := n*sxx - sx*sx
	if den == 0 {
		return 0
	}

	slope := (n*sxy - sx*sy) / den
	if slope >= 0 {
		return 0
	}

	return -60 / (slope * a.SampleRate)
}

func peakIndex(h []float64) int {
	idx := 0
	best := 0.0
	for i, v := range h {
		if av := math.Abs(v); av > best {
			best = av
			idx = i
		}
	}

	return idx
}
