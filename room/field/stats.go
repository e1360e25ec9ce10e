package field

import "github.com/cwbudde/algo-vecmath"

// Stats summarizes a real field.
type Stats struct {
	Min, Max float64
	Mean     float64
	Range    float64
	Flat     bool // range below the normalization floor
}

// Summarize computes Stats for p using eps as the flatness threshold.
func Summarize(p []float64, eps float64) Stats {
	if len(p) == 0 {
		return Stats{Flat: true}
	}
	if eps <= 0 {
		eps = DefaultEpsilon
	}

	lo, hi := MinMax(p)
	var sum float64
	for _, v := range p {
		sum += v
	}

	return Stats{
		Min:   lo,
		Max:   hi,
		Mean:  sum / float64(len(p)),
		Range: hi - lo,
		Flat:  hi-lo < eps,
	}
}

// MeanEnergy returns the mean of |re + i·im|² over all voxels.
func MeanEnergy(re, im []float64) float64 {
	if len(re) == 0 {
		return 0
	}

	power := make([]float64, len(re))
	vecmath.Power(power, re, im)

	var sum float64
	for _, v := range power {
		sum += v
	}

	return sum / float64(len(power))
}
