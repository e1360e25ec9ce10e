// Package budget decides whether a grid resolution fits a memory ceiling
// before any field is allocated.
package budget

// BytesPerVoxel is the footprint of one complex128 voxel.
const BytesPerVoxel = 16

// DefaultFraction is the share of available memory a single field may use.
const DefaultFraction = 0.25

// Predicate reports whether a res³ field may be computed.
type Predicate interface {
	HasBudget(resolution int) bool
}

// Func adapts a plain function to Predicate.
type Func func(resolution int) bool

// HasBudget calls f.
func (f Func) HasBudget(resolution int) bool { return f(resolution) }

// Ceiling admits a resolution when res³·BytesPerVoxel stays within
// Fraction of Available bytes.
type Ceiling struct {
	Available uint64  // bytes the caller is willing to consider
	Fraction  float64 // 0 uses DefaultFraction
}

// HasBudget implements Predicate.
func (c Ceiling) HasBudget(resolution int) bool {
	if resolution <= 0 {
		return false
	}

	frac := c.Fraction
	if frac <= 0 {
		frac = DefaultFraction
	}

	r := uint64(resolution)
	need := r * r * r * BytesPerVoxel

	return float64(need) <= frac*float64(c.Available)
}

// Unlimited admits every positive resolution.
var Unlimited Predicate = Func(func(resolution int) bool { return resolution > 0 })
