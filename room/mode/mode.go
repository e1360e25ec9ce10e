// Package mode enumerates the standing-wave modes of a rectangular room.
//
// A mode is indexed by three non-negative integers (nx, ny, nz), not all zero.
// Its class follows from how many indices are nonzero: one for axial, two for
// tangential, three for oblique.
package mode

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Index bounds for per-axis mode limits.
const (
	MinLimit = 1
	MaxLimit = 10
)

// Errors returned by this package.
var (
	ErrUnknownFilter = errors.New("mode: unknown mode filter")
	ErrLimit         = errors.New("mode: limit out of range")
)

// Mode is a cavity eigenmode triple.
type Mode struct {
	NX, NY, NZ int
}

// NonZero returns the number of nonzero indices.
func (m Mode) NonZero() int {
	n := 0
	for _, v := range [3]int{m.NX, m.NY, m.NZ} {
		if v > 0 {
			n++
		}
	}

	return n
}

// Class returns the mode class. The all-zero triple has no class.
func (m Mode) Class() Class {
	return Class(m.NonZero())
}

// IsDC reports whether m is the excluded all-zero triple.
func (m Mode) IsDC() bool {
	return m.NX == 0 && m.NY == 0 && m.NZ == 0
}

func (m Mode) String() string {
	return fmt.Sprintf("(%d,%d,%d)", m.NX, m.NY, m.NZ)
}

// Class groups modes by their count of nonzero indices.
type Class int

const (
	ClassNone Class = iota
	ClassAxial
	ClassTangential
	ClassOblique
)

func (c Class) String() string {
	switch c {
	case ClassAxial:
		return "axial"
	case ClassTangential:
		return "tangential"
	case ClassOblique:
		return "oblique"
	default:
		return "none"
	}
}

// Filter selects which mode classes take part in the sum.
type Filter int

const (
	FilterAll Filter = iota
	FilterAxial
	FilterTangential
	FilterOblique
)

var filterNames = [...]string{"All", "Axial", "Tangential", "Oblique"}

// FilterNames lists the accepted filter names in declaration order.
func FilterNames() []string {
	return append([]string(nil), filterNames[:]...)
}

func (f Filter) String() string {
	if f < FilterAll || f > FilterOblique {
		return fmt.Sprintf("Filter(%d)", int(f))
	}

	return filterNames[f]
}

// ParseFilter maps a case-insensitive filter name to a Filter.
func ParseFilter(name string) (Filter, error) {
	n := strings.TrimSpace(name)
	for i, fn := range filterNames {
		if strings.EqualFold(n, fn) {
			return Filter(i), nil
		}
	}

	return FilterAll, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

// Admits reports whether m passes the filter. The DC triple never passes.
func (f Filter) Admits(m Mode) bool {
	n := m.NonZero()
	if n == 0 {
		return false
	}

	switch f {
	case FilterAxial:
		return n == 1
	case FilterTangential:
		return n == 2
	case FilterOblique:
		return n == 3
	default:
		return true
	}
}

// Limits holds the per-axis maximum mode index, each inclusive.
type Limits struct {
	NX, NY, NZ int
}

// Validate checks every axis limit lies in [MinLimit, MaxLimit].
func (l Limits) Validate() error {
	for _, a := range []struct {
		name string
		v    int
	}{{"nx", l.NX}, {"ny", l.NY}, {"nz", l.NZ}} {
		if a.v < MinLimit || a.v > MaxLimit {
			return fmt.Errorf("%w: %s max=%d not in [%d, %d]", ErrLimit, a.name, a.v, MinLimit, MaxLimit)
		}
	}

	return nil
}

// Candidates returns the number of triples in the box, DC included.
func (l Limits) Candidates() int {
	return (max(l.NX, 0) + 1) * (max(l.NY, 0) + 1) * (max(l.NZ, 0) + 1)
}

// Enumerate yields every admitted triple with nx ∈ [0,l.NX], ny ∈ [0,l.NY],
// nz ∈ [0,l.NZ] in lexicographic order. Negative limits yield nothing.
func Enumerate(l Limits, f Filter) iter.Seq[Mode] {
	return func(yield func(Mode) bool) {
		for nx := 0; nx <= l.NX; nx++ {
			for ny := 0; ny <= l.NY; ny++ {
				for nz := 0; nz <= l.NZ; nz++ {
					m := Mode{NX: nx, NY: ny, NZ: nz}
					if !f.Admits(m) {
						continue
					}
					if !yield(m) {
						return
					}
				}
			}
		}
	}
}

// Collect materializes Enumerate into a slice.
func Collect(l Limits, f Filter) []Mode {
	var out []Mode
	for m := range Enumerate(l, f) {
		out = append(out, m)
	}

	return out
}
