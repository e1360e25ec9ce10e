package engine

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by Evaluate.
var (
	ErrInputRange       = errors.New("engine: input out of range")
	ErrResourceExceeded = errors.New("engine: resolution exceeds memory budget")
	ErrInvalidParameter = errors.New("engine: invalid engine parameter")
)

// RangeError reports a request parameter outside its documented bounds.
// It matches ErrInputRange with errors.Is.
type RangeError struct {
	Param    string
	Value    float64
	Min, Max float64
	MinOpen  bool // lower bound excluded
}

func (e *RangeError) Error() string {
	open := "["
	if e.MinOpen {
		open = "("
	}

	return fmt.Sprintf("engine: %s=%g not in %s%g, %g]", e.Param, e.Value, open, e.Min, e.Max)
}

// Is reports whether target is ErrInputRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrInputRange
}

func checkRange(param string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &RangeError{Param: param, Value: v, Min: lo, Max: hi}
	}

	return nil
}

func checkRangeOpenLow(param string, v, lo, hi float64) error {
	if math.IsNaN(v) || v <= lo || v > hi {
		return &RangeError{Param: param, Value: v, Min: lo, Max: hi, MinOpen: true}
	}

	return nil
}
