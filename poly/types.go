// Package poly - segment model, sentinel errors and structural validation.
package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates x lies outside the union of all segment ranges.
	// Returned wrapped inside *RangeError so callers can errors.Is against it.
	ErrOutOfRange = errors.New("poly: value out of covered range")

	// ErrNoSegments indicates an empty segment list.
	ErrNoSegments = errors.New("poly: segment list must be non-empty")

	// ErrBadSegments indicates a malformed segment list: a degenerate or
	// empty-coefficient segment, or a gap between consecutive segments.
	ErrBadSegments = errors.New("poly: segments must be ordered, non-degenerate and contiguous")

	// ErrBadOrder indicates a negative differentiation order.
	ErrBadOrder = errors.New("poly: differentiation order must be non-negative")
)

// Segment is one sub-range of a piecewise polynomial: an inclusive
// [Min, Max] validity interval, coefficients in ascending power
// (Coeffs[k] multiplies x^k), and the documented maximum deviation of
// this fit from the underlying reference data (zero when the polynomial
// IS the reference definition).
type Segment struct {
	Min, Max float64
	Coeffs   []float64
	ErrBound float64
}

// RangeError reports an input outside the union of segment ranges.
// Value is the offending input; Min and Max are the covered envelope.
type RangeError struct {
	Value    float64
	Min, Max float64
	Quantity string // what Value measures, e.g. "temperature °C"
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("poly: %s %g outside covered range [%g, %g]", e.Quantity, e.Value, e.Min, e.Max)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) succeed.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Envelope returns the covered [min, max] union of segs.
// Assumes segs passed Validate; an empty list yields (0, 0).
func Envelope(segs []Segment) (min, max float64) {
	if len(segs) == 0 {
		return 0, 0
	}

	return segs[0].Min, segs[len(segs)-1].Max
}

// Validate verifies the structural invariant of a segment list:
//
//   - at least one segment;
//   - every segment has Min < Max and at least one coefficient;
//   - consecutive segments are contiguous or overlap exactly at the
//     shared boundary (segs[i].Max >= segs[i+1].Min), leaving no value
//     inside the envelope uncovered.
//
// Returns ErrNoSegments or ErrBadSegments on violation, nil otherwise.
// Deterministic, side-effect free; O(n) over the segment count.
func Validate(segs []Segment) error {
	if len(segs) == 0 {
		return ErrNoSegments
	}
	for i, s := range segs {
		if s.Min >= s.Max || len(s.Coeffs) == 0 {
			return ErrBadSegments
		}
		if i > 0 && segs[i-1].Max < s.Min {
			return ErrBadSegments
		}
	}

	return nil
}
