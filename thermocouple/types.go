// Package thermocouple - model type, sentinel errors and construction.
package thermocouple

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/thermo/poly"
)

// TypeCode is a letter-designated thermocouple type per NIST Monograph 175.
type TypeCode string

// The eight supported letter designations.
const (
	TypeB TypeCode = "B"
	TypeE TypeCode = "E"
	TypeJ TypeCode = "J"
	TypeK TypeCode = "K"
	TypeN TypeCode = "N"
	TypeR TypeCode = "R"
	TypeS TypeCode = "S"
	TypeT TypeCode = "T"
)

var (
	// ErrUnknownType indicates a type code outside {B,E,J,K,N,R,S,T}.
	// Returned wrapped inside *UnknownTypeError.
	ErrUnknownType = errors.New("thermocouple: unknown thermocouple type")

	// ErrLegDataUnavailable indicates a per-leg query on a type without
	// published individual-leg coefficient tables.
	ErrLegDataUnavailable = errors.New("thermocouple: no individual-leg data published for this type")

	// ErrConvergence indicates the iterative voltage inversion failed:
	// iteration budget exhausted or a degenerate derivative.  Returned
	// wrapped inside *ConvergenceError.
	ErrConvergence = errors.New("thermocouple: voltage inversion did not converge")
)

// UnknownTypeError reports an unsupported type code together with the
// supported set.
type UnknownTypeError struct {
	Code string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("thermocouple: type %q not supported (available: B, E, J, K, N, R, S, T)", e.Code)
}

// Unwrap makes errors.Is(err, ErrUnknownType) succeed.
func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// ConvergenceError reports a failed Newton inversion: the target voltage,
// how many iterations ran, the last temperature iterate and why the
// iteration stopped.
type ConvergenceError struct {
	Volts      float64
	Iterations int
	LastTempC  float64
	Reason     string
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("thermocouple: inverting %g V failed after %d iterations at %g °C: %s",
		e.Volts, e.Iterations, e.LastTempC, e.Reason)
}

// Unwrap makes errors.Is(err, ErrConvergence) succeed.
func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// legData holds published thermoelement-versus-platinum (Pt-67) tables.
// Both tables use the convention E(T) = pos(T) − neg(T), so subtracting
// the legs reproduces the full reference function within its error bound.
type legData struct {
	pos    []poly.Segment // °C → µV
	neg    []poly.Segment // °C → µV
	negExp *expTerm       // exponential term on the negative leg, if any
}

// Thermocouple is one letter-designated type: immutable coefficient
// tables plus the operations of the conversion engine.  Values are
// constructed once from static NIST data and shared read-only; all
// methods are safe for concurrent use.
type Thermocouple struct {
	code    TypeCode
	name    string         // thermoelement materials, e.g. "Ni-Cr / Ni-Al"
	forward []poly.Segment // °C → µV reference function
	inverse []poly.Segment // µV → °C inverse polynomials (may be partial)
	exp     *expTerm       // exponential correction, nil for all but Type K
	legs    *legData       // nil when no individual-leg data is published
}

// Code returns the letter designation.
func (tc *Thermocouple) Code() TypeCode { return tc.code }

// Name returns the thermoelement materials, positive leg first.
func (tc *Thermocouple) Name() string { return tc.name }

// ValidRange returns the rated temperature range in °C (both inclusive).
func (tc *Thermocouple) ValidRange() (minC, maxC float64) {
	return poly.Envelope(tc.forward)
}

// mustThermocouple validates the compiled-in tables and returns the
// model.  It panics only on malformed static data (a programming error
// in a data_*.go file), never on user input.
func mustThermocouple(tc Thermocouple) *Thermocouple {
	if err := poly.Validate(tc.forward); err != nil {
		panic(fmt.Sprintf("thermocouple: type %s forward table: %v", tc.code, err))
	}
	if len(tc.inverse) > 0 {
		if err := poly.Validate(tc.inverse); err != nil {
			panic(fmt.Sprintf("thermocouple: type %s inverse table: %v", tc.code, err))
		}
	}
	if tc.legs != nil {
		if err := poly.Validate(tc.legs.pos); err != nil {
			panic(fmt.Sprintf("thermocouple: type %s positive-leg table: %v", tc.code, err))
		}
		if err := poly.Validate(tc.legs.neg); err != nil {
			panic(fmt.Sprintf("thermocouple: type %s negative-leg table: %v", tc.code, err))
		}
	}

	return &tc
}
