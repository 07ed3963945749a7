package thermocouple

import (
	"math"

	"github.com/katalvlaran/thermo/poly"
)

// Newton-iteration defaults; see InvertOptions.
const (
	// DefaultMaxIterations bounds the Newton iteration count.
	DefaultMaxIterations = 100

	// DefaultTolerance is the convergence criterion on the voltage
	// residual, in volts.  1 nV sits far below the error bound of every
	// published table, so the temperature error it admits is negligible.
	DefaultTolerance = 1e-9
)

// derivFloor guards the Newton update against a degenerate derivative.
// A slope this small only occurs at a genuine stationary point of a
// reference function (Type B has one near 21 °C), where the step would
// explode instead of converging.
const derivFloor = 1e-3 // µV/K

// InvertOptions configures the iterative voltage inversion.
//
// Fields:
//   - MaxIterations — hard cap on Newton steps; exceeded ⇒ *ConvergenceError.
//   - Tolerance     — voltage residual (V) below which iteration stops.
//
// The zero value of either field selects its default.  Exact constants
// are an implementation choice, not a compatibility requirement; the
// defaults reproduce the published tables well inside their error
// bounds.
type InvertOptions struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultInvertOptions returns the documented defaults.
func DefaultInvertOptions() InvertOptions {
	return InvertOptions{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

// Invert solves reference(T) = volts for T (°C) with Newton's method
// against the forward model, for voltages the inverse polynomials do not
// cover.  nil opts selects DefaultInvertOptions.
//
// Algorithm:
//  1. Seed at the midpoint of the rated range.
//  2. Iterate T ← T − (f(T) − volts) / f'(T), where f is the reference
//     function (V) and f' its analytic order-1 derivative.
//  3. Clamp every iterate to the rated range, so an unreachable target
//     walks to the nearest bound and exhausts the budget instead of
//     evaluating outside the tables.
//  4. Stop when |f(T) − volts| < Tolerance.
//
// Errors:
//   - *ConvergenceError (wraps ErrConvergence) — budget exhausted or
//     derivative below the degeneracy floor.  Never returns Inf or NaN
//     and never loops unbounded.
func (tc *Thermocouple) Invert(volts float64, opts *InvertOptions) (float64, error) {
	maxIter := DefaultMaxIterations
	tol := DefaultTolerance
	if opts != nil {
		if opts.MaxIterations > 0 {
			maxIter = opts.MaxIterations
		}
		if opts.Tolerance > 0 {
			tol = opts.Tolerance
		}
	}

	minC, maxC := tc.ValidRange()
	t := (minC + maxC) / 2

	for i := 0; i < maxIter; i++ {
		f, err := tc.TemperatureToVoltage(t)
		if err != nil {
			// Unreachable with clamped iterates; kept for safety.
			return 0, err
		}
		resid := f - volts
		if math.Abs(resid) < tol {
			return t, nil
		}

		duv, err := poly.EvalDerivative(tc.forward, t, 1, quantityTemperature)
		if err != nil {
			return 0, err
		}
		duv += tc.exp.correctionDeriv(t, 1)
		if math.Abs(duv) < derivFloor {
			return 0, &ConvergenceError{
				Volts:      volts,
				Iterations: i,
				LastTempC:  t,
				Reason:     "derivative vanishes",
			}
		}

		t -= resid / (duv / microvoltPerVolt)
		t = clamp(t, minC, maxC)
	}

	return 0, &ConvergenceError{
		Volts:      volts,
		Iterations: maxIter,
		LastTempC:  t,
		Reason:     "iteration budget exhausted",
	}
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}
