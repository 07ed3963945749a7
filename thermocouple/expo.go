package thermocouple

import "math"

// expTerm is the additive exponential correction some reference
// functions carry on one branch of the piecewise polynomial:
//
//	e(T) = a0 · exp(a1 · (T − a2)²)   for T in (min, max]
//
// Type K is the only letter-designated type whose NIST reference
// function requires it (on the 0 °C to 1372 °C branch); the model keeps
// it optional and range-scoped so further types defined the same way
// need no new code.  The lower bound is exclusive: a shared boundary
// value selects the preceding polynomial branch, which does not carry
// the term.
type expTerm struct {
	a0, a1, a2 float64
	min, max   float64
}

// applies reports whether the term contributes at t.
func (e *expTerm) applies(t float64) bool {
	return e.min < t && t <= e.max
}

// value evaluates e(T) in µV, without the range check.
func (e *expTerm) value(t float64) float64 {
	u := t - e.a2

	return e.a0 * math.Exp(e.a1*u*u)
}

// correction returns e(T), or 0 for a nil term or t outside the term's
// branch, so call sites need no branching of their own.
func (e *expTerm) correction(t float64) float64 {
	if e == nil || !e.applies(t) {
		return 0
	}

	return e.value(t)
}

// correctionDeriv returns the analytic order-1 or order-2 derivative of
// the term (chain rule), or 0 for a nil term, an out-of-branch t, or any
// other order:
//
//	de/dT  = 2·a1·(T−a2)·e(T)                  µV/K
//	d²e/dT² = (2·a1 + 4·a1²·(T−a2)²)·e(T)      µV/K²
func (e *expTerm) correctionDeriv(t float64, order int) float64 {
	if e == nil || !e.applies(t) {
		return 0
	}
	u := t - e.a2
	switch order {
	case 1:
		return 2 * e.a1 * u * e.value(t)
	case 2:
		return (2*e.a1 + 4*e.a1*e.a1*u*u) * e.value(t)
	default:
		return 0
	}
}
