package poly

// Eval — piecewise polynomial evaluation.
//
// Description:
//
//	Select the first segment (in declaration order) whose inclusive
//	[Min, Max] range contains x, then evaluate its polynomial with
//	Horner's scheme.  Declaration order makes boundary ties
//	deterministic: a value shared by two segments always resolves to
//	the lower-index one.
//
// Errors:
//   - *RangeError (wraps ErrOutOfRange) — x outside the union of all
//     segment ranges; the error carries x and the covered envelope.
//
// Complexity: O(n) selection + O(d) Horner, n segments of degree d.
func Eval(segs []Segment, x float64, quantity string) (float64, error) {
	i, ok := selectSegment(segs, x)
	if !ok {
		return 0, rangeErr(segs, x, quantity)
	}

	return Horner(segs[i].Coeffs, x), nil
}

// EvalDerivative evaluates the order-th analytic derivative of the
// piecewise polynomial at x.  Segment selection and range semantics are
// identical to Eval; order 0 is plain evaluation.
//
// Errors:
//   - ErrBadOrder — negative order.
//   - *RangeError — x outside the covered union.
func EvalDerivative(segs []Segment, x float64, order int, quantity string) (float64, error) {
	if order < 0 {
		return 0, ErrBadOrder
	}
	i, ok := selectSegment(segs, x)
	if !ok {
		return 0, rangeErr(segs, x, quantity)
	}

	return Horner(Differentiate(segs[i].Coeffs, order), x), nil
}

// Horner evaluates a polynomial with ascending-power coefficients at x,
// accumulating from the highest-degree coefficient down.  An empty
// coefficient slice evaluates to 0.
func Horner(coeffs []float64, x float64) float64 {
	var acc float64
	for k := len(coeffs) - 1; k >= 0; k-- {
		acc = acc*x + coeffs[k]
	}

	return acc
}

// Differentiate returns the ascending-power coefficients of the order-th
// derivative: coeffs[k] contributes k·coeffs[k] at degree k−1, iterated
// order times.  Differentiating past the degree yields an empty slice
// (the zero polynomial).  order <= 0 returns coeffs unchanged.
func Differentiate(coeffs []float64, order int) []float64 {
	for ; order > 0 && len(coeffs) > 0; order-- {
		d := make([]float64, len(coeffs)-1)
		for k := 1; k < len(coeffs); k++ {
			d[k-1] = float64(k) * coeffs[k]
		}
		coeffs = d
	}

	return coeffs
}

// selectSegment returns the index of the first segment containing x.
func selectSegment(segs []Segment, x float64) (int, bool) {
	for i, s := range segs {
		if s.Min <= x && x <= s.Max {
			return i, true
		}
	}

	return 0, false
}

// rangeErr builds the out-of-range error for x against the envelope of segs.
func rangeErr(segs []Segment, x float64, quantity string) error {
	min, max := Envelope(segs)

	return &RangeError{Value: x, Min: min, Max: max, Quantity: quantity}
}
