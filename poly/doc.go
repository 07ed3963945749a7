// Package poly evaluates piecewise polynomial reference functions.
//
// 🚀 What is poly?
//
//	A tiny numeric kernel for functions that are defined range-by-range:
//	an ordered list of Segments, each carrying an inclusive validity
//	interval and polynomial coefficients in ascending power.  Evaluation
//	picks the first segment containing x and runs Horner's scheme from
//	the highest-degree coefficient down.
//
// ✨ Key features:
//   - deterministic segment selection (first declared segment wins on
//     shared boundaries)
//   - Horner evaluation for floating-point stability
//   - analytic differentiation of any order (no finite differences)
//   - strict range checking: out-of-union inputs fail with *RangeError
//     instead of silently extrapolating
//
// poly carries no domain knowledge; units and meaning of x belong to the
// caller.  The thermocouple package builds temperature↔voltage reference
// functions on top of it.
package poly
