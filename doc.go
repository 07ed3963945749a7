// Package thermo converts between temperature and thermoelectric
// voltage for the letter-designated thermocouple types of NIST
// Monograph 175 (ITS-90): B, E, J, K, N, R, S and T.
//
// 🚀 What is thermo?
//
//	A pure-Go reference-function library that brings together:
//		• Forward conversion: temperature (°C) → EMF (V) via the NIST polynomials
//		• Inverse conversion: EMF (V) → temperature (°C), tabulated or iterative
//		• Cold-junction compensation for reference junctions away from 0 °C
//		• Seebeck coefficient (µV/K) and its slope (nV/K²), analytically
//		• Per-thermoelement legs versus Pt-67 where the monograph publishes them
//
// ✨ Why choose thermo?
//
//   - Exact NIST coefficients – no table interpolation, no fitted shortcuts
//   - Rock-solid guarantees – typed errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Analytic derivatives – differentiated coefficients, not finite differences
//
// Under the hood, everything is organized under two subpackages:
//
//	poly/         — piecewise polynomial segments, Horner evaluation, derivatives
//	thermocouple/ — per-type data, registry, conversions, Newton inversion
//
// Quick example:
//
//	reg := thermocouple.NewRegistry()
//	tc, _ := reg.Get("K")
//	v, _ := tc.TemperatureToVoltage(100) // 0.0040962 V
//	t, _ := tc.VoltageToTemperature(v)   // 100 °C
//
// Each conversion returns a typed error outside the rated range of the
// requested type, so callers can distinguish bad input from bad data.
//
//	go get github.com/katalvlaran/thermo
package thermo
