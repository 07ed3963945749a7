// Package thermocouple converts between temperature and thermoelectric
// voltage for the eight letter-designated thermocouple types of NIST
// Monograph 175 (ITS-90): B, E, J, K, N, R, S and T.
//
// 🚀 What is thermocouple?
//
//	One shared numeric engine over eight coefficient data sets.  Every
//	type is a Thermocouple value parameterized by piecewise polynomial
//	tables (see the poly package); there is no per-type code.
//
// ✨ Supported operations (per type):
//   - Temperature → voltage via the NIST reference function, including
//     the exponential correction term Type K requires
//   - Voltage → temperature via the NIST inverse polynomials where they
//     cover the voltage, Newton iteration against the reference
//     function elsewhere
//   - Seebeck coefficient (µV/K) and its temperature derivative
//     (nV/K²) by analytic differentiation
//   - Cold-junction compensation for reference junctions not held at
//     0 °C
//   - Individual-leg voltage and Seebeck queries for types with
//     published thermoelement-versus-platinum data
//
// Units at the API boundary are fixed: temperature in °C, voltage in V,
// Seebeck in µV/K, dS/dT in nV/K².  Scaling is the engine's job, never
// the caller's.
//
// Quick example:
//
//	reg := thermocouple.NewRegistry()
//	tc, err := reg.Get("K")
//	if err != nil { ... }
//	v, err := tc.TemperatureToVoltage(100) // ≈ 0.004096 V
//
// All models are immutable after construction and safe to share across
// goroutines without locking.
package thermocouple
