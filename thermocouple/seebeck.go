package thermocouple

import "github.com/katalvlaran/thermo/poly"

// nanovoltPerMicrovolt scales the second derivative of the µV tables to
// the nV/K² of the public API.
const nanovoltPerMicrovolt = 1e3

// TemperatureToSeebeck returns the Seebeck coefficient (µV/K) at tempC:
// the local sensitivity dV/dT of the reference function, computed as the
// analytic order-1 derivative of the forward polynomial plus the first
// derivative of the exponential correction where the type carries one.
//
// Errors:
//   - *poly.RangeError — tempC outside the rated range.
func (tc *Thermocouple) TemperatureToSeebeck(tempC float64) (float64, error) {
	s, err := poly.EvalDerivative(tc.forward, tempC, 1, quantityTemperature)
	if err != nil {
		return 0, err
	}

	return s + tc.exp.correctionDeriv(tempC, 1), nil
}

// TemperatureToDsDt returns the temperature derivative of the Seebeck
// coefficient (nV/K²) at tempC: the analytic order-2 derivative of the
// forward polynomial plus the second derivative of the exponential
// correction, scaled from the µV/K² of the tables.
//
// Errors:
//   - *poly.RangeError — tempC outside the rated range.
func (tc *Thermocouple) TemperatureToDsDt(tempC float64) (float64, error) {
	d, err := poly.EvalDerivative(tc.forward, tempC, 2, quantityTemperature)
	if err != nil {
		return 0, err
	}
	d += tc.exp.correctionDeriv(tempC, 2)

	return d * nanovoltPerMicrovolt, nil
}
