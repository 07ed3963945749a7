package thermocouple

import (
	"errors"

	"github.com/katalvlaran/thermo/poly"
)

// microvoltPerVolt converts between the µV of the NIST tables and the V
// of the public API.
const microvoltPerVolt = 1e6

// The quantity labels carried by range errors.
const (
	quantityTemperature = "temperature °C"
	quantityVoltage     = "voltage µV"
)

// TemperatureToVoltage converts a junction temperature (°C) to the
// thermoelectric voltage (V) against a 0 °C reference, per the NIST
// reference function: piecewise polynomial in µV plus the exponential
// correction term where the type defines one.
//
// Errors:
//   - *poly.RangeError (wraps poly.ErrOutOfRange) — tempC outside the
//     rated range reported by ValidRange.
func (tc *Thermocouple) TemperatureToVoltage(tempC float64) (float64, error) {
	uv, err := poly.Eval(tc.forward, tempC, quantityTemperature)
	if err != nil {
		return 0, err
	}
	uv += tc.exp.correction(tempC)

	return uv / microvoltPerVolt, nil
}

// VoltageToTemperature converts a thermoelectric voltage (V, against a
// 0 °C reference) to the junction temperature (°C).
//
// Fast path: the NIST inverse polynomials, when the voltage falls in
// their covered range.  Otherwise the voltage is inverted iteratively
// against the reference function with default options (see Invert) —
// Type B, whose inverse tables start at 250 °C, takes this path for the
// low end of its rated range.
//
// Errors:
//   - *ConvergenceError (wraps ErrConvergence) — the iterative path
//     failed; in particular, voltages the type cannot physically produce
//     exhaust the iteration budget.
func (tc *Thermocouple) VoltageToTemperature(volts float64) (float64, error) {
	if t, err := poly.Eval(tc.inverse, volts*microvoltPerVolt, quantityVoltage); err == nil {
		return t, nil
	} else if !errors.Is(err, poly.ErrOutOfRange) {
		return 0, err
	}

	return tc.Invert(volts, nil)
}

// VoltageToTemperatureWithReference applies cold-junction compensation:
// it converts a voltage measured against a reference junction at
// refTempC (°C) to the hot-junction temperature (°C).
//
// The instrument reads the voltage relative to the reference junction,
// so the absolute voltage against a true 0 °C reference is the sum of
// the measured voltage and the voltage the reference junction itself
// produces.
//
// Errors propagate unchanged from the composed conversions:
//   - *poly.RangeError — refTempC outside the rated range.
//   - *ConvergenceError — the final inversion failed.
func (tc *Thermocouple) VoltageToTemperatureWithReference(measuredVolts, refTempC float64) (float64, error) {
	refVolts, err := tc.TemperatureToVoltage(refTempC)
	if err != nil {
		return 0, err
	}

	return tc.VoltageToTemperature(measuredVolts + refVolts)
}
