package thermocouple

import (
	"fmt"

	"github.com/katalvlaran/thermo/poly"
)

// Individual-leg queries evaluate the published thermoelement-versus-
// platinum (Pt-67) tables.  Coverage follows the published data, which
// for some types is narrower than the full rated range; both leg tables
// use the convention E(T) = pos(T) − neg(T).

// TemperatureToVoltagePositiveLeg returns the voltage (V) the positive
// thermoelement develops against Pt-67 at tempC.
//
// Errors:
//   - ErrLegDataUnavailable — the type has no published leg tables.
//   - *poly.RangeError — tempC outside the leg tables' coverage.
func (tc *Thermocouple) TemperatureToVoltagePositiveLeg(tempC float64) (float64, error) {
	if tc.legs == nil {
		return 0, tc.legErr()
	}
	uv, err := poly.Eval(tc.legs.pos, tempC, quantityTemperature)
	if err != nil {
		return 0, err
	}

	return uv / microvoltPerVolt, nil
}

// TemperatureToVoltageNegativeLeg returns the voltage (V) the negative
// thermoelement develops against Pt-67 at tempC.  Failure conditions
// match TemperatureToVoltagePositiveLeg.
func (tc *Thermocouple) TemperatureToVoltageNegativeLeg(tempC float64) (float64, error) {
	if tc.legs == nil {
		return 0, tc.legErr()
	}
	uv, err := poly.Eval(tc.legs.neg, tempC, quantityTemperature)
	if err != nil {
		return 0, err
	}
	uv += tc.legs.negExp.correction(tempC)

	return uv / microvoltPerVolt, nil
}

// TemperatureToSeebeckPositiveLeg returns the positive thermoelement's
// Seebeck coefficient against Pt-67 (µV/K) at tempC.  Failure conditions
// match TemperatureToVoltagePositiveLeg.
func (tc *Thermocouple) TemperatureToSeebeckPositiveLeg(tempC float64) (float64, error) {
	if tc.legs == nil {
		return 0, tc.legErr()
	}

	return poly.EvalDerivative(tc.legs.pos, tempC, 1, quantityTemperature)
}

// TemperatureToSeebeckNegativeLeg returns the negative thermoelement's
// Seebeck coefficient against Pt-67 (µV/K) at tempC.  Failure conditions
// match TemperatureToVoltagePositiveLeg.
func (tc *Thermocouple) TemperatureToSeebeckNegativeLeg(tempC float64) (float64, error) {
	if tc.legs == nil {
		return 0, tc.legErr()
	}
	s, err := poly.EvalDerivative(tc.legs.neg, tempC, 1, quantityTemperature)
	if err != nil {
		return 0, err
	}

	return s + tc.legs.negExp.correctionDeriv(tempC, 1), nil
}

// legErr wraps ErrLegDataUnavailable with the type code.
func (tc *Thermocouple) legErr() error {
	return fmt.Errorf("type %s: %w", tc.code, ErrLegDataUnavailable)
}
