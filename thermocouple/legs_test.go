package thermocouple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/poly"
	"github.com/katalvlaran/thermo/thermocouple"
)

// legGrid is the published thermoelement-table coverage per type, which
// for several types is narrower than the rated pair range.
var legGrid = map[string]struct {
	min, max, step float64
}{
	"B": {0, 1760, 80},
	"J": {-210, 760, 30},
	"N": {-200, 1300, 50},
	"R": {-50, 1750, 100},
	"S": {-50, 1750, 100},
	"T": {-270, 400, 30},
}

// TestLegs_SumToReferenceFunction verifies the defining convention of
// the thermoelement tables: pos(T) − neg(T) reproduces the pair's
// reference function across the published coverage.
func TestLegs_SumToReferenceFunction(t *testing.T) {
	for code, g := range legGrid {
		tc := get(t, code)

		for tempC := g.min; tempC <= g.max; tempC += g.step {
			pos, err := tc.TemperatureToVoltagePositiveLeg(tempC)
			require.NoError(t, err, "%s pos at %g °C", code, tempC)
			neg, err := tc.TemperatureToVoltageNegativeLeg(tempC)
			require.NoError(t, err, "%s neg at %g °C", code, tempC)
			total, err := tc.TemperatureToVoltage(tempC)
			require.NoError(t, err, "%s at %g °C", code, tempC)

			assert.InDelta(t, total, pos-neg, 1e-9,
				"%s legs at %g °C", code, tempC)
		}
	}
}

// TestLegs_SeebeckSumToReference verifies the same identity for the leg
// sensitivities (µV/K).
func TestLegs_SeebeckSumToReference(t *testing.T) {
	for code, g := range legGrid {
		tc := get(t, code)

		for tempC := g.min; tempC <= g.max; tempC += g.step {
			pos, err := tc.TemperatureToSeebeckPositiveLeg(tempC)
			require.NoError(t, err, "%s pos at %g °C", code, tempC)
			neg, err := tc.TemperatureToSeebeckNegativeLeg(tempC)
			require.NoError(t, err, "%s neg at %g °C", code, tempC)
			total, err := tc.TemperatureToSeebeck(tempC)
			require.NoError(t, err, "%s at %g °C", code, tempC)

			assert.InDelta(t, total, pos-neg, 1e-3,
				"%s leg sensitivities at %g °C", code, tempC)
		}
	}
}

// TestLegs_PlatinumNegativeLegIsZero verifies the pure-platinum negative
// thermoelements of R and S: zero voltage and zero sensitivity versus
// Pt-67 everywhere.
func TestLegs_PlatinumNegativeLegIsZero(t *testing.T) {
	for _, code := range []string{"R", "S"} {
		tc := get(t, code)

		for _, tempC := range []float64{-50, 0, 500, 1200, 1768.1} {
			v, err := tc.TemperatureToVoltageNegativeLeg(tempC)
			require.NoError(t, err, "%s at %g °C", code, tempC)
			assert.Zero(t, v, "%s neg voltage at %g °C", code, tempC)

			s, err := tc.TemperatureToSeebeckNegativeLeg(tempC)
			require.NoError(t, err, "%s at %g °C", code, tempC)
			assert.Zero(t, s, "%s neg sensitivity at %g °C", code, tempC)
		}
	}
}

// TestLegs_Unavailable verifies every per-leg query on K and E, whose
// thermoelement tables the monograph does not publish, fails with the
// dedicated sentinel.
func TestLegs_Unavailable(t *testing.T) {
	for _, code := range []string{"K", "E"} {
		tc := get(t, code)

		_, err := tc.TemperatureToVoltagePositiveLeg(100)
		assert.ErrorIs(t, err, thermocouple.ErrLegDataUnavailable, "%s pos", code)
		_, err = tc.TemperatureToVoltageNegativeLeg(100)
		assert.ErrorIs(t, err, thermocouple.ErrLegDataUnavailable, "%s neg", code)
		_, err = tc.TemperatureToSeebeckPositiveLeg(100)
		assert.ErrorIs(t, err, thermocouple.ErrLegDataUnavailable, "%s pos S", code)
		_, err = tc.TemperatureToSeebeckNegativeLeg(100)
		assert.ErrorIs(t, err, thermocouple.ErrLegDataUnavailable, "%s neg S", code)
	}
}

// TestLegs_NarrowerCoverage verifies a temperature inside the pair's
// rated range but outside the published leg tables is rejected with a
// range error, not silently extrapolated: Type N legs start at −200 °C
// while the pair is rated to −270 °C.
func TestLegs_NarrowerCoverage(t *testing.T) {
	tc := get(t, "N")

	_, err := tc.TemperatureToVoltage(-250)
	require.NoError(t, err, "pair table covers −250 °C")

	_, err = tc.TemperatureToVoltagePositiveLeg(-250)
	assert.ErrorIs(t, err, poly.ErrOutOfRange)
	_, err = tc.TemperatureToSeebeckNegativeLeg(-250)
	assert.ErrorIs(t, err, poly.ErrOutOfRange)
}
