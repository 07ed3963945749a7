package thermocouple_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Round-trip tolerance in °C.  The inverse polynomials carry published
// error bounds up to ±0.06 °C against the reference functions; 0.1
// leaves margin without hiding a broken table.
const roundTripTolC = 0.1

// roundTripGrid spans each type's rated range, trimmed to where the
// published inverse tables (or the iterative fallback) apply: the
// cryogenic tail below −200 °C has no inverse coverage and a vanishing
// Seebeck coefficient, and Type B is only single-valued above its
// stationary point near 21 °C.
var roundTripGrid = map[string]struct {
	min, max, step float64
}{
	"B": {250, 1810, 30},
	"E": {-200, 1000, 25},
	"J": {-205, 1200, 25},
	"K": {-195, 1370, 25},
	"N": {-195, 1300, 25},
	"R": {-45, 1765, 25},
	"S": {-45, 1765, 25},
	"T": {-200, 400, 15},
}

// TestRoundTrip_TemperatureVoltageTemperature drives every type through
// forward conversion and back across its usable range.
func TestRoundTrip_TemperatureVoltageTemperature(t *testing.T) {
	for code, g := range roundTripGrid {
		tc := get(t, code)

		for tempC := g.min; tempC <= g.max; tempC += g.step {
			v, err := tc.TemperatureToVoltage(tempC)
			require.NoError(t, err, "%s forward at %g °C", code, tempC)

			back, err := tc.VoltageToTemperature(v)
			require.NoError(t, err, "%s inverse at %g °C", code, tempC)
			assert.InDelta(t, tempC, back, roundTripTolC,
				"%s round trip at %g °C", code, tempC)
		}
	}
}

// TestRoundTrip_TypeBNewtonRegion covers Type B between its stationary
// point and the start of the inverse tables, where every inversion runs
// through Newton; the iterative result tracks the reference function
// itself, so the tolerance is tighter than the tabulated paths.
func TestRoundTrip_TypeBNewtonRegion(t *testing.T) {
	tc := get(t, "B")

	for tempC := 60.0; tempC <= 240; tempC += 20 {
		v, err := tc.TemperatureToVoltage(tempC)
		require.NoError(t, err)

		back, err := tc.VoltageToTemperature(v)
		require.NoError(t, err, "B at %g °C", tempC)
		assert.InDelta(t, tempC, back, 0.01, "B at %g °C", tempC)
	}
}

// TestRoundTrip_WithReference closes the loop through cold-junction
// compensation at a handful of reference temperatures.
func TestRoundTrip_WithReference(t *testing.T) {
	for _, c := range []struct {
		code     string
		hot, ref float64
	}{
		{"K", 500, 25},
		{"J", 300, 50},
		{"T", -100, 20},
		{"N", 1000, 23.5},
	} {
		tc := get(t, c.code)

		hotV, err := tc.TemperatureToVoltage(c.hot)
		require.NoError(t, err)
		refV, err := tc.TemperatureToVoltage(c.ref)
		require.NoError(t, err)

		back, err := tc.VoltageToTemperatureWithReference(hotV-refV, c.ref)
		require.NoError(t, err, "%s hot %g ref %g", c.code, c.hot, c.ref)
		assert.InDelta(t, c.hot, back, roundTripTolC,
			"%s hot %g ref %g", c.code, c.hot, c.ref)
	}
}
