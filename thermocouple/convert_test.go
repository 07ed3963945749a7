package thermocouple_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermo/poly"
	"github.com/katalvlaran/thermo/thermocouple"
)

// get resolves a type code or fails the test.
func get(t *testing.T, code string) *thermocouple.Thermocouple {
	t.Helper()
	tc, err := thermocouple.NewRegistry().Get(code)
	require.NoError(t, err)

	return tc
}

// TestTemperatureToVoltage_ZeroAtIcePoint verifies E(0 °C) = 0 V for
// every type: the reference functions are anchored at the ice point.
func TestTemperatureToVoltage_ZeroAtIcePoint(t *testing.T) {
	reg := thermocouple.NewRegistry()
	for _, code := range reg.Types() {
		tc, err := reg.Get(string(code))
		require.NoError(t, err)

		v, err := tc.TemperatureToVoltage(0)
		require.NoError(t, err, "type %s", code)
		assert.InDelta(t, 0.0, v, 1e-12, "type %s at 0 °C", code)
	}
}

// TestTemperatureToVoltage_ReferenceValues checks a handful of values
// against the published NIST tables (mV, rounded to 1 µV there).
func TestTemperatureToVoltage_ReferenceValues(t *testing.T) {
	cases := []struct {
		code  string
		tempC float64
		volts float64
	}{
		{"K", 100, 4.096e-3},
		{"J", 100, 5.269e-3},
		{"E", 100, 6.319e-3},
		{"T", 100, 4.279e-3},
		{"N", 100, 2.774e-3},
		{"K", -100, -3.554e-3},
		{"K", 1000, 41.276e-3},
		{"S", 1000, 9.587e-3},
		{"B", 1000, 4.834e-3},
	}
	for _, c := range cases {
		tc := get(t, c.code)

		v, err := tc.TemperatureToVoltage(c.tempC)
		require.NoError(t, err, "%s at %g °C", c.code, c.tempC)
		assert.InDelta(t, c.volts, v, 2e-6, "%s at %g °C", c.code, c.tempC)
	}
}

// TestTemperatureToVoltage_KContinuousAtZero verifies the Type K
// exponential term does not break the function at the branch boundary:
// the second branch's constant term cancels it there.
func TestTemperatureToVoltage_KContinuousAtZero(t *testing.T) {
	tc := get(t, "K")

	below, err := tc.TemperatureToVoltage(-1e-6)
	require.NoError(t, err)
	above, err := tc.TemperatureToVoltage(1e-6)
	require.NoError(t, err)

	assert.InDelta(t, below, above, 1e-9, "jump across 0 °C")
	assert.InDelta(t, 0.0, above, 1e-9)
}

// TestTemperatureToVoltage_OutOfRange verifies the typed range error
// carries the rated bounds.
func TestTemperatureToVoltage_OutOfRange(t *testing.T) {
	tc := get(t, "K")

	_, err := tc.TemperatureToVoltage(2000)
	require.Error(t, err)
	assert.ErrorIs(t, err, poly.ErrOutOfRange)

	var rerr *poly.RangeError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 2000.0, rerr.Value)
	assert.Equal(t, -270.0, rerr.Min)
	assert.Equal(t, 1372.0, rerr.Max)

	_, err = tc.TemperatureToVoltage(-300)
	assert.ErrorIs(t, err, poly.ErrOutOfRange)
}

// TestVoltageToTemperature_TablePath exercises the direct inverse
// polynomials: 0 V must resolve to the ice point.
func TestVoltageToTemperature_TablePath(t *testing.T) {
	for _, code := range []string{"E", "J", "K", "N", "T"} {
		tc := get(t, code)

		temp, err := tc.VoltageToTemperature(0)
		require.NoError(t, err, "type %s", code)
		assert.InDelta(t, 0.0, temp, 1e-9, "type %s at 0 V", code)
	}
}

// TestVoltageToTemperatureWithReference verifies cold-junction
// compensation: a meter at 25 °C reads E(hot) − E(25), and compensation
// recovers the hot-junction temperature.
func TestVoltageToTemperatureWithReference(t *testing.T) {
	tc := get(t, "K")

	hot, err := tc.TemperatureToVoltage(100)
	require.NoError(t, err)
	ref, err := tc.TemperatureToVoltage(25)
	require.NoError(t, err)
	measured := hot - ref

	temp, err := tc.VoltageToTemperatureWithReference(measured, 25)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, temp, 0.1)
}

// TestVoltageToTemperatureWithReference_ZeroRef verifies a 0 °C
// reference reduces to the plain inverse conversion.
func TestVoltageToTemperatureWithReference_ZeroRef(t *testing.T) {
	tc := get(t, "J")

	v, err := tc.TemperatureToVoltage(300)
	require.NoError(t, err)

	plain, err := tc.VoltageToTemperature(v)
	require.NoError(t, err)
	compensated, err := tc.VoltageToTemperatureWithReference(v, 0)
	require.NoError(t, err)
	assert.Equal(t, plain, compensated)
}

// TestVoltageToTemperatureWithReference_BadRef verifies the reference
// temperature is range-checked before any inversion runs.
func TestVoltageToTemperatureWithReference_BadRef(t *testing.T) {
	tc := get(t, "T")

	_, err := tc.VoltageToTemperatureWithReference(1e-3, 500)
	assert.ErrorIs(t, err, poly.ErrOutOfRange)
}

// TestValidRange reports the rated envelopes from the forward tables.
func TestValidRange(t *testing.T) {
	cases := []struct {
		code     string
		min, max float64
	}{
		{"B", 0, 1820},
		{"E", -270, 1000},
		{"J", -210, 1200},
		{"K", -270, 1372},
		{"N", -270, 1300},
		{"R", -50, 1768.1},
		{"S", -50, 1768.1},
		{"T", -270, 400},
	}
	for _, c := range cases {
		tc := get(t, c.code)

		lo, hi := tc.ValidRange()
		assert.Equal(t, c.min, lo, "type %s min", c.code)
		assert.Equal(t, c.max, hi, "type %s max", c.code)
	}
}
