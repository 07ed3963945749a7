package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type E (Ni-Cr / Cu-Ni): −270 °C to 1000 °C, −9.835 mV to 76.373 mV.
// NIST Monograph 175, ITS-90.  The highest-output letter-designated
// type.  Individual thermoelement tables are not published for E, so
// the per-leg operations are unavailable.
var typeE = mustThermocouple(Thermocouple{
	code: TypeE,
	name: "Ni-Cr / Cu-Ni",
	// Table 5.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -270, Max: 0, Coeffs: []float64{
			0.000000000000e00,
			5.866550870800e01,
			4.541097712400e-02,
			-7.799804868600e-04,
			-2.580016084300e-05,
			-5.945258305700e-07,
			-9.321405866700e-09,
			-1.028760553400e-10,
			-8.037012362100e-13,
			-4.397949739100e-15,
			-1.641477635500e-17,
			-3.967361951600e-20,
			-5.582732872100e-23,
			-3.465784201300e-26,
		}},
		{Min: 0, Max: 1000, Coeffs: []float64{
			0.000000000000e00,
			5.866550871000e01,
			4.503227558200e-02,
			2.890840721200e-05,
			-3.305689665200e-07,
			6.502440327000e-10,
			-1.919749550400e-13,
			-1.253660049700e-15,
			2.148921756900e-18,
			-1.438804178200e-21,
			3.596089948100e-25,
		}},
	},
	// Table A5.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -8825, Max: 0, ErrBound: 0.03, Coeffs: []float64{
			0.000000000000e00,
			1.697728800000e-02,
			-4.351497000000e-07,
			-1.585969700000e-10,
			-9.250287100000e-14,
			-2.608431400000e-17,
			-4.136019900000e-21,
			-3.403403000000e-25,
			-1.156489000000e-29,
		}},
		{Min: 0, Max: 76373, ErrBound: 0.02, Coeffs: []float64{
			0.000000000000e00,
			1.705703500000e-02,
			-2.330175900000e-07,
			6.543558500000e-12,
			-7.356274900000e-17,
			-1.789600100000e-21,
			8.403616500000e-26,
			-1.373587900000e-30,
			1.062982300000e-35,
			-3.244708700000e-41,
		}},
	},
})
