package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type T (Cu / Cu-Ni): −270 °C to 400 °C, −6.258 mV to 20.872 mV.
// NIST Monograph 175, ITS-90.  Copper/constantan, the workhorse for
// cryogenic and sub-ambient measurement.  The constantan thermoelement
// table extends to 1000 °C even though the pair is rated to 400 °C.
var typeT = mustThermocouple(Thermocouple{
	code: TypeT,
	name: "Cu / Cu-Ni",
	// Table 9.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -270, Max: 0, Coeffs: []float64{
			0.000000000000e00,
			3.874810636400e01,
			4.419443434700e-02,
			1.184432310500e-04,
			2.003297355400e-05,
			9.013801955900e-07,
			2.265115659300e-08,
			3.607115420500e-10,
			3.849393988300e-12,
			2.821352192500e-14,
			1.425159477900e-16,
			4.876866228600e-19,
			1.079553927000e-21,
			1.394502706200e-24,
			7.979515392700e-28,
		}},
		{Min: 0, Max: 400, Coeffs: []float64{
			0.000000000000e00,
			3.874810636400e01,
			3.329222788000e-02,
			2.061824340400e-04,
			-2.188225684600e-06,
			1.099688092800e-08,
			-3.081575877200e-11,
			4.547913529000e-14,
			-2.751290167300e-17,
		}},
	},
	// Table A9.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -5603, Max: 0, ErrBound: 0.04, Coeffs: []float64{
			0.000000000000e00,
			2.594919200000e-02,
			-2.131696700000e-07,
			7.901869200000e-10,
			4.252777700000e-13,
			1.330447300000e-16,
			2.024144600000e-20,
			1.266817100000e-24,
		}},
		{Min: 0, Max: 20872, ErrBound: 0.03, Coeffs: []float64{
			0.000000000000e00,
			2.592800000000e-02,
			-7.602961000000e-07,
			4.637791000000e-11,
			-2.165394000000e-15,
			6.048144000000e-20,
			-7.293422000000e-25,
		}},
	},
	// Tables 9.4.1 (TP) and 9.5.1 (TN), thermoelements versus Pt-67.
	// Constantan runs negative against Pt-67, and some reprints list
	// TN with the sign dropped; the signs here restore TP − TN back to
	// Table 9.3.1.
	legs: &legData{
		pos: []poly.Segment{
			{Min: -270, Max: 0, Coeffs: []float64{
				0.000000000000e00,
				5.894548229700e00,
				2.177354516700e-02,
				2.826751733100e-04,
				2.256129063200e-05,
				9.502026902000e-07,
				2.412716823300e-08,
				3.910747567800e-10,
				4.217403476600e-12,
				3.094671890400e-14,
				1.551930033900e-16,
				5.235860991100e-19,
				1.136383791300e-21,
				1.433054079200e-24,
				7.979515392700e-28,
			}},
			{Min: 0, Max: 400, Coeffs: []float64{
				0.000000000000e00,
				5.894548226500e00,
				1.509134765200e-02,
				1.385988324200e-04,
				-1.827351164900e-06,
				1.033635649100e-08,
				-3.065826553400e-11,
				4.681530823500e-14,
				-2.974071681200e-17,
				1.474503431300e-20,
				-3.659405308700e-25,
			}},
		},
		neg: []poly.Segment{
			{Min: -270, Max: 0, Coeffs: []float64{
				0.000000000000e00,
				-3.285355813430e01,
				-2.242088918000e-02,
				1.642319422600e-04,
				2.528317078000e-06,
				4.882249461000e-08,
				1.476011640000e-09,
				3.036321473000e-11,
				3.680094883000e-13,
				2.733196979000e-15,
				1.267705560000e-17,
				3.589947625000e-20,
				5.682986430000e-23,
				3.855137300000e-26,
			}},
			{Min: 0, Max: 1000, Coeffs: []float64{
				0.000000000000e00,
				-3.285355813800e01,
				-1.820088022700e-02,
				-6.758360162400e-05,
				3.608745197500e-07,
				-6.605244362300e-10,
				1.574932377100e-13,
				1.336172944200e-15,
				-2.227815139100e-18,
				1.474503431300e-20,
				-3.659405308700e-25,
			}},
		},
	},
})
