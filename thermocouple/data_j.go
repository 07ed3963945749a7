package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type J (Fe / Cu-Ni "Constantan"): -210 °C to 1200 °C, -8.095 mV to
// 69.553 mV.  NIST Monograph 175, ITS-90.
var typeJ = mustThermocouple(Thermocouple{
	code: TypeJ,
	name: "Fe / Cu-Ni",
	// Table 6.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -210, Max: 760, Coeffs: []float64{
			0.000000000000e00,
			5.038118781500e01,
			3.047583693000e-02,
			-8.568106572000e-05,
			1.322819529500e-07,
			-1.705295833700e-10,
			2.094809069700e-13,
			-1.253839533600e-16,
			1.563172569700e-20,
		}},
		{Min: 760, Max: 1200, Coeffs: []float64{
			2.964562568100e05,
			-1.497612778600e03,
			3.178710392400e00,
			-3.184768670100e-03,
			1.572081900400e-06,
			-3.069136905600e-10,
		}},
	},
	// Table A6.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -8095, Max: 0, ErrBound: 0.05, Coeffs: []float64{
			0.000000000000e00,
			1.952826800000e-02,
			-1.228618500000e-06,
			-1.075217800000e-09,
			-5.908693300000e-13,
			-1.725671300000e-16,
			-2.813151300000e-20,
			-2.396337000000e-24,
			-8.382332100000e-29,
		}},
		{Min: 0, Max: 42919, ErrBound: 0.04, Coeffs: []float64{
			0.000000000000e00,
			1.978425000000e-02,
			-2.001204000000e-07,
			1.036969000000e-11,
			-2.549687000000e-16,
			3.585153000000e-21,
			-5.344285000000e-26,
			5.099890000000e-31,
		}},
		{Min: 42919, Max: 69553, ErrBound: 0.04, Coeffs: []float64{
			-3.113581870000e03,
			3.005436840000e-01,
			-9.947732300000e-06,
			1.702766300000e-10,
			-1.430334680000e-15,
			4.738860840000e-21,
		}},
	},
	// Tables 6.4.1 (JP) and 6.5.1 (JN), thermoelements versus Pt-67.
	// JN develops a negative EMF against Pt-67; the coefficients carry
	// that sign so pos − neg reproduces the full reference function.
	legs: &legData{
		pos: []poly.Segment{
			{Min: -210, Max: 760, Coeffs: []float64{
				0.000000000000e00,
				1.791354855900e01,
				4.677466335800e-03,
				-7.122599299100e-05,
				1.335212501600e-07,
				-1.500896263900e-10,
				1.551431962500e-13,
				-7.950357212500e-17,
				2.429790391000e-21,
			}},
		},
		neg: []poly.Segment{
			{Min: -210, Max: 760, Coeffs: []float64{
				0.000000000000e00,
				-3.246763925600e01,
				-2.579837059400e-02,
				1.445507273000e-05,
				1.239297209300e-09,
				2.043995698000e-11,
				-5.433771071800e-14,
				4.588038123500e-17,
				-1.320193530600e-20,
			}},
		},
	},
})
