package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type B (Pt-30%Rh / Pt-6%Rh): 0 °C to 1820 °C, 0 mV to 13.820 mV.
// NIST Monograph 175, ITS-90.  The published inverse polynomials only
// start at 291 µV (250 °C); lower voltages are inverted iteratively.
var typeB = mustThermocouple(Thermocouple{
	code: TypeB,
	name: "Pt-30%Rh / Pt-6%Rh",
	// Table 2.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: 0, Max: 630.615, Coeffs: []float64{
			0.000000000000e00,
			-2.465081834600e-01,
			5.904042117100e-03,
			-1.325793163600e-06,
			1.566829190100e-09,
			-1.694452924000e-12,
			6.299034709400e-16,
		}},
		{Min: 630.615, Max: 1820, Coeffs: []float64{
			-3.893816862100e03,
			2.857174747000e01,
			-8.488510478500e-02,
			1.578528016400e-04,
			-1.683534486400e-07,
			1.110979401300e-10,
			-4.451543103300e-14,
			9.897564082100e-18,
			-9.379133028900e-22,
		}},
	},
	// Table A2.1, µV → °C.
	inverse: []poly.Segment{
		{Min: 291, Max: 2431, ErrBound: 0.03, Coeffs: []float64{
			9.842332100e01,
			6.997150000e-01,
			-8.476530400e-04,
			1.005264400e-06,
			-8.334595200e-10,
			4.550854200e-13,
			-1.552303700e-16,
			2.988675000e-20,
			-2.474286000e-24,
		}},
		{Min: 2431, Max: 13820, ErrBound: 0.02, Coeffs: []float64{
			2.131507100e02,
			2.851050400e-01,
			-5.274288700e-05,
			9.916080400e-09,
			-1.296530300e-12,
			1.119587000e-16,
			-6.062519900e-21,
			1.866169600e-25,
			-2.487858500e-30,
		}},
	},
	// Tables 2.4.1 (BP) and 2.5.1 (BN), thermoelements versus Pt-67,
	// with two misprinted BN digits reconciled so BP − BN reproduces
	// Table 2.3.1.
	legs: &legData{
		pos: []poly.Segment{
			{Min: 0, Max: 630.615, Coeffs: []float64{
				0.000000000000e00,
				4.822787568700e00,
				1.565116570900e-02,
				-2.223379788200e-05,
				2.833324407400e-08,
				-2.025894044700e-11,
				6.148870509600e-15,
			}},
			{Min: 630.615, Max: 1768.1, Coeffs: []float64{
				-7.968043228200e03,
				6.394111021300e01,
				-1.710242141000e-01,
				3.055578252700e-04,
				-3.210574449200e-07,
				2.090910279400e-10,
				-8.233582542600e-14,
				1.782284151500e-17,
				-1.618707418700e-21,
			}},
		},
		neg: []poly.Segment{
			{Min: 0, Max: 630.615, Coeffs: []float64{
				0.000000000000e00,
				5.069295752200e00,
				9.747123532000e-03,
				-2.090800471800e-05,
				2.676641488300e-08,
				-1.856448752300e-11,
				5.518967038600e-15,
			}},
			{Min: 630.615, Max: 1768.1, Coeffs: []float64{
				-4.074226366200e03,
				3.536936274300e01,
				-8.613910931500e-02,
				1.477050236200e-04,
				-1.527039962900e-07,
				9.799308781000e-11,
				-3.782039439300e-14,
				7.925277432800e-18,
				-6.807941157800e-22,
			}},
		},
	},
})
