package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type S (Pt-10%Rh / Pt): −50 °C to 1768.1 °C, −0.235 mV to 18.693 mV.
// NIST Monograph 175, ITS-90.  Like Type R, the pure-platinum negative
// thermoelement is zero versus Pt-67.
var typeS = mustThermocouple(Thermocouple{
	code: TypeS,
	name: "Pt-10%Rh / Pt",
	// Table 4.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -50, Max: 1064.18, Coeffs: []float64{
			0.000000000000e00,
			5.403133086310e00,
			1.259342897400e-02,
			-2.324779686890e-05,
			3.220288230360e-08,
			-3.314651963890e-11,
			2.557442517860e-14,
			-1.250688713930e-17,
			2.714431761450e-21,
		}},
		{Min: 1064.18, Max: 1664.5, Coeffs: []float64{
			1.329004440850e03,
			3.345093113440e00,
			6.548051928180e-03,
			-1.648562592090e-06,
			1.299896051740e-11,
		}},
		{Min: 1664.5, Max: 1768.1, Coeffs: []float64{
			1.466282326360e05,
			-2.584305167520e02,
			1.636935746410e-01,
			-3.304390469870e-05,
			-9.432236906120e-12,
		}},
	},
	// Table A4.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -235, Max: 1874, ErrBound: 0.02, Coeffs: []float64{
			0.000000000000e00,
			1.849494600000e-01,
			-8.005040620000e-05,
			1.022374300000e-07,
			-1.522485920000e-10,
			1.888213430000e-13,
			-1.590859410000e-16,
			8.230278800000e-20,
			-2.341819440000e-23,
			2.797862600000e-27,
		}},
		{Min: 1874, Max: 11950, ErrBound: 0.02, Coeffs: []float64{
			1.291507177000e01,
			1.466298863000e-01,
			-1.534713402000e-05,
			3.145945973000e-09,
			-4.163257839000e-13,
			3.187963771000e-17,
			-1.291637500000e-21,
			2.183475087000e-26,
			-1.447379511000e-31,
			8.211272125000e-36,
		}},
		{Min: 10332, Max: 17536, ErrBound: 0.02, Coeffs: []float64{
			-8.087801117000e01,
			1.621573104000e-01,
			-8.536869453000e-06,
			4.719686976000e-10,
			-1.441693666000e-14,
			2.081618890000e-19,
		}},
		{Min: 17536, Max: 18693, ErrBound: 0.02, Coeffs: []float64{
			5.333875126000e04,
			-1.235892298000e01,
			1.092657613000e-03,
			-4.265693686000e-08,
			6.247205420000e-13,
		}},
	},
	// SP equals the reference function; SN (pure Pt versus Pt-67) is
	// identically zero.
	legs: &legData{
		pos: []poly.Segment{
			{Min: -50, Max: 1064.18, Coeffs: []float64{
				0.000000000000e00,
				5.403133086310e00,
				1.259342897400e-02,
				-2.324779686890e-05,
				3.220288230360e-08,
				-3.314651963890e-11,
				2.557442517860e-14,
				-1.250688713930e-17,
				2.714431761450e-21,
			}},
			{Min: 1064.18, Max: 1664.5, Coeffs: []float64{
				1.329004440850e03,
				3.345093113440e00,
				6.548051928180e-03,
				-1.648562592090e-06,
				1.299896051740e-11,
			}},
			{Min: 1664.5, Max: 1768.1, Coeffs: []float64{
				1.466282326360e05,
				-2.584305167520e02,
				1.636935746410e-01,
				-3.304390469870e-05,
				-9.432236906120e-12,
			}},
		},
		neg: []poly.Segment{
			{Min: -50, Max: 1768.1, Coeffs: []float64{0}},
		},
	},
})
