package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type K (Ni-Cr "Chromel" / Ni-Al "Alumel"): -270 °C to 1372 °C,
// -6.458 mV to 54.886 mV.  NIST Monograph 175, ITS-90.  The reference
// function above 0 °C carries an exponential correction term in
// addition to the base polynomial.
var typeK = mustThermocouple(Thermocouple{
	code: TypeK,
	name: "Ni-Cr / Ni-Al",
	// Table 10.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -270, Max: 0, Coeffs: []float64{
			0.000000000000e00,
			3.945012802500e01,
			2.362237359800e-02,
			-3.285890678400e-04,
			-4.990482877700e-06,
			-6.750905917300e-08,
			-5.741032742800e-10,
			-3.108887289400e-12,
			-1.045160936500e-14,
			-1.988926687800e-17,
			-1.632269748600e-20,
		}},
		{Min: 0, Max: 1372, Coeffs: []float64{
			-1.760041368600e01,
			3.892120497500e01,
			1.855877003200e-02,
			-9.945759287400e-05,
			3.184094571900e-07,
			-5.607284488900e-10,
			5.607505905900e-13,
			-3.202072000300e-16,
			9.715114715200e-20,
			-1.210472127500e-23,
		}},
	},
	// Table A10.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -5891, Max: 0, ErrBound: 0.04, Coeffs: []float64{
			0.000000000000e00,
			2.517346200000e-02,
			-1.166287800000e-06,
			-1.083363800000e-09,
			-8.977354000000e-13,
			-3.734237700000e-16,
			-8.663264300000e-20,
			-1.045059800000e-23,
			-5.192057700000e-28,
		}},
		{Min: 0, Max: 20644, ErrBound: 0.05, Coeffs: []float64{
			0.000000000000e00,
			2.508355000000e-02,
			7.860106000000e-08,
			-2.503131000000e-10,
			8.315270000000e-14,
			-1.228034000000e-17,
			9.804036000000e-22,
			-4.413030000000e-26,
			1.057734000000e-30,
			-1.052755000000e-35,
		}},
		{Min: 20644, Max: 54886, ErrBound: 0.06, Coeffs: []float64{
			-1.318058000000e02,
			4.830222000000e-02,
			-1.646031000000e-06,
			5.464731000000e-11,
			-9.650715000000e-16,
			8.802193000000e-21,
			-3.110810000000e-26,
		}},
	},
	// a0·exp(a1·(T−a2)²), carried by the 0 °C to 1372 °C branch of the
	// published reference function.  At 0 °C the branch's constant term
	// −17.6 µV cancels it exactly, keeping E(0) = 0.
	exp: &expTerm{
		a0:  1.185976000000e02,
		a1:  -1.183432000000e-04,
		a2:  1.269686000000e02,
		min: 0,
		max: 1372,
	},
})
