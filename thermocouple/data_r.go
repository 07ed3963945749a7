package thermocouple

import "github.com/katalvlaran/thermo/poly"

// Type R (Pt-13%Rh / Pt): −50 °C to 1768.1 °C, −0.226 mV to 21.103 mV.
// NIST Monograph 175, ITS-90.  The negative thermoelement is pure
// platinum, so versus Pt-67 it contributes nothing and the positive leg
// carries the whole reference function.
var typeR = mustThermocouple(Thermocouple{
	code: TypeR,
	name: "Pt-13%Rh / Pt",
	// Table 3.3.1, °C → µV.
	forward: []poly.Segment{
		{Min: -50, Max: 1064.18, Coeffs: []float64{
			0.000000000000e00,
			5.289617297650e00,
			1.391665897820e-02,
			-2.388556930170e-05,
			3.569160010630e-08,
			-4.623476662980e-11,
			5.007774410340e-14,
			-3.731058861910e-17,
			1.577164823670e-20,
			-2.810386252510e-24,
		}},
		{Min: 1064.18, Max: 1664.5, Coeffs: []float64{
			2.951579253160e03,
			-2.520612513320e00,
			1.595645018650e-02,
			-7.640859475760e-06,
			2.053052910240e-09,
			-2.933596681730e-13,
		}},
		{Min: 1664.5, Max: 1768.1, Coeffs: []float64{
			1.522321182090e05,
			-2.688198885450e02,
			1.712802804710e-01,
			-3.458957064530e-05,
			-9.346339710460e-12,
		}},
	},
	// Table A3.1, µV → °C.  The third range overlaps the second; the
	// second wins below 13228 µV by declaration order.
	inverse: []poly.Segment{
		{Min: -226, Max: 1923, ErrBound: 0.02, Coeffs: []float64{
			0.000000000000e00,
			1.889138000000e-01,
			-9.383529000000e-05,
			1.306861900000e-07,
			-2.270358000000e-10,
			3.514565900000e-13,
			-3.895390000000e-16,
			2.823947100000e-19,
			-1.260728100000e-22,
			3.135361100000e-26,
			-3.318776900000e-30,
		}},
		{Min: 1923, Max: 13228, ErrBound: 0.02, Coeffs: []float64{
			1.334584505000e01,
			1.472644573000e-01,
			-1.844024844000e-05,
			4.031129726000e-09,
			-6.249428360000e-13,
			6.468412046000e-17,
			-4.458750426000e-21,
			1.994710149000e-25,
			-5.313401790000e-30,
			6.481976217000e-35,
		}},
		{Min: 11361, Max: 19739, ErrBound: 0.02, Coeffs: []float64{
			-8.199599416000e01,
			1.553962042000e-01,
			-8.342197663000e-06,
			4.279433549000e-10,
			-1.191577910000e-14,
			1.492290091000e-19,
		}},
		{Min: 19739, Max: 21103, ErrBound: 0.02, Coeffs: []float64{
			3.406177836000e04,
			-7.023729171000e00,
			5.582903813000e-04,
			-1.952394635000e-08,
			2.560740231000e-13,
		}},
	},
	// RP equals the reference function; RN (pure Pt versus Pt-67) is
	// identically zero.
	legs: &legData{
		pos: []poly.Segment{
			{Min: -50, Max: 1064.18, Coeffs: []float64{
				0.000000000000e00,
				5.289617297650e00,
				1.391665897820e-02,
				-2.388556930170e-05,
				3.569160010630e-08,
				-4.623476662980e-11,
				5.007774410340e-14,
				-3.731058861910e-17,
				1.577164823670e-20,
				-2.810386252510e-24,
			}},
			{Min: 1064.18, Max: 1664.5, Coeffs: []float64{
				2.951579253160e03,
				-2.520612513320e00,
				1.595645018650e-02,
				-7.640859475760e-06,
				2.053052910240e-09,
				-2.933596681730e-13,
			}},
			{Min: 1664.5, Max: 1768.1, Coeffs: []float64{
				1.522321182090e05,
				-2.688198885450e02,
				1.712802804710e-01,
				-3.458957064530e-05,
				-9.346339710460e-12,
			}},
		},
		neg: []poly.Segment{
			{Min: -50, Max: 1768.1, Coeffs: []float64{0}},
		},
	},
})
