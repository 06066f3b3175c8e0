package linear

import (
	"math"
)

// Coefficients of the fitted present-day power spectrum correction.
var sCoeffs = [18]float64{
	0.2841, 0.1679, 0.0534, 0.0024, 0.1183, 0.3971,
	0.0985, 0.0009, 0.1258, 0.2476, 0.1841, 0.0316,
	0.1385, 0.2825, 0.8098, 0.019, 0.1376, 0.3733,
}

// Log10S computes the emulated base-10 logarithm of the correction to the
// present-day linear power spectrum, S, such that the corrected spectrum is
// P(k) * 10**Log10S(k).
//
// If an output array is given, the result is written into it and returned.
// Otherwise a new array is allocated.
func Log10S(k []float64, c *Cosmology, out ...[]float64) []float64 {
	s := outArray(k, out)
	e := &sCoeffs

	part1 := -e[0] * c.H
	part2 := -e[1] * c.W0
	part4 := -(e[4] * c.H) / (e[5]*c.H + c.Mnu)

	num6 := e[9]*c.Ob - e[10]*c.W0 - e[11]*c.Wa +
		(e[12]*c.W0+e[13])/(e[14]*c.Wa+c.W0)
	lg := c.Om + e[16]*math.Log(-e[17]*c.W0)
	den6 := math.Sqrt(e[15] + lg*lg)
	part6 := num6 / den6

	for i := range k {
		part3 := -e[2] * c.Mnu / math.Sqrt(e[3]+k[i]*k[i])
		t := c.Om*e[8] + k[i]
		part5 := e[6] * c.Mnu / (c.H * math.Sqrt(e[7]+t*t))

		s[i] = (part1 + part2 + part3 + part4 + part5 + part6) / 10
	}

	return s
}
