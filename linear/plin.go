package linear

import (
	"math"
)

// PLinAt computes the emulated linear matter power spectrum at scale factor
// a, in units of (Mpc/h)^3. It combines the Eisenstein & Hu no-wiggle
// spectrum, the approximate growth factor, the fitted correction to the
// Eisenstein & Hu shape, and the fitted corrections to the growth factor
// and to the present-day spectrum:
//
//	P(k) = EH(k) D(k)**2 exp(LogF(k)) R 10**Log10S(k)
//
// The five sub-models are independent of one another; they only share the
// input parameters.
//
// If an output array is given, the result is written into it and returned.
// Otherwise a new array is allocated. Requires k > 0.
func PLinAt(k []float64, c *Cosmology, a float64, out ...[]float64) []float64 {
	pk := EisensteinHu(k, c, out...)

	d := GrowthD(k, c, a)
	f := LogF(k, c)
	s := Log10S(k, c)
	r := GrowthR(c, a)

	for i := range pk {
		pk[i] *= d[i] * d[i] * math.Exp(f[i]) * r * math.Pow(10, s[i])
	}

	return pk
}

// PLin computes the emulated linear matter power spectrum at the present
// day (a = 1).
func PLin(k []float64, c *Cosmology, out ...[]float64) []float64 {
	return PLinAt(k, c, 1, out...)
}
