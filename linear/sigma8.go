package linear

import (
	"math"
)

// Coefficients of the fitted As <-> sigma8 conversion.
var sigma8Coeffs = [16]float64{
	0.0187, 2.4891, 12.9495, 0.7527,
	2.3685, 1.5062, 1.3057, 0.0885,
	0.1471, 3.4982, 0.006, 19.2779,
	11.1463, 1.5433, 7.0578, 2.0564,
}

// sigma8Ratio evaluates the fitted ratio sigma8 / sqrt(As) for the given
// cosmology. Both conversion directions share it, which is what makes them
// exact algebraic inverses of each other.
func sigma8Ratio(c *Cosmology) float64 {
	s := &sigma8Coeffs

	term1 := s[0] * (-c.Ob*s[1] + c.Om*s[2] +
		math.Log(-s[3]*c.W0+math.Log(-s[4]*c.W0-s[5]*c.Wa)))
	term2 := c.Om*s[6] + s[7]*c.Mnu + s[8]*c.Ns -
		math.Log(c.Om*s[9]-s[10]*c.Wa)
	term3 := c.Ob*s[11] - c.Om*s[12] - c.Ns
	term4 := -c.Om*s[13] - s[14]*c.H + s[15]*c.Mnu + c.Ns

	return term1 * term2 * term3 * term4
}

// AsToSigma8 computes the emulated conversion from the primordial amplitude
// c.As to sigma8, the z=0 rms mass fluctuation in spheres of radius
// 8 Mpc/h. Dark energy parameters which put a logarithm argument out of
// range (e.g. w0 = 0, wa = 0) give NaN.
func AsToSigma8(c *Cosmology) float64 {
	return sigma8Ratio(c) * math.Sqrt(c.As)
}

// Sigma8ToAs computes the emulated conversion from sigma8 back to the
// primordial amplitude As (times 10^9) for the given cosmology. c.As is
// ignored.
func Sigma8ToAs(sigma8 float64, c *Cosmology) float64 {
	r := sigma8 / sigma8Ratio(c)
	return r * r
}
