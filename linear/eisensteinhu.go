package linear

import (
	"math"

	"github.com/suicee/symbolic-pofk/cosmo"
)

// EisensteinHu computes the "no-wiggles" zero-baryon approximation of
// Eisenstein & Hu (1998) to the linear power spectrum at z = 0, in units of
// (Mpc/h)^3. The primordial spectrum is a power law with amplitude
// c.As * 1e-9 and tilt c.Ns - 1 about the pivot scale cosmo.KPivot.
//
// If an output array is given, the result is written into it and returned.
// Otherwise a new array is allocated. Requires k > 0.
func EisensteinHu(k []float64, c *Cosmology, out ...[]float64) []float64 {
	pk := outArray(k, out)

	ombom0 := c.Ob / c.Om
	om0h2 := c.Om * c.H * c.H
	ombh2 := c.Ob * c.H * c.H

	// Sound horizon s, alphaGamma, and the effective shape Gamma.
	s := 44.5 * math.Log(9.83/om0h2) /
		math.Sqrt(1.0+10.0*math.Pow(ombh2, 0.75))
	alphaGamma := 1.0 - 0.328*math.Log(431.0*om0h2)*ombom0 +
		0.38*math.Log(22.3*om0h2)*ombom0*ombom0

	for i := range k {
		gamma := c.Om * c.H * (alphaGamma + (1.0-alphaGamma)/
			(1.0+math.Pow(0.43*k[i]*c.H*s, 4)))

		q := k[i] * cosmo.Theta2p7 * cosmo.Theta2p7 / gamma
		c0 := 14.2 + 731.0/(1.0+62.5*q)
		l0 := math.Log(2.0*math.E + 1.8*q)
		tk := l0 / (l0 + c0*q*q)

		norm := 2 * k[i] * k[i] * cosmo.CLight * cosmo.CLight / 5 / c.Om
		pk[i] = 2 * math.Pi * math.Pi / math.Pow(k[i], 3) *
			(c.As * 1e-9) * math.Pow(k[i]*c.H/cosmo.KPivot, c.Ns-1) *
			norm * norm * tk * tk
	}

	return pk
}
