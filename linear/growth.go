package linear

import (
	"math"

	"github.com/suicee/symbolic-pofk/cosmo"
)

// GrowthD computes an approximation to the scale-dependent linear growth
// factor at scale factor a. The growth without free streaming follows the
// fitting formulae of Bond et al. (1980), Lahav et al. (1992), and Carroll
// et al. (1992), and the suppression by massive neutrinos follows the
// D_cbnu form of Eisenstein & Hu (1997).
//
// There are two deviations from those references. First, Eisenstein & Hu
// choose D -> (1 + zeq) a at early times, whereas here D -> a. Second,
// their formulae assume w = -1, whereas here the Omega_Lambda terms use the
// w0-wa parameterization.
//
// If an output array is given, the result is written into it and returned.
// Otherwise a new array is allocated.
func GrowthD(k []float64, c *Cosmology, a float64, out ...[]float64) []float64 {
	d := outArray(k, out)

	// The species count tests the caller's Mnu: the singularity offset below
	// reaches the free-streaming denominators, but massless neutrinos must
	// still give nnu = 0 even though the offset moves mnu away from zero.
	nnu := 3.0
	if c.Mnu == 0.0 {
		nnu = 0.0
	}
	mnu := c.Mnu + 1e-10

	// Fitting formula without free streaming.
	z := 1/a - 1
	zeq := cosmo.ZEquality(c.Om, c.H)

	omega := c.Om * math.Pow(a, -3)
	ol := cosmo.DarkEnergyDensity(c.Om, c.W0, c.Wa, a)
	g := cosmo.HubbleFrac(c.Om, c.W0, c.Wa, a)
	omega /= g * g
	ol /= g * g

	d1 := (1 + zeq) / (1 + z) * 5 * omega / 2 /
		(math.Pow(omega, 4.0/7.0) - ol + (1+omega/2)*(1+ol/70))

	// Split Omega_m into CDM, baryons, and neutrinos.
	onu := cosmo.OmegaNu(mnu, c.H)
	oc := c.Om - c.Ob - onu
	fc := oc / c.Om
	fb := c.Ob / c.Om
	fnu := onu / c.Om
	fcb := fc + fb

	pcb := 0.25 * (5 - math.Sqrt(1+24*fcb))

	for i := range k {
		q := k[i] * c.H * cosmo.Theta2p7 * cosmo.Theta2p7 / (c.Om * c.H * c.H)
		x := nnu * q / fnu
		yfs := 17.2 * fnu * (1 + 0.488/math.Pow(fnu, 7.0/6.0)) * (x * x)
		dcbnu := math.Pow(
			math.Pow(fcb, 0.7/pcb)+math.Pow(d1/(1+yfs), 0.7), pcb/0.7,
		) * math.Pow(d1, 1-pcb)

		// Remove the (1 + zeq) normalization of Eisenstein & Hu (1997).
		d[i] = dcbnu / (1 + zeq)
	}

	return d
}

// Coefficients of the fitted growth factor correction.
var rCoeffs = [18]float64{
	0.8545, 0.394, 0.7294, 0.5347, 0.4662, 4.6669,
	0.4136, 1.4769, 0.5959, 0.4553, 0.0799, 5.8311,
	5.8014, 6.7085, 0.3445, 1.2498, 0.3756, 0.2136,
}

// GrowthR computes the emulated multiplicative correction to the growth
// factor at scale factor a. The fitted terms are modulated by (1 - a), so
// GrowthR is exactly 1 at the present day.
func GrowthR(c *Cosmology, a float64) float64 {
	d := &rCoeffs

	part1 := d[0]

	den1 := a*d[1] + d[2] +
		(c.Om*d[3]-a*d[4])*math.Log(-d[5]*c.W0-d[6]*c.Wa)
	part2 := -1 / den1

	num2 := c.Om*d[7] - a*d[8] + math.Log(-d[9]*c.W0-d[10]*c.Wa)
	den2 := -a*d[11] + d[12] +
		d[13]*(c.Om*d[14]+a*d[15]-1)*(d[16]*c.W0+d[17]*c.Wa+1)
	part3 := -num2 / den2

	return 1 + (1-a)*(part1+part2+part3)
}
