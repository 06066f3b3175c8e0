/*package cosmo provides background parameters and relations for flat
w0waCDM universes.*/
package cosmo

import (
	"math"
)

const (
	// Tcmb0 is the present-day CMB temperature in Kelvin.
	Tcmb0 = 2.7255

	// Theta2p7 is the CMB temperature in units of 2.7 K.
	Theta2p7 = Tcmb0 / 2.7

	// CLight is the speed of light in units of 100 km/s, so that the comoving
	// horizon scale c/H0 is CLight/h Mpc. The fits in the linear package bake
	// this constant in at this precision.
	CLight = 2998.0

	// KPivot is the pivot scale of the primordial power spectrum in h/Mpc.
	KPivot = 0.05

	// NuMassNorm converts a neutrino mass sum in eV into a density parameter:
	// OmegaNu = mnu / NuMassNorm / h**2.
	NuMassNorm = 93.14
)

// DarkEnergyDensity calculates the dark energy contribution to E(a)**2 for
// a flat universe with the CPL equation of state w(a) = w0 + wa*(1 - a),
// (1 - OmegaM) a**(-3 (1 + w0 + wa)) exp(-3 wa (1 - a)). With w0 = -1 and
// wa = 0 this reduces to the constant OmegaL of LambdaCDM.
func DarkEnergyDensity(omegaM, w0, wa, a float64) float64 {
	return (1 - omegaM) * math.Pow(a, -3*(1+w0+wa)) * math.Exp(-3*wa*(1-a))
}

// HubbleFrac calculates E(a) = H(a)/H0. Here H(a) is from Hubble's Law for
// a flat universe containing matter and a w0-wa dark energy component,
// H(a)**2 = H0**2 (OmegaM a**-3 + OmegaDE(a)). An alternate formulation is
// E(a) = da/dt / (a H0). Assumes k, r = 0.
func HubbleFrac(omegaM, w0, wa, a float64) float64 {
	return math.Sqrt(omegaM*math.Pow(a, -3) +
		DarkEnergyDensity(omegaM, w0, wa, a))
}

// ZEquality calculates the redshift of matter-radiation equality,
// 2.5e4 OmegaM h**2 / Theta2p7**4 (Eisenstein & Hu 1998, eq. 2).
func ZEquality(omegaM, h float64) float64 {
	return 2.5e4 * omegaM * (h * h) / math.Pow(Theta2p7, 4)
}

// OmegaNu calculates the z=0 density parameter of neutrinos with mass sum
// mnu, given in eV.
func OmegaNu(mnu, h float64) float64 {
	return mnu / NuMassNorm / (h * h)
}
