/*package linear emulates the linear matter power spectrum P(k) using the
closed-form symbolic fits of Bartlett et al. (2023), extended to w0waCDM
cosmologies with massive neutrinos. Every function is a pure formula
evaluation over hardcoded fitted coefficients: there is no state, no I/O,
and no input validation. Out-of-domain parameters (a logarithm or square
root of a negative number, k = 0 under a negative power) propagate through
the arithmetic as NaN or Inf instead of returning errors, so the caller is
responsible for supplying physically sensible values.*/
package linear

import (
	"fmt"
)

// Cosmology collects the parameters the emulator depends on. As is 10^9
// times the amplitude of the primordial power spectrum, Om and Ob are the
// z=0 total matter and baryon density parameters, H is H0 divided by
// 100 km/s/Mpc, Ns is the spectral tilt of the primordial power spectrum,
// Mnu is the sum of the neutrino masses in eV, and W0 and Wa parameterize
// the dark energy equation of state, w(a) = w0 + wa*(1 - a).
type Cosmology struct {
	As, Om, Ob, H, Ns, Mnu, W0, Wa float64
}

// Example returns a fiducial flat LambdaCDM cosmology. It is used for the
// default values of config files and as a known-good reference point.
func Example() *Cosmology {
	return &Cosmology{
		As: 2.1, Om: 0.3, Ob: 0.05, H: 0.7,
		Ns: 0.96, Mnu: 0.06, W0: -1, Wa: 0,
	}
}

// outArray returns the array a k-shaped result should be written to,
// allocating one if the caller didn't supply an output buffer.
func outArray(k []float64, out [][]float64) []float64 {
	if len(out) == 0 {
		return make([]float64, len(k))
	}
	if len(out[0]) != len(k) {
		panic(fmt.Sprintf("Output array has length %d, but the k array "+
			"has length %d.", len(out[0]), len(k)))
	}
	return out[0]
}
