package linear

import (
	"math"
)

// Coefficients of the fitted log-ratio between the true LambdaCDM linear
// spectrum and the Eisenstein & Hu no-wiggle fit (Bartlett et al. 2023).
var fCoeffs = [37]float64{
	0.05448654, 0.00379, 0.0396711937097927, 0.127733431568858, 1.35,
	4.053543862744234, 0.0008084539054750851, 1.8852431049189666,
	0.11418372931475675, 3.798, 14.909, 5.56, 15.8274343004709,
	0.0230755621512691, 0.86531976, 0.8425442636372944, 4.553956000000005,
	5.116999999999995, 70.0234239999998, 0.01107, 5.35, 6.421, 134.309,
	5.324, 21.532, 4.741999999999985, 16.68722499999999, 3.078, 16.987,
	0.05881491, 0.0006864690561825617, 195.498, 0.0038454457516892,
	0.276696018851544, 7.385, 12.3960625361899, 0.0134114370723638,
}

// LogF computes the emulated logarithm of the ratio between the true
// LambdaCDM linear power spectrum and the Eisenstein & Hu no-wiggle fit, so
// that EisensteinHu(k, c) * exp(LogF(k, c)) approximates the true z=0
// spectrum. The fit captures the baryon acoustic oscillation wiggles the
// no-wiggle transfer function leaves out.
//
// If an output array is given, the result is written into it and returned.
// Otherwise a new array is allocated. Requires k > 0.
func LogF(k []float64, c *Cosmology, out ...[]float64) []float64 {
	f := outArray(k, out)
	b := &fCoeffs

	line1 := b[0]*c.H - b[1]
	amp := math.Pow(c.Ob*b[2]/math.Sqrt(c.H*c.H+b[3]), b[4]*c.Om)

	for i := range k {
		t1 := c.Ob - b[7]*k[i]
		osc1 := (b[5]*k[i] - c.Ob) / math.Sqrt(b[6]+t1*t1) * b[8] *
			math.Pow(b[9]*k[i], -b[10]*k[i]) *
			math.Cos(c.Om*b[11]-b[12]*k[i]/math.Sqrt(b[13]+c.Ob*c.Ob))
		osc2 := b[14] * (b[15]*k[i]/math.Sqrt(1+b[16]*k[i]*k[i]) - c.Om) *
			math.Cos(b[17]*c.H/math.Sqrt(1+b[18]*k[i]*k[i]))
		line2 := amp * (osc1 - osc2)

		line3 := b[19] * (b[20]*c.Om + b[21]*c.H - math.Log(b[22]*k[i]) +
			math.Pow(b[23]*k[i], -b[24]*k[i])) *
			math.Cos(b[25]/math.Sqrt(1+b[26]*k[i]*k[i]))

		t2 := c.Om - b[33]*c.H
		line4 := math.Pow(b[27]*k[i], -b[28]*k[i]) *
			(b[29]*k[i] - b[30]*math.Log(b[31]*k[i])/
				math.Sqrt(b[32]+t2*t2)) *
			math.Cos(c.Om*b[34]-b[35]*k[i]/math.Sqrt(c.Ob*c.Ob+b[36]))

		f[i] = line1 + line2 + line3 + line4
	}

	return f
}
