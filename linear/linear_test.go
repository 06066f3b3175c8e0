package linear

import (
	"gonum.org/v1/gonum/floats"
)

// Shared fixtures for the linear package tests. The expected values in the
// golden tables were generated with the reference implementation of the
// fits, evaluated in double precision.

var (
	fiducial = &Cosmology{
		As: 2.1, Om: 0.3, Ob: 0.05, H: 0.7,
		Ns: 0.96, Mnu: 0.06, W0: -1, Wa: 0,
	}
	massless = &Cosmology{
		As: 2.1, Om: 0.3, Ob: 0.05, H: 0.7,
		Ns: 0.96, Mnu: 0, W0: -1, Wa: 0,
	}
	w0waCDM = &Cosmology{
		As: 1.8, Om: 0.31, Ob: 0.049, H: 0.68,
		Ns: 0.97, Mnu: 0.12, W0: -0.9, Wa: 0.1,
	}

	testKs = []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
)

// goldenEps is the relative tolerance of the golden-value tests. It leaves
// room for ulp-level differences between math library implementations while
// still catching any coefficient transcription error.
const goldenEps = 1e-10

// logSpan returns n logarithmically spaced points between lo and hi.
func logSpan(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}
