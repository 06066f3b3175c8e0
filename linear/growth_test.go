package linear

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthRPresentDay(t *testing.T) {
	cs := []*Cosmology{
		fiducial,
		massless,
		w0waCDM,
		{As: 3.0, Om: 0.25, Ob: 0.04, H: 0.65,
			Ns: 0.95, Mnu: 0.1, W0: -1.1, Wa: -0.2},
	}
	for i, c := range cs {
		// The (1 - a) modulation makes this exact, not just approximate.
		assert.Equal(t, 1.0, GrowthR(c, 1), "%d) GrowthR at a = 1", i+1)
	}
}

func TestGrowthRGolden(t *testing.T) {
	table := []struct {
		c *Cosmology
		a float64
		r float64
	}{
		{fiducial, 0.5, 9.969113504867202e-01},
		{fiducial, 1.0 / 3, 9.977933080129149e-01},
		{w0waCDM, 0.5, 1.052196866206376e+00},
		{w0waCDM, 1.0 / 3, 1.068274762181164e+00},
	}
	for i, test := range table {
		assert.InEpsilon(t, test.r, GrowthR(test.c, test.a), goldenEps,
			"%d) GrowthR", i+1)
	}
}

func TestGrowthDGolden(t *testing.T) {
	table := []struct {
		c *Cosmology
		a float64
		d []float64
	}{
		{fiducial, 1, []float64{
			7.616118087733831e-01, 7.601095875660441e-01,
			7.587577023110030e-01, 7.586288962701419e-01,
			7.585560403202771e-01, 7.585506551363622e-01,
			7.585477104258770e-01,
		}},
		{fiducial, 0.5, []float64{
			4.670128127427776e-01, 4.662342619383115e-01,
			4.655968441758650e-01, 4.655399135290000e-01,
			4.655080315405404e-01, 4.655056842246710e-01,
			4.655044012134011e-01,
		}},
		{w0waCDM, 0.8, []float64{
			6.576230287059576e-01, 6.539098588978939e-01,
			6.494083174128588e-01, 6.488496064355814e-01,
			6.485162509165908e-01, 6.484910623415104e-01,
			6.484772555632718e-01,
		}},
	}
	for i, test := range table {
		d := GrowthD(testKs, test.c, test.a)
		require.Len(t, d, len(testKs))
		for j := range d {
			assert.InEpsilon(t, test.d[j], d[j], goldenEps,
				"%d) GrowthD at k = %g", i+1, testKs[j])
		}
	}
}

func TestGrowthDMasslessNeutrinos(t *testing.T) {
	// With mnu exactly zero the species count is zero, so the free-streaming
	// suppression vanishes and D is the same at every k, even though the
	// singularity offset moves the internal mnu away from zero.
	d := GrowthD(testKs, massless, 1)
	assert.InEpsilon(t, 7.779372551876891e-01, d[0], goldenEps)
	for j := range d {
		assert.Equal(t, d[0], d[j], "D should be scale-independent "+
			"for massless neutrinos")
	}

	// Any nonzero mnu, however small, flips the species count to 3 and
	// makes D scale-dependent.
	tiny := *massless
	tiny.Mnu = 1e-12
	d = GrowthD(testKs, &tiny, 1)
	assert.NotEqual(t, d[0], d[len(d)-1], "D should be scale-dependent "+
		"for any nonzero neutrino mass")
}

func BenchmarkGrowthD200(b *testing.B) {
	k := logSpan(1e-3, 10, 200)
	out := make([]float64, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GrowthD(k, fiducial, 1, out)
	}
}
