package linear

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPLinGolden(t *testing.T) {
	table := []struct {
		c  *Cosmology
		a  float64
		pk []float64
	}{
		{fiducial, 1, []float64{
			1.616066847832574e+04, 2.355199219120332e+04,
			1.255830334308407e+04, 5.449872690697501e+03,
			3.076935112269604e+02, 6.584286570610166e+01,
			1.283600713959355e+00,
		}},
		{fiducial, 0.5, []float64{
			6.057677036193476e+03, 8.833648998082630e+03,
			4.714127673739197e+03, 2.045963959415443e+03,
			1.155191257182877e+02, 2.471986340949199e+01,
			4.819125873275343e-01,
		}},
		{w0waCDM, 1, []float64{
			1.188050417144096e+04, 1.729300335669890e+04,
			9.474026877839675e+03, 4.186715206282081e+03,
			2.403208402662419e+02, 5.185906802992012e+01,
			1.030586009915142e+00,
		}},
	}
	for i, test := range table {
		pk := PLinAt(testKs, test.c, test.a)
		require.Len(t, pk, len(testKs))
		for j := range pk {
			assert.InEpsilon(t, test.pk[j], pk[j], goldenEps,
				"%d) PLinAt at k = %g", i+1, testKs[j])
		}
	}
}

func TestPLinPresentDay(t *testing.T) {
	pk1 := PLin(testKs, fiducial)
	pk2 := PLinAt(testKs, fiducial, 1)
	assert.Equal(t, pk2, pk1, "PLin should match PLinAt at a = 1")
}

func TestPLinEndToEnd(t *testing.T) {
	k := []float64{0.01, 0.1, 1.0}
	pk := PLinAt(k, fiducial, 1)
	require.Len(t, pk, 3)
	for i := range pk {
		if pk[i] <= 0 || math.IsInf(pk[i], 0) || math.IsNaN(pk[i]) {
			t.Errorf("P(k = %g) is %g, which isn't a positive finite "+
				"number.", k[i], pk[i])
		}
	}
}

func TestPLinTurnover(t *testing.T) {
	// The spectrum rises on large scales and falls past the turnover near
	// the equality scale, k ~ 0.01 - 0.1 h/Mpc.
	k := logSpan(1e-3, 10, 128)
	pk := PLin(k, fiducial)

	iMax := 0
	for i := range pk {
		if pk[i] > pk[iMax] {
			iMax = i
		}
	}
	kMax := k[iMax]
	if kMax < 0.01 || kMax > 0.1 {
		t.Errorf("P(k) peaks at k = %g, outside the expected turnover "+
			"range [0.01, 0.1].", kMax)
	}
	assert.Greater(t, pk[iMax], pk[0])
	assert.Greater(t, pk[iMax], pk[len(pk)-1])
}

func TestPLinOutput(t *testing.T) {
	out := make([]float64, len(testKs))
	pk := PLinAt(testKs, fiducial, 1, out)
	assert.Same(t, &out[0], &pk[0], "result should use the given buffer")
}

func BenchmarkPLin200(b *testing.B) {
	k := logSpan(1e-3, 10, 200)
	out := make([]float64, 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		PLinAt(k, fiducial, 1, out)
	}
}
