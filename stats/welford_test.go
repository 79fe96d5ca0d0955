package stats

import (
	"descstats/utils"
	"testing"
)

func TestWelford(t *testing.T) {
	welford := NewWelford()

	utils.AssertEqual(t, welford.Count(), uint64(0))
	utils.AssertNaN(t, welford.GetMean())
	utils.AssertNaN(t, welford.GetVariance())
	utils.AssertNaN(t, welford.GetSampleVariance())
	utils.AssertNaN(t, welford.GetCV())

	for i := 1; i < 100; i++ {
		welford.Update(float64(i))
	}

	utils.AssertEqual(t, welford.GetMean(), 50.0)
	utils.AssertClose(t, welford.GetVariance(), 816.666667, 1e-4)
	utils.AssertClose(t, welford.GetSampleVariance(), 825.0000, 1e-4)
	utils.AssertClose(t, welford.GetCV(), 0.5744563, 1e-4)
	utils.AssertClose(t, welford.GetSEM(), 2.8867513, 1e-6)
}

func TestWelford_SingleValue(t *testing.T) {
	welford := welfordOf([]int{7})
	utils.AssertEqual(t, welford.GetMean(), 7.0)
	utils.AssertEqual(t, welford.GetVariance(), 0.0)
	utils.AssertNaN(t, welford.GetSampleVariance())
}
