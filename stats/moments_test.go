package stats

import (
	"descstats/utils"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"math/rand"
	"testing"
)

func TestSkewnessAround_Known(t *testing.T) {
	x := []float64{1, 2, 3, 4, 10}
	utils.AssertClose(t, SkewnessAround(x, 4), 1.1384199576606167, 1e-12)
	utils.AssertClose(t, Skewness(x), 1.1384199576606167, 1e-12)
}

func TestKurtosisAround_Known(t *testing.T) {
	x := []float64{1, 2, 3, 4, 10}
	utils.AssertClose(t, KurtosisAround(x, 4), -0.212, 1e-12)
	utils.AssertClose(t, Kurtosis(x), -0.212, 1e-12)
}

func TestSkewness_IntegerSample(t *testing.T) {
	xi := []int{1, 2, 3, 4, 10}
	xf := []float64{1, 2, 3, 4, 10}
	assert.Equal(t, Skewness(xf), Skewness(xi))
	assert.Equal(t, Kurtosis(xf), Kurtosis(xi))
}

func TestSkewness_Reflection(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x := make([]float64, 500)
	y := make([]float64, len(x))
	for i := range x {
		x[i] = rng.ExpFloat64()
		y[i] = 3 - x[i]
	}
	sx := Skewness(x)
	assert.Greater(t, sx, 0.5)
	assert.InDelta(t, -sx, Skewness(y), 1e-9)
	assert.InDelta(t, Kurtosis(x), Kurtosis(y), 1e-9)
}

func TestMoments_ConstantSample(t *testing.T) {
	x := []float64{2, 2, 2, 2}
	utils.AssertNaN(t, Skewness(x))
	utils.AssertNaN(t, Kurtosis(x))
}

func TestMoments_NormalSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := make([]float64, 100000)
	for i := range x {
		x[i] = 5 + 2*rng.NormFloat64()
	}
	assert.InDelta(t, 0.0, Skewness(x), 0.05)
	assert.InDelta(t, 0.0, Kurtosis(x), 0.1)
}

func TestWeightedMoments_UnitWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := make([]float64, 257)
	w := make([]float64, len(x))
	for i := range x {
		x[i] = rng.Float64() * 100
		w[i] = 1
	}
	m := mean(x)

	ws, err := WeightedSkewnessAround(x, w, m)
	require.NoError(t, err)
	assert.Equal(t, SkewnessAround(x, m), ws)

	wk, err := WeightedKurtosisAround(x, w, m)
	require.NoError(t, err)
	assert.Equal(t, KurtosisAround(x, m), wk)

	ws, err = WeightedSkewness(x, w)
	require.NoError(t, err)
	assert.InDelta(t, Skewness(x), ws, 1e-12)
}

func TestWeightedMoments_IntegerWeightsReplicate(t *testing.T) {
	x := []float64{1, 2, 3, 7}
	w := []float64{1, 1, 2, 3}
	replicated := []float64{1, 2, 3, 3, 7, 7, 7}

	ws, err := WeightedSkewness(x, w)
	require.NoError(t, err)
	assert.InDelta(t, Skewness(replicated), ws, 1e-12)

	wk, err := WeightedKurtosis(x, w)
	require.NoError(t, err)
	assert.InDelta(t, Kurtosis(replicated), wk, 1e-12)
}

func TestWeightedMoments_DimensionMismatch(t *testing.T) {
	x := []float64{1, 2, 3}
	w := []float64{1, 1}

	_, err := WeightedSkewness(x, w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = WeightedSkewnessAround(x, w, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = WeightedKurtosis(x, w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = WeightedKurtosisAround(x, w, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	var dm *DimensionMismatchError
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 3, dm.Data)
	assert.Equal(t, 2, dm.Weights)
}

func TestWeightedMoments_ZeroWeights(t *testing.T) {
	ws, err := WeightedSkewnessAround([]float64{1, 2}, []float64{0, 0}, 1.5)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(ws))
}
