package stats

import (
	"math"
	"sort"
)

func sortedCopy[T Number](x []T) []float64 {
	s := toFloat64s(x)
	sort.Float64s(s)
	return s
}

// quantileSorted interpolates linearly between the order statistics of s,
// which must already be sorted (Hyndman & Fan type 7).
func quantileSorted(s []float64, p float64) float64 {
	n := len(s)
	if n == 0 || math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return s[n-1]
	}
	return s[i] + (h-lo)*(s[i+1]-s[i])
}

// Quantile returns the p-quantile of x for p in [0, 1]. Probabilities outside
// that interval and empty samples give NaN.
func Quantile[T Number](x []T, p float64) float64 {
	return quantileSorted(sortedCopy(x), p)
}

// Percentile is Quantile with p given in percent.
func Percentile[T Number](x []T, p float64) float64 {
	return Quantile(x, p/100)
}

// Quantiles returns the minimum, first quartile, median, third quartile and
// maximum of x.
func Quantiles[T Number](x []T) []float64 {
	return quantilesAt(sortedCopy(x), []float64{0, 0.25, 0.5, 0.75, 1})
}

// NQuantile returns the n+1 quantiles at 0, 1/n, ..., 1. It returns nil for
// n < 1.
func NQuantile[T Number](x []T, n int) []float64 {
	if n < 1 {
		return nil
	}
	ps := make([]float64, n+1)
	for i := range ps {
		ps[i] = float64(i) / float64(n)
	}
	ps[n] = 1
	return quantilesAt(sortedCopy(x), ps)
}

func IQR[T Number](x []T) float64 {
	s := sortedCopy(x)
	return quantileSorted(s, 0.75) - quantileSorted(s, 0.25)
}

func quantilesAt(s []float64, ps []float64) []float64 {
	qs := make([]float64, len(ps))
	for i, p := range ps {
		qs[i] = quantileSorted(s, p)
	}
	return qs
}
