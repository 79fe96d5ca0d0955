package stats

import (
	"math"
	"sort"
)

// Consistency constant making MAD an estimator of the standard deviation
// for normally distributed data.
const madScale = 1.4826

// VariationAround returns the coefficient of variation: the standard
// deviation of x about m (corrected by n-1) divided by m.
func VariationAround[T Number](x []T, m float64) float64 {
	ss := 0.0
	for _, v := range x {
		z := float64(v) - m
		ss += z * z
	}
	return math.Sqrt(ss/float64(len(x)-1)) / m
}

func Variation[T Number](x []T) float64 {
	return welfordOf(x).GetCV()
}

// SEM returns the standard error of the mean.
func SEM[T Number](x []T) float64 {
	return welfordOf(x).GetSEM()
}

// medianInPlace sorts x and returns its median.
func medianInPlace(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	sort.Float64s(x)
	if n%2 == 1 {
		return x[n/2]
	}
	return (x[n/2-1] + x[n/2]) / 2
}

// MADInPlaceAround overwrites x with |x[i] - center| and returns the scaled
// median of those deviations. x is left holding the sorted deviations, so a
// second call on the same slice does not recompute the original statistic.
func MADInPlaceAround(x []float64, center float64) float64 {
	for i, v := range x {
		x[i] = math.Abs(v - center)
	}
	return madScale * medianInPlace(x)
}

// MADInPlace is MADInPlaceAround about the median of x.
func MADInPlace(x []float64) float64 {
	return MADInPlaceAround(x, medianInPlace(x))
}

// MADAround returns the median absolute deviation of x about center, scaled
// by 1.4826. x is not modified.
func MADAround[T Number](x []T, center float64) float64 {
	return MADInPlaceAround(toFloat64s(x), center)
}

func MAD[T Number](x []T) float64 {
	return MADInPlace(toFloat64s(x))
}
