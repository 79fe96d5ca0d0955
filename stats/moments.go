package stats

import "math"

// SkewnessAround returns the standardized third central moment of x about m.
// A constant sample gives NaN.
func SkewnessAround[T Number](x []T, m float64) float64 {
	n := float64(len(x))
	cm2 := 0.0 // empirical 2nd centered moment (variance)
	cm3 := 0.0 // empirical 3rd centered moment
	for _, v := range x {
		z := float64(v) - m
		z2 := z * z
		cm2 += z2
		cm3 += z2 * z
	}
	cm3 /= n
	cm2 /= n
	return cm3 / math.Sqrt(cm2*cm2*cm2) // cm3 / cm2^1.5
}

func Skewness[T Number](x []T) float64 {
	return SkewnessAround(x, mean(x))
}

// WeightedSkewnessAround is SkewnessAround with each centered term scaled by
// its weight and the moments normalized by the total weight.
func WeightedSkewnessAround[T Number](x []T, w []float64, m float64) (float64, error) {
	if err := checkWeights(len(x), w); err != nil {
		return 0, err
	}
	cm2 := 0.0
	cm3 := 0.0
	for i, v := range x {
		z := float64(v) - m
		z2w := z * z * w[i]
		cm2 += z2w
		cm3 += z2w * z
	}
	sw := sumWeights(w)
	cm3 /= sw
	cm2 /= sw
	return cm3 / math.Sqrt(cm2*cm2*cm2), nil
}

func WeightedSkewness[T Number](x []T, w []float64) (float64, error) {
	if err := checkWeights(len(x), w); err != nil {
		return 0, err
	}
	return WeightedSkewnessAround(x, w, weightedMean(x, w))
}

// KurtosisAround returns the excess kurtosis of x about m, so a normal
// distribution scores 0.
func KurtosisAround[T Number](x []T, m float64) float64 {
	n := float64(len(x))
	cm2 := 0.0 // empirical 2nd centered moment (variance)
	cm4 := 0.0 // empirical 4th centered moment
	for _, v := range x {
		z := float64(v) - m
		z2 := z * z
		cm2 += z2
		cm4 += z2 * z2
	}
	cm4 /= n
	cm2 /= n
	return cm4/(cm2*cm2) - 3.0
}

func Kurtosis[T Number](x []T) float64 {
	return KurtosisAround(x, mean(x))
}

func WeightedKurtosisAround[T Number](x []T, w []float64, m float64) (float64, error) {
	if err := checkWeights(len(x), w); err != nil {
		return 0, err
	}
	cm2 := 0.0
	cm4 := 0.0
	for i, v := range x {
		z := float64(v) - m
		z2 := z * z
		z2w := z2 * w[i]
		cm2 += z2w
		cm4 += z2w * z2
	}
	sw := sumWeights(w)
	cm4 /= sw
	cm2 /= sw
	return cm4/(cm2*cm2) - 3.0, nil
}

func WeightedKurtosis[T Number](x []T, w []float64) (float64, error) {
	if err := checkWeights(len(x), w); err != nil {
		return 0, err
	}
	return WeightedKurtosisAround(x, w, weightedMean(x, w))
}
