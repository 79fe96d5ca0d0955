package stats

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Number is any element type a sample can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

func toFloat64s[T Number](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

func mean[T Number](x []T) float64 {
	return stat.Mean(toFloat64s(x), nil)
}

func weightedMean[T Number](x []T, w []float64) float64 {
	return stat.Mean(toFloat64s(x), w)
}

func sumWeights(w []float64) float64 {
	return floats.Sum(w)
}
