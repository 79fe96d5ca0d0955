package stats

import "math"

// Middle returns the midpoint of a and b. For integer types the division
// truncates toward zero.
func Middle[T Number](a, b T) T {
	return (a + b) / 2
}

func extrema[T Number](x []T) (T, T) {
	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Range returns max(x) - min(x), or the zero value for an empty sample.
func Range[T Number](x []T) T {
	if len(x) == 0 {
		var zero T
		return zero
	}
	lo, hi := extrema(x)
	return hi - lo
}

// MidRange returns (min(x) + max(x)) / 2, or NaN for an empty sample.
func MidRange[T Number](x []T) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	lo, hi := extrema(x)
	return (float64(lo) + float64(hi)) / 2
}
