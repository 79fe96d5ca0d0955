package stats

import "math"

// Welford accumulates the mean and variance of a sample in one pass.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

func NewWelford() *Welford {
	return &Welford{
		count: 0,
		mean:  0,
		m2:    0,
	}
}

func welfordOf[T Number](x []T) *Welford {
	welford := NewWelford()
	for _, v := range x {
		welford.Update(float64(v))
	}
	return welford
}

func (welford *Welford) Update(value float64) {
	welford.count++
	delta := value - welford.mean
	welford.mean += delta / float64(welford.count)
	delta2 := value - welford.mean
	welford.m2 += delta * delta2
}

func (welford *Welford) Count() uint64 {
	return welford.count
}

func (welford *Welford) GetMean() float64 {
	if welford.count == 0 {
		return math.NaN()
	}
	return welford.mean
}

func (welford *Welford) GetVariance() float64 {
	if welford.count == 0 {
		return math.NaN()
	}
	return welford.m2 / float64(welford.count)
}

// GetSampleVariance is the variance corrected by n-1. It is NaN below two
// observations.
func (welford *Welford) GetSampleVariance() float64 {
	if welford.count < 2 {
		return math.NaN()
	}
	return welford.m2 / float64(welford.count-1)
}

func (welford *Welford) GetSD() float64 {
	return math.Sqrt(welford.GetSampleVariance())
}

func (welford *Welford) GetCV() float64 {
	return welford.GetSD() / welford.GetMean()
}

// GetSEM is the standard error of the mean, sqrt(s^2/n).
func (welford *Welford) GetSEM() float64 {
	return math.Sqrt(welford.GetSampleVariance() / float64(welford.count))
}
