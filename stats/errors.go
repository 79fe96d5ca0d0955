package stats

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput        = errors.New("stats: input cannot be empty")
	ErrDimensionMismatch = errors.New("stats: dimension mismatch")
)

// DimensionMismatchError reports a weight vector whose length differs from
// the sample it is paired with.
type DimensionMismatchError struct {
	Data    int
	Weights int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("stats: dimension mismatch: %d data points, %d weights",
		e.Data, e.Weights)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

func checkWeights(n int, w []float64) error {
	if len(w) != n {
		return &DimensionMismatchError{Data: n, Weights: len(w)}
	}
	return nil
}
