package stats

import (
	"descstats/utils"
	"testing"
)

func TestMiddle(t *testing.T) {
	utils.AssertEqual(t, Middle(3, 4), 3)
	utils.AssertEqual(t, Middle(-3, -4), -3)
	utils.AssertEqual(t, Middle(1.0, 2.0), 1.5)
	utils.AssertEqual(t, Middle(uint8(10), uint8(20)), uint8(15))
}

func TestRange(t *testing.T) {
	utils.AssertEqual(t, Range([]int{3, 1, 4, 1, 5}), 4)
	utils.AssertEqual(t, Range([]float64{-2.5, 2.5}), 5.0)
	utils.AssertEqual(t, Range([]int{}), 0)
}

func TestMidRange(t *testing.T) {
	utils.AssertEqual(t, MidRange([]int{3, 1, 4, 1, 5}), 3.0)
	utils.AssertEqual(t, MidRange([]float64{-1, 0, 2}), 0.5)
	utils.AssertNaN(t, MidRange([]float64{}))
}
