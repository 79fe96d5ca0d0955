package stats

import "golang.org/x/exp/constraints"

// The *InRange variants count into a slice indexed by x-lo, O(hi-lo+n).
// Mode and Modes count into a map, O(n).

// slot is v-lo computed in int64, so narrow types spanning more than half
// their domain do not wrap.
func slot[T constraints.Integer](v, lo T) int {
	return int(int64(v) - int64(lo))
}

func rangeCounts[T constraints.Integer](lo, hi T) []int {
	if hi < lo {
		return nil
	}
	return make([]int, slot(hi, lo)+1)
}

// ModeInRange returns the most frequent value of x among those in [lo, hi].
// Values outside the range are ignored. On ties the value that first reached
// the maximum count wins. If no value falls in the range, lo is returned.
func ModeInRange[T constraints.Integer](x []T, lo, hi T) (T, error) {
	if len(x) == 0 {
		return lo, ErrEmptyInput
	}
	cnts := rangeCounts(lo, hi)
	mc := 0  // maximum count
	mv := lo // a value with the maximum count
	for _, v := range x {
		if lo <= v && v <= hi {
			i := slot(v, lo)
			cnts[i]++
			if c := cnts[i]; c > mc {
				mc = c
				mv = v
			}
		}
	}
	return mv, nil
}

// ModesInRange returns every value in [lo, hi] sharing the maximum count, in
// ascending order. If nothing falls in the range every value of the range has
// the (zero) maximum count and the whole range is returned.
func ModesInRange[T constraints.Integer](x []T, lo, hi T) ([]T, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	cnts := rangeCounts(lo, hi)
	for _, v := range x {
		if lo <= v && v <= hi {
			cnts[slot(v, lo)]++
		}
	}

	mc := 0
	for _, c := range cnts {
		if c > mc {
			mc = c
		}
	}

	ms := make([]T, 0)
	for i, c := range cnts {
		if c == mc {
			ms = append(ms, lo+T(i))
		}
	}
	return ms, nil
}

// Mode returns the most frequent element of x. On ties the element that
// first reached the maximum count wins. NaN never equals itself, so each NaN
// is counted on its own.
func Mode[T comparable](x []T) (T, error) {
	if len(x) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	cnts := make(map[T]int)
	mc := 1
	mv := x[0]
	cnts[mv] = 1
	for _, v := range x[1:] {
		if c, ok := cnts[v]; ok {
			c++
			cnts[v] = c
			if c > mc {
				mc = c
				mv = v
			}
		} else {
			cnts[v] = 1
		}
	}
	return mv, nil
}

// Modes returns all elements of x sharing the maximum count. The order of the
// result is unspecified; sort it if a stable order is needed.
func Modes[T comparable](x []T) ([]T, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	cnts := make(map[T]int)
	mc := 0
	for _, v := range x {
		c := cnts[v] + 1
		cnts[v] = c
		if c > mc {
			mc = c
		}
	}

	ms := make([]T, 0)
	for v, c := range cnts {
		if c == mc {
			ms = append(ms, v)
		}
	}
	return ms, nil
}
