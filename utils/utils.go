package utils

import (
	"math"
	"sort"
)

// SortedCopy returns an ascending copy of values, the input is left untouched.
func SortedCopy(values []float64) []float64 {
	res := make([]float64, len(values))
	copy(res, values)
	sort.Float64s(res)
	return res
}

func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func AllFinite(values []float64) bool {
	for _, v := range values {
		if !IsFinite(v) {
			return false
		}
	}
	return true
}
