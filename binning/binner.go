package binning

import (
	"fmt"

	"github.com/uyouii/binning-algorithms/common"
)

// BinData returns, for every value in data, the index i of the bin
// [edges[i], edges[i+1]) containing it. The order of data is preserved.
//
// edges must be strictly ascending, otherwise ErrorUnsortedEdges is returned
// before any value is looked at. The first value matching no bin stops the
// call with ErrorValueOutOfRange and no partial result.
func BinData(data []float64, edges []float64) ([]int, error) {
	if !strictlyAscending(edges) {
		return nil, common.ErrorUnsortedEdges
	}

	bins := make([]int, 0, len(data))
	for _, value := range data {
		idx, ok := findBin(value, edges)
		if !ok {
			return nil, fmt.Errorf("%w: value %v", common.ErrorValueOutOfRange, value)
		}
		bins = append(bins, idx)
	}
	return bins, nil
}

// linear scan, first match wins
func findBin(value float64, edges []float64) (int, bool) {
	for i := 0; i < len(edges)-1; i++ {
		if edges[i] <= value && value < edges[i+1] {
			return i, true
		}
	}
	return -1, false
}

// NaN edges are never ascending since every comparison with NaN is false.
func strictlyAscending(edges []float64) bool {
	for i := 0; i < len(edges)-1; i++ {
		if !(edges[i] < edges[i+1]) {
			return false
		}
	}
	return true
}

func nonDecreasing(edges []float64) bool {
	for i := 0; i < len(edges)-1; i++ {
		if !(edges[i] <= edges[i+1]) {
			return false
		}
	}
	return true
}
