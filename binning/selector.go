package binning

import (
	"math"

	"github.com/uyouii/binning-algorithms/common"
	"github.com/uyouii/binning-algorithms/model"
	"github.com/uyouii/binning-algorithms/utils"
	"gonum.org/v1/gonum/floats"
)

// DynamicBinSelection builds numBins equal-width bins spanning exactly
// [min(data), max(data)] and validates them with ValidateBinRanges using opts.
// numBins == 0 selects DefaultNumBins, numBins above MaxNumBins is rejected.
//
// The returned slice holds numBins+1 edges. Validation errors are returned
// unchanged.
func DynamicBinSelection(data []float64, numBins int, opts ...Option) ([]float64, error) {
	if numBins == 0 {
		numBins = DefaultNumBins
	}
	if numBins < 0 || numBins > MaxNumBins {
		return nil, common.ErrorInvalidBinCount
	}
	if len(data) == 0 {
		return nil, common.ErrorEmptyData
	}
	if !utils.AllFinite(data) {
		return nil, common.ErrorInvalidValue
	}

	dataRange := model.DataRange{
		Min: floats.Min(data),
		Max: floats.Max(data),
	}

	edges := equalWidthEdges(dataRange, numBins)

	if err := ValidateBinRanges(edges, dataRange, opts...); err != nil {
		return nil, err
	}
	return edges, nil
}

// edges are accumulated one width at a time and never pass Max. The last one
// is pinned to Max so rounding drift can't leave the maximum uncovered.
func equalWidthEdges(dataRange model.DataRange, numBins int) []float64 {
	// finite even when Max - Min overflows
	width := dataRange.Max/float64(numBins) - dataRange.Min/float64(numBins)

	edges := make([]float64, 0, numBins+1)
	edges = append(edges, dataRange.Min)
	for i := 0; i < numBins; i++ {
		edges = append(edges, math.Min(edges[len(edges)-1]+width, dataRange.Max))
	}
	edges[numBins] = dataRange.Max
	return edges
}
