package binning

import (
	"fmt"

	"github.com/uyouii/binning-algorithms/common"
	"github.com/uyouii/binning-algorithms/model"
)

// ValidateBinRanges checks that edges form valid bins for dataRange.
// It returns nil when every check passes, otherwise the first failure:
//
//  1. edges must be non-decreasing (ErrorUnsortedEdges)
//  2. for every bin i with width = edges[i+1] - edges[i]:
//     - width >= min bin width (ErrorWidthTooSmall)
//     - width <= max bin width (ErrorWidthTooLarge)
//     - for i > 0, overlap = width - (prevWidth - minOverlap) must be
//     >= minOverlap (ErrorOverlapTooSmall)
//  3. edges[0] <= dataRange.Min (ErrorCoverageGapLow)
//  4. edges[last] >= dataRange.Max (ErrorCoverageGapHigh)
//
// Empty edges fail with ErrorEmptyEdges.
func ValidateBinRanges(edges []float64, dataRange model.DataRange, opts ...Option) error {
	if len(edges) == 0 {
		return common.ErrorEmptyEdges
	}

	if !nonDecreasing(edges) {
		return common.ErrorUnsortedEdges
	}

	c := gatherConstraints(opts)

	for i := 0; i < len(edges)-1; i++ {
		width := edges[i+1] - edges[i]

		if c.hasMinBinWidth && width < c.minBinWidth {
			return fmt.Errorf("%w: bin width %v, minimum acceptable width %v",
				common.ErrorWidthTooSmall, width, c.minBinWidth)
		}

		if c.hasMaxBinWidth && width > c.maxBinWidth {
			return fmt.Errorf("%w: bin width %v, maximum acceptable width %v",
				common.ErrorWidthTooLarge, width, c.maxBinWidth)
		}

		if c.hasMinOverlap && i > 0 {
			prevWidth := edges[i] - edges[i-1]
			overlap := width - (prevWidth - c.minOverlap)
			if overlap < c.minOverlap {
				return fmt.Errorf("%w: between bins %d and %d, overlap %v, minimum acceptable overlap %v",
					common.ErrorOverlapTooSmall, i-1, i, overlap, c.minOverlap)
			}
		}
	}

	if edges[0] > dataRange.Min {
		return fmt.Errorf("%w: first edge %v, minimum %v", common.ErrorCoverageGapLow, edges[0], dataRange.Min)
	}

	last := edges[len(edges)-1]
	if last < dataRange.Max {
		return fmt.Errorf("%w: last edge %v, maximum %v", common.ErrorCoverageGapHigh, last, dataRange.Max)
	}

	return nil
}
