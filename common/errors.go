package common

import "errors"

var (
	ErrorInvalidValue = errors.New("binning: invalid value")
	ErrorInternal     = errors.New("binning: internal error")

	// edge sequence errors
	ErrorEmptyEdges    = errors.New("binning: bin edges must not be empty")
	ErrorTooFewEdges   = errors.New("binning: at least two bin edges are required")
	ErrorUnsortedEdges = errors.New("binning: bin edges must be sorted in ascending order and non-overlapping")

	// data errors
	ErrorEmptyData       = errors.New("binning: data must not be empty")
	ErrorValueOutOfRange = errors.New("binning: value is outside the specified data range")
	ErrorInvalidBinCount = errors.New("binning: number of bins must be positive")

	// constraint errors
	ErrorWidthTooSmall   = errors.New("binning: bin width is smaller than the minimum acceptable width")
	ErrorWidthTooLarge   = errors.New("binning: bin width is larger than the maximum acceptable width")
	ErrorOverlapTooSmall = errors.New("binning: bin overlap is smaller than the minimum acceptable overlap")
	ErrorCoverageGapLow  = errors.New("binning: the first bin does not cover the minimum data value")
	ErrorCoverageGapHigh = errors.New("binning: the last bin does not cover the maximum data value")
)
