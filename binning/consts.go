package binning

const (
	// DefaultNumBins is used when the caller asks for 0 bins.
	DefaultNumBins = 10

	MaxNumBins = 1 << 20
)
