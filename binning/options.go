package binning

// Option sets one optional constraint of ValidateBinRanges.
// A constraint that is not passed is not checked. A constraint passed with
// value 0 is checked like any other value.
type Option func(*constraints)

type constraints struct {
	minBinWidth    float64
	hasMinBinWidth bool

	maxBinWidth    float64
	hasMaxBinWidth bool

	minOverlap    float64
	hasMinOverlap bool
}

// WithMinBinWidth rejects bins narrower than width.
func WithMinBinWidth(width float64) Option {
	return func(c *constraints) {
		c.minBinWidth = width
		c.hasMinBinWidth = true
	}
}

// WithMaxBinWidth rejects bins wider than width.
func WithMaxBinWidth(width float64) Option {
	return func(c *constraints) {
		c.maxBinWidth = width
		c.hasMaxBinWidth = true
	}
}

// WithMinOverlap enables the overlap check between consecutive bins, see
// ValidateBinRanges for the formula.
func WithMinOverlap(overlap float64) Option {
	return func(c *constraints) {
		c.minOverlap = overlap
		c.hasMinOverlap = true
	}
}

func gatherConstraints(opts []Option) constraints {
	c := constraints{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
