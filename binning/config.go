package binning

import (
	"fmt"
	"os"

	"github.com/uyouii/binning-algorithms/common"
	"gopkg.in/yaml.v3"
)

// Config is the yaml form of a dynamic bin selection.
// Optional constraints are pointers: a missing key leaves the constraint off,
// an explicit 0 turns it on.
type Config struct {
	NumBins     int      `yaml:"num_bins"`
	MinBinWidth *float64 `yaml:"min_bin_width"`
	MaxBinWidth *float64 `yaml:"max_bin_width"`
	MinOverlap  *float64 `yaml:"min_overlap"`
}

func DefaultConfig() *Config {
	return &Config{NumBins: DefaultNumBins}
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	return ParseConfig(b)
}

func ParseConfig(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if c.NumBins < 0 || c.NumBins > MaxNumBins {
		return nil, fmt.Errorf("%w: num_bins %d", common.ErrorInvalidBinCount, c.NumBins)
	}
	if c.NumBins == 0 {
		c.NumBins = DefaultNumBins
	}
	return &c, nil
}

// Options converts the configured constraints for ValidateBinRanges and
// DynamicBinSelection.
func (c *Config) Options() []Option {
	if c == nil {
		return nil
	}
	opts := []Option{}
	if c.MinBinWidth != nil {
		opts = append(opts, WithMinBinWidth(*c.MinBinWidth))
	}
	if c.MaxBinWidth != nil {
		opts = append(opts, WithMaxBinWidth(*c.MaxBinWidth))
	}
	if c.MinOverlap != nil {
		opts = append(opts, WithMinOverlap(*c.MinOverlap))
	}
	return opts
}
