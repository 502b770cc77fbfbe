package model

import "fmt"

// DataRange is the span [Min, Max] the bin edges have to cover.
type DataRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r DataRange) Span() float64 {
	return r.Max - r.Min
}

func (r DataRange) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}

// HistogramBin is the half-open interval [Lower, Upper) and the number of samples in it.
type HistogramBin struct {
	Index int     `json:"i"`
	Lower float64 `json:"l"`
	Upper float64 `json:"u"`
	Count float64 `json:"c"`
}

func (b *HistogramBin) Width() float64 {
	return b.Upper - b.Lower
}

func (b *HistogramBin) Contains(value float64) bool {
	return b.Lower <= value && value < b.Upper
}

type BinnedResult struct {
	Edges []float64       `json:"edges,omitempty"`
	Bins  []*HistogramBin `json:"bins,omitempty"`
}

func (r *BinnedResult) DebugString() string {
	if r == nil {
		return "nil"
	}
	return fmt.Sprintf("edgeCount: %v, binCount: %v, total: %v", len(r.Edges), len(r.Bins), r.Total())
}

func (r *BinnedResult) Total() float64 {
	if r == nil {
		return 0
	}
	var total float64
	for _, bin := range r.Bins {
		total += bin.Count
	}
	return total
}
