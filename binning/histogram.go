package binning

import (
	"github.com/uyouii/binning-algorithms/common"
	"github.com/uyouii/binning-algorithms/model"
	"github.com/uyouii/binning-algorithms/utils"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts the values of data falling in each bin [edges[i], edges[i+1]).
// It accepts exactly the inputs BinData accepts and fails with the same errors,
// plus ErrorTooFewEdges when edges define no bin.
func Histogram(data []float64, edges []float64) ([]*model.HistogramBin, error) {
	if len(edges) < 2 {
		return nil, common.ErrorTooFewEdges
	}

	// stat.Histogram panics on unsorted dividers or out of range samples,
	// BinData rejects both first.
	if _, err := BinData(data, edges); err != nil {
		return nil, err
	}

	counts := stat.Histogram(nil, edges, utils.SortedCopy(data), nil)

	res := make([]*model.HistogramBin, 0, len(counts))
	for i, count := range counts {
		res = append(res, &model.HistogramBin{
			Index: i,
			Lower: edges[i],
			Upper: edges[i+1],
			Count: count,
		})
	}
	return res, nil
}
