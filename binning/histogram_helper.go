package binning

import (
	"context"
	"math"

	"github.com/uyouii/binning-algorithms/common"
	"github.com/uyouii/binning-algorithms/model"
	"github.com/uyouii/binning-algorithms/utils"
	"go.uber.org/zap"
)

// CalculateHistogram selects equal-width bins for data according to cfg and
// counts the samples per bin. A nil cfg uses DefaultConfig.
//
// The selected top edge equals max(data), which the half-open bins exclude,
// so the top edge used for counting is moved up by one ulp and the maximum
// sample lands in the last bin. Repeated selected edges, as produced for data
// spread over a few ulps, are merged, so Bins can be shorter than NumBins.
// The returned Edges are the selected ones, the returned Bins carry the edges
// used for counting.
func CalculateHistogram(ctx context.Context, data []float64, cfg *Config) (res *model.BinnedResult, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateHistogram recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("dataCnt", len(data)))
			res, err = nil, common.ErrorInternal
		}
	}()

	if cfg == nil {
		cfg = DefaultConfig()
	}

	edges, err := DynamicBinSelection(data, cfg.NumBins, cfg.Options()...)
	if err != nil {
		logger.Error("DynamicBinSelection failed", zap.Error(err),
			zap.Int("dataCnt", len(data)), zap.Int("numBins", cfg.NumBins))
		return nil, err
	}

	countEdges := countingEdges(edges)
	if len(countEdges) < len(edges) {
		logger.Info("repeated edges collapsed for counting",
			zap.Int("selected", len(edges)-1), zap.Int("counted", len(countEdges)-1),
			zap.Int("dataCnt", len(data)))
	}

	bins, err := Histogram(data, countEdges)
	if err != nil {
		logger.Error("Histogram failed", zap.Error(err), zap.Any("edges", countEdges))
		return nil, err
	}

	return &model.BinnedResult{
		Edges: edges,
		Bins:  bins,
	}, nil
}

// countingEdges drops repeated edges and moves the top one up by one ulp.
// Constant data ends up as the single bin [v, nextafter(v)).
func countingEdges(edges []float64) []float64 {
	res := make([]float64, 0, len(edges)+1)
	for _, edge := range edges {
		if len(res) == 0 || edge != res[len(res)-1] {
			res = append(res, edge)
		}
	}

	top := math.Nextafter(res[len(res)-1], math.Inf(1))
	if len(res) == 1 {
		return append(res, top)
	}
	res[len(res)-1] = top
	return res
}
