package binning_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/binning-algorithms/binning"
	"github.com/uyouii/binning-algorithms/common"
)

// TestBinData_Valid checks every value lands in the half-open bin containing it.
func TestBinData_Valid(t *testing.T) {
	data := []float64{1, 5, 3, 7, 2, 4, 6}
	edges := []float64{0, 3, 6, 10}

	bins, err := binning.BinData(data, edges)
	require.NoError(t, err)
	// 3 sits on an inner edge and belongs to the bin it opens
	assert.Equal(t, []int{0, 1, 1, 2, 0, 1, 2}, bins)
}

// TestBinData_UnsortedEdges covers descending and repeated edges.
func TestBinData_UnsortedEdges(t *testing.T) {
	cases := map[string][]float64{
		"descending": {1, 0, 3},
		"repeated":   {0, 3, 3, 6},
		"nan":        {0, math.NaN(), 6},
	}
	for name, edges := range cases {
		t.Run(name, func(t *testing.T) {
			bins, err := binning.BinData([]float64{1, 5}, edges)
			assert.ErrorIs(t, err, common.ErrorUnsortedEdges)
			assert.EqualError(t, err, "binning: bin edges must be sorted in ascending order and non-overlapping")
			assert.Nil(t, bins)
		})
	}
}

// TestBinData_UnsortedBeforeValues ensures edges are rejected before any value is looked at.
func TestBinData_UnsortedBeforeValues(t *testing.T) {
	_, err := binning.BinData([]float64{100}, []float64{1, 0})
	assert.ErrorIs(t, err, common.ErrorUnsortedEdges)
	assert.NotErrorIs(t, err, common.ErrorValueOutOfRange)
}

// TestBinData_ValueOutOfRange reports the first offending value and no partial result.
func TestBinData_ValueOutOfRange(t *testing.T) {
	bins, err := binning.BinData([]float64{1, 5, 10, -1}, []float64{0, 3, 6})
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)
	assert.EqualError(t, err, "binning: value is outside the specified data range: value 10")
	assert.Nil(t, bins)
}

// TestBinData_TopEdgeExclusive pins the boundary convention at both ends.
func TestBinData_TopEdgeExclusive(t *testing.T) {
	edges := []float64{0, 3, 6}

	bins, err := binning.BinData([]float64{0}, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, bins)

	_, err = binning.BinData([]float64{6}, edges)
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)

	_, err = binning.BinData([]float64{math.Nextafter(0, -1)}, edges)
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)

	bins, err = binning.BinData([]float64{math.Nextafter(6, 0)}, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, bins)
}

func TestBinData_EmptyData(t *testing.T) {
	bins, err := binning.BinData(nil, []float64{0, 1})
	require.NoError(t, err)
	assert.NotNil(t, bins)
	assert.Empty(t, bins)
}

// TestBinData_TooFewEdges: without two edges there is no bin to match.
func TestBinData_TooFewEdges(t *testing.T) {
	_, err := binning.BinData([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)

	_, err = binning.BinData([]float64{1}, nil)
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)

	bins, err := binning.BinData(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, bins)
}

func TestBinData_NaNValue(t *testing.T) {
	_, err := binning.BinData([]float64{math.NaN()}, []float64{0, 1})
	assert.ErrorIs(t, err, common.ErrorValueOutOfRange)
}

func TestBinData_InputUntouched(t *testing.T) {
	data := []float64{4, 1, 3}
	edges := []float64{0, 2, 5}

	_, err := binning.BinData(data, edges)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 3}, data)
	assert.Equal(t, []float64{0, 2, 5}, edges)
}

// TestBinData_RandomInRange checks length, index bounds and containment on
// random strictly ascending edges.
func TestBinData_RandomInRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		edges := randomEdges(rnd, 2+rnd.Intn(20))
		lo, hi := edges[0], edges[len(edges)-1]

		data := make([]float64, rnd.Intn(100))
		for i := range data {
			data[i] = math.Min(lo+rnd.Float64()*(hi-lo), math.Nextafter(hi, lo))
		}

		bins, err := binning.BinData(data, edges)
		require.NoError(t, err)
		require.Len(t, bins, len(data))
		for i, idx := range bins {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(edges)-1)
			assert.LessOrEqual(t, edges[idx], data[i])
			assert.Less(t, data[i], edges[idx+1])
		}
	}
}

func randomEdges(rnd *rand.Rand, n int) []float64 {
	seen := map[float64]bool{}
	edges := make([]float64, 0, n)
	for len(edges) < n {
		v := math.Round(rnd.Float64()*2000-1000) / 10
		if seen[v] {
			continue
		}
		seen[v] = true
		edges = append(edges, v)
	}
	sort.Float64s(edges)
	return edges
}
