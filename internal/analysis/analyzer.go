package analysis

import (
	"math"

	"github.com/user/xyplot_go/internal/parser"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// calculateMean returns the mean of the finite values in data, NaN if there are none.
func calculateMean(data []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range data {
		if isFinite(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// calculateBounds returns min and max of the finite values in data, NaN for both when there are none.
func calculateBounds(data []float64) (float64, float64) {
	minVal, maxVal := math.NaN(), math.NaN()
	for _, v := range data {
		if !isFinite(v) {
			continue
		}
		if math.IsNaN(minVal) || v < minVal {
			minVal = v
		}
		if math.IsNaN(maxVal) || v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func countFinite(data []float64) int {
	n := 0
	for _, v := range data {
		if isFinite(v) {
			n++
		}
	}
	return n
}

func summarizeSeries(name string, data []float64) SeriesStats {
	minVal, maxVal := calculateBounds(data)
	return SeriesStats{
		Name:   name,
		Count:  len(data),
		Finite: countFinite(data),
		Min:    minVal,
		Max:    maxVal,
		Mean:   calculateMean(data),
	}
}

// Summarize computes per-column statistics for ds. A nil dataset is treated as empty.
// NaN and ±Inf values are counted but excluded from Min, Max and Mean.
func Summarize(ds *parser.Dataset) *DatasetSummary {
	if ds == nil {
		ds = parser.NewDataset()
	}
	return &DatasetSummary{
		Rows: ds.Len(),
		X:    summarizeSeries("x", ds.X),
		Y1:   summarizeSeries("y1", ds.Y1),
		Y2:   summarizeSeries("y2", ds.Y2),
	}
}

// PaddedRange returns an axis range that contains [lo, hi] and is never
// degenerate: missing bounds give [0, 1], a single value v gives [v-1, v+1].
func PaddedRange(lo, hi float64) (float64, float64) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo, hi
}

// IsDegenerate reports whether [lo, hi] cannot be used as an axis range as is.
func IsDegenerate(lo, hi float64) bool {
	return !(hi > lo)
}
