package analysis

import "math"

// SeriesStats holds summary statistics for one column of a dataset.
type SeriesStats struct {
	Name   string
	Count  int
	Finite int // values that are neither NaN nor ±Inf
	Min    float64
	Max    float64
	Mean   float64
}

// Span returns Max-Min, or NaN when the series has no finite values.
func (s SeriesStats) Span() float64 {
	if s.Finite == 0 {
		return math.NaN()
	}
	return s.Max - s.Min
}

// DatasetSummary holds the statistics of all three columns.
type DatasetSummary struct {
	Rows int
	X    SeriesStats
	Y1   SeriesStats
	Y2   SeriesStats
}

// minOf returns the smaller of a and b, ignoring a NaN operand.
func minOf(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func maxOf(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

// YMin returns the smallest finite value over both y series, or NaN if there is none.
func (s *DatasetSummary) YMin() float64 {
	return minOf(s.Y1.Min, s.Y2.Min)
}

// YMax returns the largest finite value over both y series, or NaN if there is none.
func (s *DatasetSummary) YMax() float64 {
	return maxOf(s.Y1.Max, s.Y2.Max)
}
