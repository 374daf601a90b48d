package analysis

import (
	"math"
	"testing"

	"github.com/user/xyplot_go/internal/parser"
)

func TestSummarize(t *testing.T) {
	ds := parser.NewDataset()
	ds.Append(parser.Row{X: 0, Y1: 1, Y2: 2})
	ds.Append(parser.Row{X: 1, Y1: 2, Y2: 3})
	ds.Append(parser.Row{X: 2, Y1: 3, Y2: 4})

	s := Summarize(ds)
	if s.Rows != 3 {
		t.Fatalf("Rows = %d, want 3", s.Rows)
	}

	tests := []struct {
		name  string
		stats SeriesStats
		min   float64
		max   float64
		mean  float64
	}{
		{"x", s.X, 0, 2, 1},
		{"y1", s.Y1, 1, 3, 2},
		{"y2", s.Y2, 2, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.stats.Name != tt.name {
				t.Errorf("Name = %q, want %q", tt.stats.Name, tt.name)
			}
			if tt.stats.Count != 3 {
				t.Errorf("Count = %d, want 3", tt.stats.Count)
			}
			if tt.stats.Min != tt.min || tt.stats.Max != tt.max || tt.stats.Mean != tt.mean {
				t.Errorf("stats = %+v, want min=%v max=%v mean=%v", tt.stats, tt.min, tt.max, tt.mean)
			}
		})
	}

	if s.YMin() != 1 || s.YMax() != 4 {
		t.Errorf("YMin/YMax = %v/%v, want 1/4", s.YMin(), s.YMax())
	}
	if s.X.Span() != 2 {
		t.Errorf("X.Span() = %v, want 2", s.X.Span())
	}
}

func TestSummarizeEmpty(t *testing.T) {
	for _, ds := range []*parser.Dataset{nil, parser.NewDataset()} {
		s := Summarize(ds)
		if s.Rows != 0 {
			t.Errorf("Rows = %d, want 0", s.Rows)
		}
		if !math.IsNaN(s.X.Min) || !math.IsNaN(s.Y1.Mean) || !math.IsNaN(s.Y2.Span()) {
			t.Errorf("empty stats should be NaN, got %+v", s)
		}
		if !math.IsNaN(s.YMin()) || !math.IsNaN(s.YMax()) {
			t.Errorf("YMin/YMax = %v/%v, want NaN", s.YMin(), s.YMax())
		}
	}
}

func TestPaddedRange(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{"empty", math.NaN(), math.NaN(), 0, 1},
		{"single value", 5, 5, 4, 6},
		{"normal", -2, 3, -2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := PaddedRange(tt.lo, tt.hi)
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("PaddedRange(%v, %v) = (%v, %v), want (%v, %v)", tt.lo, tt.hi, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestSummarizeSkipsNonFinite(t *testing.T) {
	ds := parser.NewDataset()
	ds.Append(parser.Row{X: 0, Y1: math.NaN(), Y2: 2})
	ds.Append(parser.Row{X: math.Inf(1), Y1: 5, Y2: math.Inf(-1)})
	ds.Append(parser.Row{X: 2, Y1: 3, Y2: 4})

	s := Summarize(ds)
	if s.X.Count != 3 || s.X.Finite != 2 {
		t.Errorf("X Count/Finite = %d/%d, want 3/2", s.X.Count, s.X.Finite)
	}
	if s.X.Min != 0 || s.X.Max != 2 || s.X.Mean != 1 {
		t.Errorf("X stats = %+v, want min=0 max=2 mean=1", s.X)
	}
	if s.Y1.Min != 3 || s.Y1.Max != 5 || s.Y1.Mean != 4 {
		t.Errorf("Y1 stats = %+v, want min=3 max=5 mean=4", s.Y1)
	}
	if s.YMin() != 2 || s.YMax() != 5 {
		t.Errorf("YMin/YMax = %v/%v, want 2/5", s.YMin(), s.YMax())
	}
}

func TestSummarizeAllNonFinite(t *testing.T) {
	ds := parser.NewDataset()
	ds.Append(parser.Row{X: math.NaN(), Y1: math.Inf(1), Y2: math.NaN()})

	s := Summarize(ds)
	if s.Rows != 1 || s.X.Finite != 0 {
		t.Errorf("Rows/X.Finite = %d/%d, want 1/0", s.Rows, s.X.Finite)
	}
	if !math.IsNaN(s.X.Span()) || !math.IsNaN(s.YMin()) {
		t.Errorf("X.Span/YMin = %v/%v, want NaN", s.X.Span(), s.YMin())
	}
	if !IsDegenerate(s.X.Min, s.X.Max) {
		t.Error("range without finite values is not degenerate")
	}
}

func TestIsDegenerate(t *testing.T) {
	tests := []struct {
		lo, hi float64
		want   bool
	}{
		{0, 1, false},
		{1, 1, true},
		{2, 1, true},
		{math.NaN(), 1, true},
	}
	for _, tt := range tests {
		if got := IsDegenerate(tt.lo, tt.hi); got != tt.want {
			t.Errorf("IsDegenerate(%v, %v) = %v, want %v", tt.lo, tt.hi, got, tt.want)
		}
	}
}
