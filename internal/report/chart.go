package report

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/user/xyplot_go/internal/analysis"
	"github.com/user/xyplot_go/internal/parser"
)

// Renderer names accepted by NewRenderer.
const (
	RendererGonum   = "gonum"
	RendererGoChart = "gochart"
)

// SeriesSpec describes how one y column is drawn.
type SeriesSpec struct {
	Label string
	Color color.RGBA
}

// ChartSpec is everything a renderer needs besides the data.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Series [2]SeriesSpec // y1, y2
	Width  int           // pixels
	Height int           // pixels
}

// DefaultChartSpec returns the y1/y2-against-x chart at the given size.
func DefaultChartSpec(width, height int) ChartSpec {
	return ChartSpec{
		Title:  "Plot of y1 and y2 against x",
		XLabel: "x",
		YLabel: "y",
		Series: [2]SeriesSpec{
			{Label: "y1", Color: color.RGBA{B: 255, A: 255}}, // Blue
			{Label: "y2", Color: color.RGBA{R: 255, A: 255}}, // Red
		},
		Width:  width,
		Height: height,
	}
}

func (s ChartSpec) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", s.Width, s.Height)
	}
	return nil
}

// Chart is a rendered chart ready to be shown.
type Chart struct {
	Title   string
	Image   image.Image
	PNG     []byte
	Summary *analysis.DatasetSummary
}

// Renderer draws a dataset according to a ChartSpec.
type Renderer interface {
	Render(ds *parser.Dataset, spec ChartSpec) (*Chart, error)
}

// NewRenderer returns the renderer registered under name.
func NewRenderer(name string, logger *slog.Logger) (Renderer, error) {
	switch name {
	case RendererGonum:
		return &GonumRenderer{}, nil
	case RendererGoChart:
		return &GoChartRenderer{Fallback: &GonumRenderer{}, Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown renderer: %s", name)
	}
}

type segment struct {
	X []float64
	Y []float64
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// splitFinite breaks one series into runs of points whose x and y are both
// finite. Rows with a NaN or ±Inf coordinate become gaps in the line.
func splitFinite(xs, ys []float64) []segment {
	var segs []segment
	var cur segment
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			if len(cur.X) > 0 {
				segs = append(segs, cur)
				cur = segment{}
			}
			continue
		}
		cur.X = append(cur.X, xs[i])
		cur.Y = append(cur.Y, ys[i])
	}
	if len(cur.X) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

// axisRange returns [lo, hi] usable as an axis range. Infinite bounds mean
// nothing was drawn on that axis.
func axisRange(lo, hi float64) (float64, float64) {
	if !analysis.IsDegenerate(lo, hi) {
		return lo, hi
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = math.NaN(), math.NaN()
	}
	return analysis.PaddedRange(lo, hi)
}
