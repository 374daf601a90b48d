package report

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/user/xyplot_go/internal/analysis"
	"github.com/user/xyplot_go/internal/parser"
)

// GoChartRenderer draws charts with go-chart. go-chart refuses series
// without points, so datasets with no finite points are handed to Fallback.
type GoChartRenderer struct {
	Fallback Renderer
	Logger   *slog.Logger
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Render implements Renderer.
func (r *GoChartRenderer) Render(ds *parser.Dataset, spec ChartSpec) (*Chart, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if ds == nil {
		return nil, fmt.Errorf("no dataset to plot")
	}
	if len(ds.Y1) != len(ds.X) || len(ds.Y2) != len(ds.X) {
		return nil, fmt.Errorf("column lengths differ: x=%d y1=%d y2=%d", len(ds.X), len(ds.Y1), len(ds.Y2))
	}
	columns := [2][]float64{ds.Y1, ds.Y2}
	var series []chart.Series
	legendSeries := make([]chart.Series, 0, len(spec.Series))
	xLo, xHi := math.Inf(1), math.Inf(-1)
	yLo, yHi := math.Inf(1), math.Inf(-1)
	for i, s := range spec.Series {
		style := chart.Style{
			StrokeColor: drawingColor(s.Color),
			StrokeWidth: 2,
		}
		for _, seg := range splitFinite(ds.X, columns[i]) {
			series = append(series, chart.ContinuousSeries{
				Name:    s.Label,
				XValues: seg.X,
				YValues: seg.Y,
				Style:   style,
			})
			for j := range seg.X {
				xLo, xHi = math.Min(xLo, seg.X[j]), math.Max(xHi, seg.X[j])
				yLo, yHi = math.Min(yLo, seg.Y[j]), math.Max(yHi, seg.Y[j])
			}
		}
		legendSeries = append(legendSeries, chart.ContinuousSeries{Name: s.Label, Style: style})
	}

	if len(series) == 0 {
		if r.Fallback == nil {
			return nil, fmt.Errorf("go-chart cannot draw a dataset without finite points")
		}
		if r.Logger != nil {
			r.Logger.Warn("go-chart cannot draw empty series, using fallback renderer", "rows", ds.Len())
		}
		return r.Fallback.Render(ds, spec)
	}

	xAxis := chart.XAxis{Name: spec.XLabel}
	if analysis.IsDegenerate(xLo, xHi) {
		lo, hi := axisRange(xLo, xHi)
		xAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	}
	yAxis := chart.YAxis{Name: spec.YLabel}
	if analysis.IsDegenerate(yLo, yHi) {
		lo, hi := axisRange(yLo, yHi)
		yAxis.Range = &chart.ContinuousRange{Min: lo, Max: hi}
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	// One legend entry per y column, however many gaps split it.
	legendChart := ch
	legendChart.Series = legendSeries
	ch.Elements = []chart.Renderable{chart.Legend(&legendChart)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	pngBytes := buf.Bytes()
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered chart: %w", err)
	}

	return &Chart{
		Title:   spec.Title,
		Image:   img,
		PNG:     pngBytes,
		Summary: analysis.Summarize(ds),
	}, nil
}
