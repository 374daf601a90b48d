package report

import (
	"bytes"
	"fmt"

	"github.com/user/xyplot_go/internal/analysis"
	"github.com/user/xyplot_go/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// GonumRenderer draws charts with gonum/plot.
type GonumRenderer struct{}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// CreateLinePlot builds the two-series line plot for ds.
func CreateLinePlot(ds *parser.Dataset, spec ChartSpec) (*plot.Plot, error) {
	if ds == nil {
		return nil, fmt.Errorf("no dataset to plot")
	}
	if len(ds.Y1) != len(ds.X) || len(ds.Y2) != len(ds.X) {
		return nil, fmt.Errorf("column lengths differ: x=%d y1=%d y2=%d", len(ds.X), len(ds.Y1), len(ds.Y2))
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	columns := [2][]float64{ds.Y1, ds.Y2}
	for i, series := range spec.Series {
		style := draw.LineStyle{Color: series.Color, Width: vg.Points(1.5)}

		for _, seg := range splitFinite(ds.X, columns[i]) {
			line, err := plotter.NewLine(xys(seg.X, seg.Y))
			if err != nil {
				return nil, fmt.Errorf("failed to create line for %s: %v", series.Label, err)
			}
			line.LineStyle = style
			p.Add(line)
		}
		// The legend entry exists even when the series has nothing to draw.
		p.Legend.Add(series.Label, &plotter.Line{LineStyle: style})
	}

	p.X.Min, p.X.Max = axisRange(p.X.Min, p.X.Max)
	p.Y.Min, p.Y.Max = axisRange(p.Y.Min, p.Y.Max)

	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	return p, nil
}

// Render implements Renderer.
func (r *GonumRenderer) Render(ds *parser.Dataset, spec ChartSpec) (*Chart, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	p, err := CreateLinePlot(ds, spec)
	if err != nil {
		return nil, err
	}

	// At 72 DPI one point is one pixel.
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(spec.Width)), vg.Points(float64(spec.Height))),
		vgimg.UseDPI(72),
	)
	p.Draw(draw.New(c))

	buf := new(bytes.Buffer)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}

	return &Chart{
		Title:   spec.Title,
		Image:   c.Image(),
		PNG:     buf.Bytes(),
		Summary: analysis.Summarize(ds),
	}, nil
}
