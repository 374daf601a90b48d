package viewer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/user/xyplot_go/internal/analysis"
	"github.com/user/xyplot_go/internal/report"
)

// Viewer names accepted by New.
const (
	ViewerFyne  = "fyne"
	ViewerWails = "wails"
	ViewerNone  = "none"
)

// Viewer presents a rendered chart. Show blocks until the user closes the
// window or ctx is cancelled.
type Viewer interface {
	Show(ctx context.Context, c *report.Chart) error
}

// New returns the viewer registered under name.
func New(name string, logger *slog.Logger) (Viewer, error) {
	switch name {
	case ViewerFyne:
		return &Fyne{Logger: logger}, nil
	case ViewerWails:
		return &Wails{Logger: logger}, nil
	case ViewerNone:
		return &Headless{Logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown viewer: %s", name)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// SummaryText is the one-line dataset description shown under the chart.
func SummaryText(s *analysis.DatasetSummary) string {
	if s == nil || s.Rows == 0 {
		return "no rows"
	}
	parts := []string{fmt.Sprintf("%d rows", s.Rows)}
	for _, st := range []analysis.SeriesStats{s.X, s.Y1, s.Y2} {
		parts = append(parts, fmt.Sprintf("%s [%s, %s]", st.Name, formatFloat(st.Min), formatFloat(st.Max)))
	}
	return strings.Join(parts, "  |  ")
}

func checkChart(c *report.Chart) error {
	if c == nil || c.Image == nil {
		return fmt.Errorf("no chart to show")
	}
	return nil
}
