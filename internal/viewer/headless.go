package viewer

import (
	"context"
	"log/slog"

	"github.com/user/xyplot_go/internal/report"
)

// Headless logs the chart instead of opening a window.
type Headless struct {
	Logger *slog.Logger
}

func (v *Headless) Show(ctx context.Context, c *report.Chart) error {
	if err := checkChart(c); err != nil {
		return err
	}
	if v.Logger != nil {
		b := c.Image.Bounds()
		v.Logger.Info("chart rendered without viewer",
			"title", c.Title,
			"width", b.Dx(),
			"height", b.Dy(),
			"png_bytes", len(c.PNG),
			"summary", SummaryText(c.Summary))
	}
	return ctx.Err()
}
