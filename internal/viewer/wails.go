package viewer

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/user/xyplot_go/internal/report"
)

//go:embed all:frontend/public
var assets embed.FS

// ChartApp is bound to the webview frontend and serves one chart.
type ChartApp struct {
	chart  *report.Chart
	logger *slog.Logger

	mu            sync.Mutex
	ctx           context.Context
	quitRequested bool
}

// NewChartApp creates the binding for c.
func NewChartApp(c *report.Chart, logger *slog.Logger) *ChartApp {
	return &ChartApp{chart: c, logger: logger}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *ChartApp) Startup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	quit := a.quitRequested
	a.mu.Unlock()

	runtime.WindowSetTitle(ctx, a.chart.Title)
	if quit {
		runtime.Quit(ctx)
	}
}

// ChartTitle returns the chart title.
func (a *ChartApp) ChartTitle() string {
	return a.chart.Title
}

// ChartImage returns the chart as a PNG data URL.
func (a *ChartApp) ChartImage() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(a.chart.PNG)
}

// ChartSummary returns the dataset summary line.
func (a *ChartApp) ChartSummary() string {
	return SummaryText(a.chart.Summary)
}

// requestQuit closes the window now, or as soon as the runtime has started.
func (a *ChartApp) requestQuit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.quitRequested = true
	if a.ctx != nil {
		runtime.Quit(a.ctx)
	}
}

// Wails shows the chart in a webview window. The binary must be built with
// -tags desktop,production; otherwise wails.Run returns an error.
type Wails struct {
	Logger *slog.Logger
}

func (v *Wails) Show(ctx context.Context, c *report.Chart) error {
	if err := checkChart(c); err != nil {
		return err
	}
	if len(c.PNG) == 0 {
		return fmt.Errorf("chart has no PNG data")
	}

	public, err := fs.Sub(assets, "frontend/public")
	if err != nil {
		return fmt.Errorf("failed to load frontend assets: %w", err)
	}

	chartApp := NewChartApp(c, v.Logger)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			chartApp.requestQuit()
		case <-done:
		}
	}()

	b := c.Image.Bounds()
	err = wails.Run(&options.App{
		Title:  c.Title,
		Width:  b.Dx() + 32,
		Height: b.Dy() + 96,
		AssetServer: &assetserver.Options{
			Assets: public,
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 255},
		OnStartup:        chartApp.Startup,
		Bind: []interface{}{
			chartApp,
		},
	})
	if err != nil {
		return fmt.Errorf("error running wails app: %w", err)
	}
	return nil
}
