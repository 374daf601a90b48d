package viewer

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/user/xyplot_go/internal/report"
)

const fyneAppID = "com.user.xyplot"

// Fyne shows the chart in a native window.
type Fyne struct {
	Logger *slog.Logger

	// NewApp creates the fyne application; nil means app.NewWithID.
	NewApp func() fyne.App
}

func (v *Fyne) newApp() fyne.App {
	if v.NewApp != nil {
		return v.NewApp()
	}
	return app.NewWithID(fyneAppID)
}

// buildWindow lays out the chart image above the summary line.
func buildWindow(a fyne.App, c *report.Chart) fyne.Window {
	w := a.NewWindow(c.Title)

	img := canvas.NewImageFromImage(c.Image)
	img.FillMode = canvas.ImageFillContain
	b := c.Image.Bounds()
	img.SetMinSize(fyne.NewSize(float32(b.Dx())/2, float32(b.Dy())/2))

	status := widget.NewLabel(SummaryText(c.Summary))
	w.SetContent(container.NewBorder(nil, status, nil, nil, img))
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())+status.MinSize().Height))

	closeWindow := func(fyne.Shortcut) { w.Close() }
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, closeWindow)
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, closeWindow)
	w.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierControl}, closeWindow)
	return w
}

func (v *Fyne) Show(ctx context.Context, c *report.Chart) error {
	if err := checkChart(c); err != nil {
		return err
	}

	a := v.newApp()
	w := buildWindow(a, c)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			if v.Logger != nil {
				v.Logger.Info("closing viewer", "reason", ctx.Err())
			}
			fyne.Do(func() { w.Close() })
		case <-done:
		}
	}()

	if v.Logger != nil {
		v.Logger.Debug("opening fyne window", "title", c.Title)
	}
	w.ShowAndRun()
	return nil
}
