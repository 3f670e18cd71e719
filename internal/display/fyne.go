package display

import (
	"context"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/kelp-detect/internal/pipeline"
)

// FyneViewer shows each panel in its own fyne window.
type FyneViewer struct {
	app fyne.App
	log logrus.FieldLogger
}

// NewFyne creates a viewer on app. Show runs the app's event loop, so it must
// be called from the main goroutine.
func NewFyne(app fyne.App, log logrus.FieldLogger) *FyneViewer {
	return &FyneViewer{app: app, log: log}
}

// Show opens the windows and runs the event loop until a key is pressed, the
// last window is closed or ctx is done.
func (v *FyneViewer) Show(ctx context.Context, panels []pipeline.Panel) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}

	var once sync.Once
	quit := func() {
		once.Do(func() {
			v.log.Debug("Closing display windows")
			v.app.Quit()
		})
	}

	windows := v.open(panels, quit)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(quit)
		case <-done:
		}
	}()

	v.app.Run()
	close(done)

	for _, w := range windows {
		w.Close()
	}
	return ctx.Err()
}

// open creates and shows one window per panel. Any typed key calls onKey.
func (v *FyneViewer) open(panels []pipeline.Panel, onKey func()) []fyne.Window {
	windows := make([]fyne.Window, 0, len(panels))
	for _, p := range panels {
		img := canvas.NewImageFromImage(p.Image)
		img.FillMode = canvas.ImageFillContain
		img.ScaleMode = canvas.ImageScaleFastest

		w := v.app.NewWindow(p.Title)
		w.SetContent(img)
		if p.Image != nil {
			size := p.Image.Bounds().Size()
			w.Resize(fyne.NewSize(float32(size.X), float32(size.Y)))
		}
		w.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { onKey() })
		w.Show()

		v.log.WithField("title", p.Title).Debug("Window opened")
		windows = append(windows, w)
	}
	return windows
}
