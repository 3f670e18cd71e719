//go:build gocv

package display

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"

	"github.com/ironsheep/kelp-detect/internal/pipeline"
)

// waitSlice bounds each WaitKey call so cancellation is noticed.
const waitSlice = 100 * time.Millisecond

// OpenCVViewer shows each panel in a highgui window.
type OpenCVViewer struct {
	log logrus.FieldLogger
}

// NewOpenCV creates a viewer backed by OpenCV highgui.
func NewOpenCV(log logrus.FieldLogger) (*OpenCVViewer, error) {
	return &OpenCVViewer{log: log}, nil
}

// Show opens one window per panel and waits for any key.
func (v *OpenCVViewer) Show(ctx context.Context, panels []pipeline.Panel) error {
	if len(panels) == 0 {
		return ErrNoPanels
	}

	windows := make([]*gocv.Window, 0, len(panels))
	mats := make([]gocv.Mat, 0, len(panels))
	defer func() {
		for _, m := range mats {
			m.Close()
		}
		for _, w := range windows {
			w.Close()
		}
	}()

	for _, p := range panels {
		mat, err := gocv.ImageToMatRGB(p.Image)
		if err != nil {
			return fmt.Errorf("failed to convert %q: %w", p.Title, err)
		}
		mats = append(mats, mat)

		w := gocv.NewWindow(p.Title)
		w.IMShow(mat)
		windows = append(windows, w)
		v.log.WithField("title", p.Title).Debug("Window opened")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if key := windows[0].WaitKey(int(waitSlice / time.Millisecond)); key >= 0 {
			v.log.WithField("key", key).Debug("Key pressed")
			return nil
		}
	}
}
