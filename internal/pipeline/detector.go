package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/kelp-detect/internal/config"
	"github.com/ironsheep/kelp-detect/internal/detection"
	"github.com/ironsheep/kelp-detect/internal/imaging"
	"github.com/ironsheep/kelp-detect/internal/segment"
)

// Detector runs the segmentation pipeline with a fixed calibration.
type Detector struct {
	cal       config.Calibration
	maxHeight int
	log       logrus.FieldLogger
}

// New creates a Detector. The calibration is validated; a maxHeight of zero
// or less disables downscaling. A nil logger discards output.
func New(cal config.Calibration, maxHeight int, log logrus.FieldLogger) (*Detector, error) {
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Detector{cal: cal, maxHeight: maxHeight, log: log}, nil
}

// Run loads the image at path and processes it.
//
// A load failure is returned as an error wrapping imaging.ErrDecodeFailed and
// no later stage runs.
func (d *Detector) Run(ctx context.Context, path string) (*Result, error) {
	start := time.Now()
	img, err := imaging.Load(path)
	if err != nil {
		return nil, err
	}
	fields := logrus.Fields{"path": path, "duration": time.Since(start)}
	if info, err := imaging.ReadInfo(path, img); err == nil {
		fields["width"] = info.Width
		fields["height"] = info.Height
		fields["format"] = info.Format
		fields["file_size_bytes"] = info.FileSizeBytes
	}
	d.log.WithFields(fields).Debug("Image loaded")

	return d.Process(ctx, img)
}

// Process runs every stage after loading on img. The input is not modified.
//
// The context is checked between stages; a cancelled context stops the run
// with ctx.Err().
func (d *Detector) Process(ctx context.Context, img *image.RGBA) (*Result, error) {
	res := &Result{
		RunID:        uuid.NewString(),
		OriginalSize: img.Bounds().Size(),
	}
	log := d.log.WithField("run", res.RunID)

	stage := func(name string, fn func()) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		start := time.Now()
		fn()
		log.WithFields(logrus.Fields{"stage": name, "duration": time.Since(start)}).Debug("Stage complete")
		return nil
	}

	steps := []struct {
		name string
		fn   func()
	}{
		{"normalize", func() {
			res.Working, res.Resized = imaging.FitHeight(img, d.maxHeight)
			if res.Resized {
				size := res.Working.Bounds().Size()
				log.WithFields(logrus.Fields{
					"original_width":  res.OriginalSize.X,
					"original_height": res.OriginalSize.Y,
					"width":           size.X,
					"height":          size.Y,
				}).Info("Image resized for display")
			}
		}},
		{"convert", func() {
			res.HSV = imaging.ToHSV(res.Working)
		}},
		{"threshold", func() {
			res.DiseasedMask = segment.Threshold(res.HSV, d.cal.Diseased)
			res.HealthyMask = segment.Threshold(res.HSV, d.cal.Healthy)
		}},
		{"denoise", func() {
			res.DiseasedMask = segment.Denoise(res.DiseasedMask, d.cal.Kernel)
			if d.cal.DenoiseHealthy {
				res.HealthyMask = segment.Denoise(res.HealthyMask, d.cal.Kernel)
			}
		}},
		{"contours", func() {
			res.Contours = detection.FindExternalContours(res.DiseasedMask)
		}},
		{"render", func() {
			res.Diseased = detection.ApplyMask(res.Working, res.DiseasedMask)
			res.Healthy = detection.ApplyMask(res.Working, res.HealthyMask)
			res.Outlined = detection.DrawContours(res.Working, res.Contours, d.cal.OutlineColor, d.cal.OutlineThickness)
		}},
	}

	for _, s := range steps {
		if err := stage(s.name, s.fn); err != nil {
			return nil, err
		}
	}

	res.DiseasedCoverage = segment.Coverage(res.DiseasedMask)
	res.HealthyCoverage = segment.Coverage(res.HealthyMask)
	log.WithFields(logrus.Fields{
		"contours":          len(res.Contours),
		"diseased_coverage": res.DiseasedCoverage,
		"healthy_coverage":  res.HealthyCoverage,
	}).Debug("Segmentation complete")

	return res, nil
}
