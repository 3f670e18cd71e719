//go:build !gocv

package display

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/kelp-detect/internal/pipeline"
)

// ErrOpenCVUnavailable is returned when the binary was built without the gocv tag.
var ErrOpenCVUnavailable = errors.New("opencv viewer requires building with -tags gocv")

// OpenCVViewer is unavailable in this build.
type OpenCVViewer struct{}

// NewOpenCV always fails without the gocv build tag.
func NewOpenCV(logrus.FieldLogger) (*OpenCVViewer, error) {
	return nil, ErrOpenCVUnavailable
}

// Show always fails without the gocv build tag.
func (*OpenCVViewer) Show(context.Context, []pipeline.Panel) error {
	return ErrOpenCVUnavailable
}
