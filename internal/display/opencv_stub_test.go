//go:build !gocv

package display

import (
	"context"
	"errors"
	"testing"
)

func TestNewOpenCV_Unavailable(t *testing.T) {
	v, err := NewOpenCV(nil)
	if !errors.Is(err, ErrOpenCVUnavailable) {
		t.Errorf("got %v, want ErrOpenCVUnavailable", err)
	}
	if v != nil {
		t.Error("expected nil viewer")
	}

	var stub *OpenCVViewer
	if err := stub.Show(context.Background(), createPanels()); !errors.Is(err, ErrOpenCVUnavailable) {
		t.Errorf("Show: got %v, want ErrOpenCVUnavailable", err)
	}
}
