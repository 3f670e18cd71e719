package display

import (
	"context"
	"errors"

	"github.com/ironsheep/kelp-detect/internal/pipeline"
)

// ErrNoPanels is returned when Show is called with nothing to display.
var ErrNoPanels = errors.New("no panels to display")

// Viewer displays panels and waits for the user.
type Viewer interface {
	// Show blocks until a key is pressed in any window or ctx is done. All
	// windows are closed before it returns.
	Show(ctx context.Context, panels []pipeline.Panel) error
}
