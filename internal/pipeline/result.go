package pipeline

import (
	"image"

	"github.com/ironsheep/kelp-detect/internal/detection"
	"github.com/ironsheep/kelp-detect/internal/imaging"
)

// Panel titles, in display order.
const (
	TitleOriginal = "Original Image"
	TitleDiseased = "Diseased Part (Light Green)"
	TitleHealthy  = "Healthy Part (Dark Green)"
	TitleOutlined = "Detected Disease Outlined"
)

// Result holds every buffer produced by one run.
type Result struct {
	// RunID identifies the run in log output.
	RunID string

	// OriginalSize is the decoded image size before normalizing.
	OriginalSize image.Point

	// Resized reports whether the working buffer was downscaled.
	Resized bool

	// Working is the buffer every later stage reads.
	Working *image.RGBA

	HSV          *imaging.HSVImage
	DiseasedMask *image.Gray
	HealthyMask  *image.Gray
	Contours     []detection.Contour

	// Diseased and Healthy are Working with everything outside the class mask
	// set to black.
	Diseased *image.RGBA
	Healthy  *image.RGBA

	// Outlined is Working with the diseased contours stroked on top.
	Outlined *image.RGBA

	// DiseasedCoverage and HealthyCoverage are the fractions of pixels in each mask.
	DiseasedCoverage float64
	HealthyCoverage  float64
}

// Panel is one titled image for display.
type Panel struct {
	Title string
	Image image.Image
}

// Panels returns the four display views in fixed order.
func (r *Result) Panels() []Panel {
	return []Panel{
		{Title: TitleOriginal, Image: r.Working},
		{Title: TitleDiseased, Image: r.Diseased},
		{Title: TitleHealthy, Image: r.Healthy},
		{Title: TitleOutlined, Image: r.Outlined},
	}
}

// Summary is a JSON-friendly digest of a Result.
type Summary struct {
	RunID            string            `json:"run_id"`
	OriginalWidth    int               `json:"original_width"`
	OriginalHeight   int               `json:"original_height"`
	Width            int               `json:"width"`
	Height           int               `json:"height"`
	Resized          bool              `json:"resized"`
	DiseasedCoverage float64           `json:"diseased_coverage"`
	HealthyCoverage  float64           `json:"healthy_coverage"`
	Regions          []image.Rectangle `json:"regions"`
}

// Summary reports the run's sizes, coverage and the bounding box of every
// diseased region.
func (r *Result) Summary() Summary {
	size := r.Working.Bounds().Size()
	regions := make([]image.Rectangle, 0, len(r.Contours))
	for _, c := range r.Contours {
		regions = append(regions, c.Bounds())
	}
	return Summary{
		RunID:            r.RunID,
		OriginalWidth:    r.OriginalSize.X,
		OriginalHeight:   r.OriginalSize.Y,
		Width:            size.X,
		Height:           size.Y,
		Resized:          r.Resized,
		DiseasedCoverage: r.DiseasedCoverage,
		HealthyCoverage:  r.HealthyCoverage,
		Regions:          regions,
	}
}
