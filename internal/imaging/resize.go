package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultMaxHeight is the display height that the working buffer is bounded to.
const DefaultMaxHeight = 800

// FitHeight bounds an image to maxHeight pixels while preserving aspect ratio.
//
// If the image height is at most maxHeight, or maxHeight is not positive, the
// input is returned unchanged (the same pointer) and resized is false.
// Otherwise both dimensions are multiplied by maxHeight/height, rounded to the
// nearest pixel, and the image is resampled with a box filter. For shrinking,
// a box filter averages every source pixel that falls under a destination
// pixel, which keeps fine texture from aliasing.
//
// The returned buffer is opaque with bounds starting at (0,0).
func FitHeight(img *image.RGBA, maxHeight int) (out *image.RGBA, resized bool) {
	bounds := img.Bounds()
	if maxHeight <= 0 || bounds.Dy() <= maxHeight {
		return img, false
	}

	w, h := ScaledSize(bounds.Dx(), bounds.Dy(), maxHeight)
	return toOpaqueRGBA(imaging.Resize(img, w, h, imaging.Box)), true
}

// ScaledSize returns the dimensions FitHeight resamples a width x height image to.
func ScaledSize(width, height, maxHeight int) (int, int) {
	if maxHeight <= 0 || height <= maxHeight {
		return width, height
	}
	scale := float64(maxHeight) / float64(height)
	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
