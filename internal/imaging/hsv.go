//go:build !gocv

package imaging

import "image"

// ToHSV converts an opaque RGBA working buffer to HSV, pixel by pixel.
//
// The output has the same bounds as the input. The conversion is pure, so
// converting the same buffer twice yields identical output.
func ToHSV(img *image.RGBA) *HSVImage {
	return convertPixels(img)
}
