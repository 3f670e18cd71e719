//go:build !gocv

package segment

import (
	"image"

	"github.com/ironsheep/kelp-detect/internal/imaging"
)

// Threshold builds a mask that is 255 wherever the HSV pixel lies inside r
// and 0 elsewhere. The mask has the same bounds as hsv.
func Threshold(hsv *imaging.HSVImage, r Range) *image.Gray {
	bounds := hsv.Bounds()
	mask := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := hsv.PixOffset(bounds.Min.X, y)
		di := mask.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := imaging.HSV{H: hsv.Pix[si], S: hsv.Pix[si+1], V: hsv.Pix[si+2]}
			if r.Contains(c) {
				mask.Pix[di] = 255
			}
			si += 3
			di++
		}
	}
	return mask
}
