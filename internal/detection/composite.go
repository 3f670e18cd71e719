package detection

import (
	"image"
)

// ApplyMask isolates the pixels of img selected by mask.
//
// The result has the bounds of img. A pixel equals the source pixel wherever
// the mask is non-zero and is opaque black elsewhere, including where the mask
// does not cover img. This is a masked copy, not a blend.
func ApplyMask(img *image.RGBA, mask *image.Gray) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := img.PixOffset(bounds.Min.X, y)
		di := out.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[di+3] = 0xff
			if (image.Point{X: x, Y: y}).In(mask.Rect) && mask.Pix[mask.PixOffset(x, y)] != 0 {
				out.Pix[di+0] = img.Pix[si+0]
				out.Pix[di+1] = img.Pix[si+1]
				out.Pix[di+2] = img.Pix[si+2]
			}
			si += 4
			di += 4
		}
	}

	return out
}
