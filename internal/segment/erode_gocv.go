//go:build gocv

package segment

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ironsheep/kelp-detect/internal/cvmat"
)

// Erode replaces each pixel with the minimum over the kernel window.
// Foreground specks narrower than the kernel disappear.
func Erode(mask *image.Gray, k Kernel) *image.Gray {
	return morph(mask, k, gocv.MorphErode)
}

// Dilate replaces each pixel with the maximum over the kernel window.
// Background gaps narrower than the kernel are filled.
func Dilate(mask *image.Gray, k Kernel) *image.Gray {
	return morph(mask, k, gocv.MorphDilate)
}

// morph runs one OpenCV morphology operation with a rectangular element.
// OpenCV's default border leaves out-of-image pixels out of the min and max.
func morph(mask *image.Gray, k Kernel, op gocv.MorphType) *image.Gray {
	bounds := mask.Bounds()
	src, err := cvmat.FromGray(mask)
	if err != nil {
		return image.NewGray(bounds)
	}
	defer src.Close()

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(max(k.Width, 1), max(k.Height, 1)))
	defer kernel.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.MorphologyEx(src, &dst, op, kernel)

	out, err := cvmat.ToGray(dst, bounds)
	if err != nil {
		return image.NewGray(bounds)
	}
	return out
}
