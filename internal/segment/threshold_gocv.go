//go:build gocv

package segment

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ironsheep/kelp-detect/internal/cvmat"
	"github.com/ironsheep/kelp-detect/internal/imaging"
)

// Threshold builds a mask that is 255 wherever the HSV pixel lies inside r
// and 0 elsewhere, using OpenCV's InRange. The mask has the same bounds as hsv.
func Threshold(hsv *imaging.HSVImage, r Range) *image.Gray {
	bounds := hsv.Bounds()
	src, err := cvmat.New(cvmat.Layout{Pix: hsv.Pix, Stride: hsv.Stride, Rect: bounds, Channels: 3}, gocv.MatTypeCV8UC3)
	if err != nil {
		return image.NewGray(bounds)
	}
	defer src.Close()

	lower := gocv.NewScalar(float64(r.Lower.H), float64(r.Lower.S), float64(r.Lower.V), 0)
	upper := gocv.NewScalar(float64(r.Upper.H), float64(r.Upper.S), float64(r.Upper.V), 0)

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.InRangeWithScalar(src, lower, upper, &dst)

	mask, err := cvmat.ToGray(dst, bounds)
	if err != nil {
		return image.NewGray(bounds)
	}
	return mask
}
