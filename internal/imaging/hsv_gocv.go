//go:build gocv

package imaging

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ironsheep/kelp-detect/internal/cvmat"
)

// ToHSV converts an opaque RGBA working buffer to HSV with OpenCV's 8-bit
// BGR to HSV conversion.
//
// The output has the same bounds as the input. Buffers OpenCV cannot wrap,
// such as empty ones, are converted pixel by pixel instead.
func ToHSV(img *image.RGBA) *HSVImage {
	src, err := cvmat.FromRGBA(img)
	if err != nil {
		return convertPixels(img)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.CvtColor(src, &dst, gocv.ColorBGRToHSV)

	out := NewHSVImage(img.Bounds())
	if err := cvmat.CopyTo(dst, cvmat.Layout{Pix: out.Pix, Stride: out.Stride, Rect: out.Rect, Channels: 3}); err != nil {
		return convertPixels(img)
	}
	return out
}
