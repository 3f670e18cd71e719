package imaging

import (
	"fmt"
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is a colour in the 8-bit HSV convention.
type HSV struct {
	H uint8 `json:"h"` // Hue: 0-179 (degrees / 2; 0=red, 60=green, 120=blue)
	S uint8 `json:"s"` // Saturation: 0-255 (0=gray, 255=vivid)
	V uint8 `json:"v"` // Value: 0-255 (0=black, 255=brightest)
}

func (c HSV) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.H, c.S, c.V)
}

// HSVImage is an in-memory image of HSV triples, laid out like image.RGBA
// with three bytes per pixel in H, S, V order.
type HSVImage struct {
	// Pix holds the image's pixels. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewHSVImage returns a zeroed HSVImage with the given bounds.
func NewHSVImage(r image.Rectangle) *HSVImage {
	w, h := r.Dx(), r.Dy()
	return &HSVImage{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// Bounds returns the domain for which HSVAt can return valid values.
func (p *HSVImage) Bounds() image.Rectangle { return p.Rect }

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *HSVImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// HSVAt returns the colour at (x, y). Points outside the bounds are zero.
func (p *HSVImage) HSVAt(x, y int) HSV {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return HSV{}
	}
	i := p.PixOffset(x, y)
	return HSV{H: p.Pix[i], S: p.Pix[i+1], V: p.Pix[i+2]}
}

// SetHSV sets the colour at (x, y). Points outside the bounds are ignored.
func (p *HSVImage) SetHSV(x, y int, c HSV) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i+0] = c.H
	p.Pix[i+1] = c.S
	p.Pix[i+2] = c.V
}

// convertPixels converts img with RGBToHSV, one pixel at a time.
func convertPixels(img *image.RGBA) *HSVImage {
	bounds := img.Bounds()
	out := NewHSVImage(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := img.PixOffset(bounds.Min.X, y)
		di := out.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := RGBToHSV(img.Pix[si], img.Pix[si+1], img.Pix[si+2])
			out.Pix[di+0] = c.H
			out.Pix[di+1] = c.S
			out.Pix[di+2] = c.V
			si += 4
			di += 3
		}
	}
	return out
}

// RGBToHSV converts 8-bit RGB values to the 8-bit HSV convention.
//
// The conversion follows the standard hexcone algorithm:
//  1. V is the largest component
//  2. S is (max - min) / max, or 0 for black
//  3. H is the angle on the colour wheel, halved to fit a byte
//
// Achromatic colours (max == min) have H = 0, and H never exceeds 179.
func RGBToHSV(r, g, b uint8) HSV {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, v := c.Hsv()

	// Hues just below 360 degrees round up to 180, which is red again.
	hue := math.Round(h / 2)
	if hue >= 180 {
		hue -= 180
	}

	return HSV{
		H: uint8(hue),
		S: uint8(math.Round(s * 255)),
		V: uint8(math.Round(v * 255)),
	}
}

// SampleHSV returns the HSV value of the working buffer at (x, y).
//
// This is the calibration aid for finding range bounds: sample a few pixels of
// each tissue class and widen the configured range to include them.
func SampleHSV(img *image.RGBA, x, y int) (HSV, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return HSV{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	i := img.PixOffset(x, y)
	return RGBToHSV(img.Pix[i], img.Pix[i+1], img.Pix[i+2]), nil
}
