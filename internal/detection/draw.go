package detection

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// OutlineColor is the default stroke colour for detected regions: pure red.
var OutlineColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// OutlineThickness is the default stroke width in pixels.
const OutlineThickness = 2

// DrawContours strokes every contour onto a copy of img.
//
// Each contour is drawn as a closed polyline with a square brush of the given
// thickness; region interiors are left untouched. The source image is not
// modified. A thickness below 1 is treated as 1.
func DrawContours(img image.Image, contours []Contour, c color.RGBA, thickness int) *image.RGBA {
	out := clone.AsRGBA(img)
	if thickness < 1 {
		thickness = 1
	}

	for _, contour := range contours {
		switch len(contour) {
		case 0:
			continue
		case 1:
			stamp(out, contour[0], c, thickness)
		default:
			for i, p := range contour {
				drawLine(out, p, contour[(i+1)%len(contour)], c, thickness)
			}
		}
	}

	return out
}

// drawLine rasterises the segment a-b with Bresenham's algorithm, stamping the
// brush at every step.
func drawLine(img *image.RGBA, a, b image.Point, c color.RGBA, thickness int) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	e := dx + dy

	p := a
	for {
		stamp(img, p, c, thickness)
		if p == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.X += sx
		}
		if e2 <= dx {
			e += dx
			p.Y += sy
		}
	}
}

// stamp paints a thickness x thickness square whose anchor is p, with the
// extra pixel of even sizes falling up and left of p. Pixels outside the image
// are clipped.
func stamp(img *image.RGBA, p image.Point, c color.RGBA, thickness int) {
	lo := -(thickness / 2)
	hi := lo + thickness
	bounds := img.Bounds()
	for y := p.Y + lo; y < p.Y+hi; y++ {
		for x := p.X + lo; x < p.X+hi; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
