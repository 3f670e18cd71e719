package detection

import (
	"image"
	"math"
)

// Contour is the closed boundary polyline of one foreground region.
//
// Consecutive points are joined by straight horizontal, vertical or diagonal
// runs, and the last point joins back to the first. A single-pixel region has
// a one-point contour.
type Contour []image.Point

// Bounds returns the smallest rectangle containing every boundary pixel.
// Max is exclusive, as with image.Rectangle.
func (c Contour) Bounds() image.Rectangle {
	if len(c) == 0 {
		return image.Rectangle{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Area returns the polygon area enclosed by the contour (shoelace formula).
// The polygon runs through pixel centres, so a filled 20x20 square has area 361.
func (c Contour) Area() float64 {
	if len(c) < 3 {
		return 0
	}
	var sum int
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(float64(sum)) / 2
}
