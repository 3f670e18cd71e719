//go:build !gocv

package segment

import (
	"image"
)

// Erode replaces each pixel with the minimum over the kernel window.
// Foreground specks narrower than the kernel disappear.
func Erode(mask *image.Gray, k Kernel) *image.Gray {
	return morph(mask, k, 255, minU8)
}

// Dilate replaces each pixel with the maximum over the kernel window.
// Background gaps narrower than the kernel are filled.
func Dilate(mask *image.Gray, k Kernel) *image.Gray {
	return morph(mask, k, 0, maxU8)
}

// morph applies a rectangular min or max filter as two separable passes.
// Window positions outside the image are skipped; init is the identity of pick.
func morph(src *image.Gray, k Kernel, init uint8, pick func(a, b uint8) uint8) *image.Gray {
	if k.Width <= 1 && k.Height <= 1 {
		dst := image.NewGray(src.Bounds())
		copy(dst.Pix, src.Pix)
		return dst
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Horizontal pass
	tmp := image.NewGray(bounds)
	x0, x1 := window(k.Width)
	for y := 0; y < h; y++ {
		srow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):][:w]
		trow := tmp.Pix[tmp.PixOffset(bounds.Min.X, bounds.Min.Y+y):][:w]
		for x := 0; x < w; x++ {
			acc := init
			for dx := x0; dx <= x1; dx++ {
				xx := x + dx
				if xx < 0 || xx >= w {
					continue
				}
				acc = pick(acc, srow[xx])
			}
			trow[x] = acc
		}
	}

	// Vertical pass
	dst := image.NewGray(bounds)
	y0, y1 := window(k.Height)
	for y := 0; y < h; y++ {
		drow := dst.Pix[dst.PixOffset(bounds.Min.X, bounds.Min.Y+y):][:w]
		for x := 0; x < w; x++ {
			acc := init
			for dy := y0; dy <= y1; dy++ {
				yy := y + dy
				if yy < 0 || yy >= h {
					continue
				}
				acc = pick(acc, tmp.Pix[tmp.PixOffset(bounds.Min.X+x, bounds.Min.Y+yy)])
			}
			drow[x] = acc
		}
	}

	return dst
}

// window returns the inclusive offsets covered by a kernel of the given size
// anchored at size/2.
func window(size int) (int, int) {
	if size < 1 {
		size = 1
	}
	anchor := size / 2
	return -anchor, size - 1 - anchor
}

func minU8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
