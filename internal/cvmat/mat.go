//go:build gocv

package cvmat

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ErrEmpty is returned for buffers with no pixels; OpenCV cannot wrap them.
var ErrEmpty = errors.New("empty buffer")

// Layout describes a packed pixel buffer in the style of image.RGBA.
type Layout struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
	// Channels is the number of bytes per pixel.
	Channels int
}

func (l Layout) offset(x, y int) int {
	return (y-l.Rect.Min.Y)*l.Stride + (x-l.Rect.Min.X)*l.Channels
}

// New copies the buffer into a Mat of type mt. mt must have l.Channels
// 8-bit channels.
func New(l Layout, mt gocv.MatType) (gocv.Mat, error) {
	w, h := l.Rect.Dx(), l.Rect.Dy()
	if w <= 0 || h <= 0 {
		return gocv.Mat{}, ErrEmpty
	}

	row := w * l.Channels
	data := make([]byte, row*h)
	for y := 0; y < h; y++ {
		i := l.offset(l.Rect.Min.X, l.Rect.Min.Y+y)
		copy(data[y*row:(y+1)*row], l.Pix[i:i+row])
	}

	mat, err := gocv.NewMatFromBytes(h, w, mt, data)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to create mat: %w", err)
	}
	return mat, nil
}

// CopyTo writes the Mat's pixels into the buffer described by l. The Mat must
// be l.Rect sized with l.Channels bytes per pixel.
func CopyTo(mat gocv.Mat, l Layout) error {
	w, h := l.Rect.Dx(), l.Rect.Dy()
	if mat.Cols() != w || mat.Rows() != h || mat.Channels() != l.Channels {
		return fmt.Errorf("mat %dx%dx%d does not match buffer %dx%dx%d",
			mat.Cols(), mat.Rows(), mat.Channels(), w, h, l.Channels)
	}

	data := mat.ToBytes()
	row := w * l.Channels
	for y := 0; y < h; y++ {
		i := l.offset(l.Rect.Min.X, l.Rect.Min.Y+y)
		copy(l.Pix[i:i+row], data[y*row:(y+1)*row])
	}
	return nil
}

// FromGray copies a mask into a single-channel Mat.
func FromGray(img *image.Gray) (gocv.Mat, error) {
	return New(Layout{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect, Channels: 1}, gocv.MatTypeCV8UC1)
}

// ToGray copies a single-channel Mat into a new mask with bounds r.
func ToGray(mat gocv.Mat, r image.Rectangle) (*image.Gray, error) {
	out := image.NewGray(r)
	if err := CopyTo(mat, Layout{Pix: out.Pix, Stride: out.Stride, Rect: r, Channels: 1}); err != nil {
		return nil, err
	}
	return out, nil
}

// FromRGBA copies an opaque RGBA buffer into a three-channel Mat in BGR
// order, dropping alpha.
func FromRGBA(img *image.RGBA) (gocv.Mat, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return gocv.Mat{}, ErrEmpty
	}

	bgr := make([]byte, w*h*3)
	di := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		si := img.PixOffset(bounds.Min.X, y)
		for x := 0; x < w; x++ {
			bgr[di+0] = img.Pix[si+2]
			bgr[di+1] = img.Pix[si+1]
			bgr[di+2] = img.Pix[si+0]
			si += 4
			di += 3
		}
	}
	return New(Layout{Pix: bgr, Stride: w * 3, Rect: image.Rect(0, 0, w, h), Channels: 3}, gocv.MatTypeCV8UC3)
}
