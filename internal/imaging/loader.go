package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrDecodeFailed reports that a path did not resolve to a decodable image.
var ErrDecodeFailed = errors.New("decode failed")

// Load reads an image file into an opaque RGBA working buffer.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     those registered by the decoder: PNG, JPEG, GIF, BMP and TIFF.
//
// Returns:
//   - *image.RGBA: The decoded image with bounds starting at (0,0) and the
//     alpha channel forced to 255.
//   - error: Non-nil, wrapping ErrDecodeFailed, if the file cannot be opened or
//     decoded. The error message names the path.
//
// EXIF orientation tags in JPEG files are applied, so the buffer is upright in
// the same way the photograph is displayed by a viewer.
func Load(path string) (*image.RGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailed, path, err)
	}
	return toOpaqueRGBA(imaging.Clone(img)), nil
}

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp", "tiff"
	// or "unknown". Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// ReadInfo describes an image that has already been loaded from path.
//
// The file is stat'd for its size; the image itself is not decoded again.
func ReadInfo(path string, img image.Image) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".bmp":
		format = "bmp"
	case ".tif", ".tiff":
		format = "tiff"
	}

	bounds := img.Bounds()
	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// toOpaqueRGBA copies straight colour values into an RGBA buffer with A=255.
// With full opacity, premultiplied and straight values are identical.
func toOpaqueRGBA(src *image.NRGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		si := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		di := dst.PixOffset(0, y)
		for x := 0; x < bounds.Dx(); x++ {
			dst.Pix[di+0] = src.Pix[si+0]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
			dst.Pix[di+3] = 0xff
			si += 4
			di += 4
		}
	}
	return dst
}
