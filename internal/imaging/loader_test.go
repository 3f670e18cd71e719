package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

// createTestImage writes a solid colour PNG into a temp dir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 120, 80, color.RGBA{255, 128, 64, 255})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 120 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 120x80", bounds.Dx(), bounds.Dy())
	}
	if bounds.Min != (image.Point{}) {
		t.Errorf("bounds should start at origin, got %v", bounds.Min)
	}

	got := img.RGBAAt(60, 40)
	if got != (color.RGBA{255, 128, 64, 255}) {
		t.Errorf("pixel: got %v, want {255 128 64 255}", got)
	}
}

func TestLoad_DiscardsAlpha(t *testing.T) {
	// Straight colour values survive, alpha is forced to opaque.
	imgPath := createTestImage(t, 10, 10, color.NRGBA{200, 100, 50, 0})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got := img.RGBAAt(5, 5)
	if got != (color.RGBA{200, 100, 50, 255}) {
		t.Errorf("pixel: got %v, want {200 100 50 255}", got)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	path := "/nonexistent/path/to/image.png"
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("error should wrap ErrDecodeFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the path, got %q", err.Error())
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrDecodeFailed) {
		t.Errorf("Load should fail with ErrDecodeFailed for invalid image data, got %v", err)
	}
}

func TestReadInfo(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info, err := ReadInfo(imgPath, img)
	if err != nil {
		t.Fatalf("ReadInfo failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestReadInfo_FormatDetection(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))

	tests := []struct {
		ext    string
		format string
	}{
		{".png", "png"},
		{".JPG", "jpeg"},
		{".jpeg", "jpeg"},
		{".gif", "gif"},
		{".tif", "tiff"},
		{".xyz", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test-format"+tt.ext)
			if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
				t.Fatalf("failed to create file: %v", err)
			}

			info, err := ReadInfo(path, img)
			if err != nil {
				t.Fatalf("ReadInfo failed: %v", err)
			}
			if info.Format != tt.format {
				t.Errorf("Format for %s: got %s, want %s", tt.ext, info.Format, tt.format)
			}
		})
	}
}

func TestReadInfo_NonExistent(t *testing.T) {
	_, err := ReadInfo("/nonexistent/image.png", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Error("ReadInfo should fail for non-existent file")
	}
}
