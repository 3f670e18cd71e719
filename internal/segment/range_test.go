package segment

import (
	"errors"
	"image"
	"testing"

	"github.com/ironsheep/kelp-detect/internal/imaging"
)

var diseased = NewRange([3]uint8{29, 50, 51}, [3]uint8{105, 211, 178})

// createHSVImage creates a solid HSV buffer
func createHSVImage(width, height int, c imaging.HSV) *imaging.HSVImage {
	img := imaging.NewHSVImage(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetHSV(x, y, c)
		}
	}
	return img
}

func TestRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{"diseased calibration", diseased, false},
		{"healthy calibration", NewRange([3]uint8{0, 0, 0}, [3]uint8{29, 254, 208}), false},
		{"single point", NewRange([3]uint8{10, 10, 10}, [3]uint8{10, 10, 10}), false},
		{"full hue", NewRange([3]uint8{0, 0, 0}, [3]uint8{180, 255, 255}), false},
		{"hue inverted", NewRange([3]uint8{50, 0, 0}, [3]uint8{40, 255, 255}), true},
		{"saturation inverted", NewRange([3]uint8{0, 200, 0}, [3]uint8{40, 100, 255}), true},
		{"value inverted", NewRange([3]uint8{0, 0, 201}, [3]uint8{40, 255, 200}), true},
		{"hue above 180", NewRange([3]uint8{0, 0, 0}, [3]uint8{181, 255, 255}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Errorf("Validate: got %v, want ErrInvalidRange", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate failed: %v", err)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		c    imaging.HSV
		want bool
	}{
		{"inside", imaging.HSV{H: 60, S: 150, V: 150}, true},
		{"lower corner", imaging.HSV{H: 29, S: 50, V: 51}, true},
		{"upper corner", imaging.HSV{H: 105, S: 211, V: 178}, true},
		{"hue below", imaging.HSV{H: 28, S: 150, V: 150}, false},
		{"hue above", imaging.HSV{H: 106, S: 150, V: 150}, false},
		{"saturation below", imaging.HSV{H: 60, S: 49, V: 150}, false},
		{"saturation above", imaging.HSV{H: 60, S: 212, V: 150}, false},
		{"value below", imaging.HSV{H: 60, S: 150, V: 50}, false},
		{"value above", imaging.HSV{H: 60, S: 150, V: 179}, false},
		{"black", imaging.HSV{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := diseased.Contains(tt.c); got != tt.want {
				t.Errorf("Contains(%v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestThreshold(t *testing.T) {
	hsv := createHSVImage(10, 10, imaging.HSV{})
	// 3x2 block inside the range, one pixel just outside on hue
	for y := 2; y < 4; y++ {
		for x := 5; x < 8; x++ {
			hsv.SetHSV(x, y, imaging.HSV{H: 60, S: 150, V: 150})
		}
	}
	hsv.SetHSV(0, 9, imaging.HSV{H: 106, S: 150, V: 150})

	mask := Threshold(hsv, diseased)
	if mask.Bounds() != hsv.Bounds() {
		t.Fatalf("bounds: got %v, want %v", mask.Bounds(), hsv.Bounds())
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := uint8(0)
			if x >= 5 && x < 8 && y >= 2 && y < 4 {
				want = 255
			}
			if got := mask.GrayAt(x, y).Y; got != want {
				t.Errorf("mask(%d,%d): got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestThreshold_PerPixelPredicate(t *testing.T) {
	// Every pixel gets a distinct triple; the mask must agree with Contains.
	hsv := imaging.NewHSVImage(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			hsv.SetHSV(x, y, imaging.HSV{H: uint8(x * 3 % 181), S: uint8(y * 4), V: uint8((x + y) * 2)})
		}
	}

	mask := Threshold(hsv, diseased)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			in := diseased.Contains(hsv.HSVAt(x, y))
			got := mask.GrayAt(x, y).Y
			if (got == 255) != in || (got != 0 && got != 255) {
				t.Fatalf("mask(%d,%d)=%d disagrees with Contains=%v", x, y, got, in)
			}
		}
	}
}

func TestCoverage(t *testing.T) {
	mask := image.NewGray(image.Rect(0, 0, 10, 10))
	if got := Coverage(mask); got != 0 {
		t.Errorf("Coverage of empty mask: got %v", got)
	}

	for x := 0; x < 10; x++ {
		mask.Pix[mask.PixOffset(x, 0)] = 255
		mask.Pix[mask.PixOffset(x, 1)] = 255
	}
	if got := Coverage(mask); got != 0.2 {
		t.Errorf("Coverage: got %v, want 0.2", got)
	}

	if got := Coverage(image.NewGray(image.Rectangle{})); got != 0 {
		t.Errorf("Coverage of zero-size mask: got %v", got)
	}
}
