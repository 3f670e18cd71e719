package segment

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/kelp-detect/internal/imaging"
)

// MaxHue is the largest hue in the 8-bit HSV convention.
const MaxHue = 180

// ErrInvalidRange is returned when a range's bounds are out of order or out of domain.
var ErrInvalidRange = errors.New("invalid HSV range")

// Range is an axis-aligned, inclusive box in HSV space.
type Range struct {
	Lower imaging.HSV `json:"lower"`
	Upper imaging.HSV `json:"upper"`
}

// NewRange builds a Range from (H, S, V) lower and upper triples.
func NewRange(lower, upper [3]uint8) Range {
	return Range{
		Lower: imaging.HSV{H: lower[0], S: lower[1], V: lower[2]},
		Upper: imaging.HSV{H: upper[0], S: upper[1], V: upper[2]},
	}
}

// Validate checks that every lower bound is at most its upper bound and that
// the hue bounds are within 0-180.
func (r Range) Validate() error {
	if r.Lower.H > r.Upper.H || r.Lower.S > r.Upper.S || r.Lower.V > r.Upper.V {
		return fmt.Errorf("%w: lower %v exceeds upper %v", ErrInvalidRange, r.Lower, r.Upper)
	}
	if r.Upper.H > MaxHue {
		return fmt.Errorf("%w: hue %d above %d", ErrInvalidRange, r.Upper.H, MaxHue)
	}
	return nil
}

// Contains reports whether c lies inside the box on all three channels.
func (r Range) Contains(c imaging.HSV) bool {
	return c.H >= r.Lower.H && c.H <= r.Upper.H &&
		c.S >= r.Lower.S && c.S <= r.Upper.S &&
		c.V >= r.Lower.V && c.V <= r.Upper.V
}

func (r Range) String() string {
	return fmt.Sprintf("%v-%v", r.Lower, r.Upper)
}

// Coverage returns the fraction of mask pixels that are foreground.
func Coverage(mask *image.Gray) float64 {
	bounds := mask.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return 0
	}
	count := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := mask.Pix[mask.PixOffset(bounds.Min.X, y):][:bounds.Dx()]
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return float64(count) / float64(total)
}
