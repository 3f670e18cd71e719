package detection

import (
	"image"
	"sort"
	"testing"
)

// createMask creates a mask with the given rectangles set to 255
func createMask(width, height int, rects ...image.Rectangle) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, width, height))
	fillRects(mask, 255, rects...)
	return mask
}

func fillRects(mask *image.Gray, v uint8, rects ...image.Rectangle) {
	for _, r := range rects {
		r = r.Intersect(mask.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				mask.Pix[mask.PixOffset(x, y)] = v
			}
		}
	}
}

// contourBounds returns the bounds of every contour, sorted, so results can
// be compared as a set.
func contourBounds(contours []Contour) []image.Rectangle {
	out := make([]image.Rectangle, 0, len(contours))
	for _, c := range contours {
		out = append(out, c.Bounds())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Min.Y != out[j].Min.Y {
			return out[i].Min.Y < out[j].Min.Y
		}
		return out[i].Min.X < out[j].Min.X
	})
	return out
}

func samePointSet(a, b []image.Point) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[image.Point]int)
	for _, p := range a {
		seen[p]++
	}
	for _, p := range b {
		seen[p]--
		if seen[p] < 0 {
			return false
		}
	}
	return true
}

func TestFindExternalContours_Empty(t *testing.T) {
	contours := FindExternalContours(createMask(50, 50))
	if len(contours) != 0 {
		t.Errorf("expected no contours, got %d", len(contours))
	}
}

func TestFindExternalContours_Rectangle(t *testing.T) {
	mask := createMask(100, 100, image.Rect(10, 10, 30, 30))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}

	c := contours[0]
	want := []image.Point{{10, 10}, {10, 29}, {29, 29}, {29, 10}}
	if !samePointSet(c, want) {
		t.Errorf("corners: got %v, want %v", c, want)
	}
	if c.Bounds() != image.Rect(10, 10, 30, 30) {
		t.Errorf("Bounds: got %v, want (10,10)-(30,30)", c.Bounds())
	}
	if c.Area() != 361 {
		t.Errorf("Area: got %v, want 361", c.Area())
	}
}

func TestFindExternalContours_MultipleRegions(t *testing.T) {
	rects := []image.Rectangle{
		image.Rect(5, 5, 15, 15),
		image.Rect(50, 10, 70, 20),
		image.Rect(20, 60, 40, 90),
	}
	mask := createMask(100, 100, rects...)

	got := contourBounds(FindExternalContours(mask))
	want := contourBounds([]Contour{
		{rects[0].Min, rects[0].Max.Sub(image.Pt(1, 1))},
		{rects[1].Min, rects[1].Max.Sub(image.Pt(1, 1))},
		{rects[2].Min, rects[2].Max.Sub(image.Pt(1, 1))},
	})

	if len(got) != len(want) {
		t.Fatalf("expected %d contours, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("contour %d bounds: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindExternalContours_SinglePixel(t *testing.T) {
	mask := createMask(10, 10, image.Rect(4, 6, 5, 7))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if len(contours[0]) != 1 || contours[0][0] != image.Pt(4, 6) {
		t.Errorf("single pixel contour: got %v", contours[0])
	}
}

func TestFindExternalContours_HorizontalLine(t *testing.T) {
	mask := createMask(10, 10, image.Rect(2, 3, 7, 4))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if !samePointSet(contours[0], []image.Point{{2, 3}, {6, 3}}) {
		t.Errorf("line contour: got %v", contours[0])
	}
}

func TestFindExternalContours_DiagonalConnectivity(t *testing.T) {
	// Pixels touching only at corners form one 8-connected region.
	mask := createMask(10, 10)
	for i := 0; i < 5; i++ {
		mask.Pix[mask.PixOffset(i, i)] = 255
	}

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if !samePointSet(contours[0], []image.Point{{0, 0}, {4, 4}}) {
		t.Errorf("diagonal contour: got %v", contours[0])
	}
}

func TestFindExternalContours_IgnoresNestedRegions(t *testing.T) {
	// A ring with a block inside its hole: only the ring's outer border counts.
	mask := createMask(100, 100, image.Rect(20, 20, 60, 60))
	fillRects(mask, 0, image.Rect(25, 25, 55, 55))
	fillRects(mask, 255, image.Rect(35, 35, 45, 45))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	want := []image.Point{{20, 20}, {20, 59}, {59, 59}, {59, 20}}
	if !samePointSet(contours[0], want) {
		t.Errorf("ring contour: got %v, want %v", contours[0], want)
	}
}

func TestFindExternalContours_TouchingBorder(t *testing.T) {
	mask := createMask(40, 30, image.Rect(0, 0, 40, 10), image.Rect(30, 20, 40, 30))

	got := contourBounds(FindExternalContours(mask))
	want := []image.Rectangle{image.Rect(0, 0, 40, 10), image.Rect(30, 20, 40, 30)}
	if len(got) != len(want) {
		t.Fatalf("expected %d contours, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("contour %d bounds: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindExternalContours_FullMask(t *testing.T) {
	mask := createMask(8, 6, image.Rect(0, 0, 8, 6))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if contours[0].Bounds() != mask.Bounds() {
		t.Errorf("Bounds: got %v, want %v", contours[0].Bounds(), mask.Bounds())
	}
}

func TestFindExternalContours_OffsetBounds(t *testing.T) {
	mask := image.NewGray(image.Rect(100, 50, 150, 90))
	fillRects(mask, 255, image.Rect(110, 60, 120, 70))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if contours[0].Bounds() != image.Rect(110, 60, 120, 70) {
		t.Errorf("Bounds: got %v, want (110,60)-(120,70)", contours[0].Bounds())
	}
}

func TestFindExternalContours_PointsOnBoundary(t *testing.T) {
	// Irregular blob: staircase plus a notch. Every contour point must be a
	// foreground pixel with a background 4-neighbour.
	mask := createMask(60, 60,
		image.Rect(10, 10, 30, 20),
		image.Rect(15, 20, 40, 30),
		image.Rect(20, 30, 50, 45),
	)
	fillRects(mask, 0, image.Rect(30, 35, 50, 38))

	contours := FindExternalContours(mask)
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}

	for _, p := range contours[0] {
		if mask.GrayAt(p.X, p.Y).Y == 0 {
			t.Errorf("contour point %v is background", p)
			continue
		}
		boundary := false
		for _, d := range []image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := p.Add(d)
			if !n.In(mask.Rect) || mask.GrayAt(n.X, n.Y).Y == 0 {
				boundary = true
			}
		}
		if !boundary {
			t.Errorf("contour point %v is interior", p)
		}
	}
	if contours[0].Bounds() != image.Rect(10, 10, 50, 45) {
		t.Errorf("Bounds: got %v, want (10,10)-(50,45)", contours[0].Bounds())
	}
}

func TestContour_BoundsEmpty(t *testing.T) {
	var c Contour
	if c.Bounds() != (image.Rectangle{}) {
		t.Errorf("empty contour bounds: got %v", c.Bounds())
	}
	if c.Area() != 0 {
		t.Errorf("empty contour area: got %v", c.Area())
	}
}
