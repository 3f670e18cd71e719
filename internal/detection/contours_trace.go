//go:build !gocv

package detection

import "image"

// neighbours lists the 8-neighbourhood counterclockwise on screen, starting east.
var neighbours = [8]image.Point{
	{X: 1, Y: 0},   // E
	{X: 1, Y: -1},  // NE
	{X: 0, Y: -1},  // N
	{X: -1, Y: -1}, // NW
	{X: -1, Y: 0},  // W
	{X: -1, Y: 1},  // SW
	{X: 0, Y: 1},   // S
	{X: 1, Y: 1},   // SE
}

const west = 4

// binaryGrid is a mask flattened to booleans with zero-based coordinates.
type binaryGrid struct {
	width, height int
	fg            []bool
}

func newBinaryGrid(mask *image.Gray) *binaryGrid {
	bounds := mask.Bounds()
	g := &binaryGrid{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		fg:     make([]bool, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < g.height; y++ {
		row := mask.Pix[mask.PixOffset(bounds.Min.X, bounds.Min.Y+y):][:g.width]
		for x, v := range row {
			g.fg[y*g.width+x] = v != 0
		}
	}
	return g
}

func (g *binaryGrid) in(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// at reports whether (x, y) is foreground. Pixels outside the grid are background.
func (g *binaryGrid) at(x, y int) bool {
	return g.in(x, y) && g.fg[y*g.width+x]
}

// FindExternalContours finds the outer boundary of each foreground region of a mask.
//
// Parameters:
//   - mask: Binary mask; any non-zero pixel is foreground.
//
// Returns the compressed outer contour of every 8-connected foreground
// component that is reachable from the image frame through background, in
// mask coordinates. Components lying inside a hole of another component are
// not reported. An empty mask yields an empty slice.
//
// # Compression
//
// Horizontal, vertical and diagonal runs are reduced to their end points, so
// an axis-aligned filled rectangle has exactly four points, its corners.
func FindExternalContours(mask *image.Gray) []Contour {
	bounds := mask.Bounds()
	grid := newBinaryGrid(mask)
	outer := outerBackground(grid)
	visited := make([]bool, len(grid.fg))

	contours := make([]Contour, 0)
	for y := 0; y < grid.height; y++ {
		for x := 0; x < grid.width; x++ {
			i := y*grid.width + x
			if !grid.fg[i] || visited[i] {
				continue
			}

			// The first raster hit of a component is its top-left pixel,
			// whose west neighbour is background.
			if !floodFill(grid, visited, outer, x, y) {
				continue
			}

			contour := compress(traceBorder(grid, image.Pt(x, y)))
			for k := range contour {
				contour[k] = contour[k].Add(bounds.Min)
			}
			contours = append(contours, contour)
		}
	}

	return contours
}

// outerBackground marks background pixels 4-connected to the image frame.
func outerBackground(g *binaryGrid) []bool {
	outer := make([]bool, len(g.fg))
	stack := make([]image.Point, 0, 2*(g.width+g.height))

	push := func(x, y int) {
		if !g.in(x, y) {
			return
		}
		i := y*g.width + x
		if g.fg[i] || outer[i] {
			return
		}
		outer[i] = true
		stack = append(stack, image.Pt(x, y))
	}

	for x := 0; x < g.width; x++ {
		push(x, 0)
		push(x, g.height-1)
	}
	for y := 0; y < g.height; y++ {
		push(0, y)
		push(g.width-1, y)
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		push(p.X+1, p.Y)
		push(p.X-1, p.Y)
		push(p.X, p.Y+1)
		push(p.X, p.Y-1)
	}

	return outer
}

// floodFill marks the 8-connected component containing (startX, startY) as
// visited and reports whether any of its pixels touches the outer background
// or the image frame.
//
// Uses a stack-based approach (not recursive) to avoid stack overflow
// on large regions.
func floodFill(g *binaryGrid, visited, outer []bool, startX, startY int) bool {
	external := false
	stack := []image.Point{{X: startX, Y: startY}}
	visited[startY*g.width+startX] = true

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !external {
			for _, d := range [4]image.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}} {
				nx, ny := p.X+d.X, p.Y+d.Y
				if !g.in(nx, ny) || outer[ny*g.width+nx] {
					external = true
					break
				}
			}
		}

		for _, d := range neighbours {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.at(nx, ny) {
				continue
			}
			i := ny*g.width + nx
			if visited[i] {
				continue
			}
			visited[i] = true
			stack = append(stack, image.Pt(nx, ny))
		}
	}

	return external
}

// traceBorder follows the outer border of the component whose top-left pixel
// is start and returns every boundary pixel in order (counterclockwise on
// screen, starting downwards).
func traceBorder(g *binaryGrid, start image.Point) []image.Point {
	// Search clockwise from the west neighbour for the first foreground pixel.
	first := -1
	for k := 0; k < 8; k++ {
		d := (west - k + 8) % 8
		n := start.Add(neighbours[d])
		if g.at(n.X, n.Y) {
			first = d
			break
		}
	}
	if first < 0 {
		return []image.Point{start}
	}
	p1 := start.Add(neighbours[first])

	points := make([]image.Point, 0, 64)
	cur := start
	back := first // direction from cur to the previously examined neighbour
	limit := 4*len(g.fg) + 8

	for step := 0; step < limit; step++ {
		// Examine counterclockwise, starting just past the previous pixel.
		next, dir := cur, back
		for k := 1; k <= 8; k++ {
			d := (back + k) % 8
			n := cur.Add(neighbours[d])
			if g.at(n.X, n.Y) {
				next, dir = n, d
				break
			}
		}

		points = append(points, cur)
		if next == start && cur == p1 {
			break
		}
		back = (dir + 4) % 8
		cur = next
	}

	return points
}

// compress drops boundary points that continue a straight run, keeping the
// points where the chain changes direction.
func compress(points []image.Point) Contour {
	n := len(points)
	if n <= 2 {
		return Contour(append([]image.Point(nil), points...))
	}

	out := make(Contour, 0, n/4+4)
	for i, p := range points {
		prev := points[(i-1+n)%n]
		next := points[(i+1)%n]
		if p.Sub(prev) != next.Sub(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, points[0])
	}
	return out
}
