//go:build gocv

package detection

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/ironsheep/kelp-detect/internal/cvmat"
)

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
	contours := make([]Contour, 0)

	mat, err := cvmat.FromGray(mask)
	if err != nil {
		return contours
	}
	defer mat.Close()

	found := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	origin := mask.Bounds().Min
	for i := 0; i < found.Size(); i++ {
		points := found.At(i).ToPoints()
		contour := make(Contour, len(points))
		for k, p := range points {
			contour[k] = p.Add(origin)
		}
		contours = append(contours, contour)
	}
	return contours
}
