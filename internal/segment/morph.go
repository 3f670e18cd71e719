package segment

import (
	"image"
)

// Kernel is a rectangular, all-ones structuring element anchored at its centre.
type Kernel struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultKernel is the 5x5 square used to denoise masks.
var DefaultKernel = Kernel{Width: 5, Height: 5}

// Open is erosion followed by dilation. It strips foreground specks smaller
// than the kernel while leaving larger regions in place.
func Open(mask *image.Gray, k Kernel) *image.Gray {
	return Dilate(Erode(mask, k), k)
}

// Close is dilation followed by erosion. It fills background holes smaller
// than the kernel inside foreground regions.
func Close(mask *image.Gray, k Kernel) *image.Gray {
	return Erode(Dilate(mask, k), k)
}

// Denoise opens then closes a mask with the same kernel.
func Denoise(mask *image.Gray, k Kernel) *image.Gray {
	return Close(Open(mask, k), k)
}
