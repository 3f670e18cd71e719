// Package imaging provides the image-level stages of the kelp detection pipeline.
//
// This package loads photographs into an 8-bit working buffer, bounds that
// buffer to a display height, and converts it into the HSV representation used
// for hue-based segmentation. All operations work with standard Go image types
// and use a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Working Buffer
//
// Every decoded image is normalised to an opaque *image.RGBA. Alpha channels in
// the source file are discarded, straight (non-premultiplied) colour values are
// kept. Downstream stages index the Pix slice directly and assume A == 255.
//
// # HSV Convention
//
// HSV values follow the 8-bit convention common to computer vision libraries:
//   - H: 0-180 (degrees divided by two, rounded)
//   - S: 0-255 (chroma divided by value)
//   - V: 0-255 (maximum component)
//
// # Error Handling
//
// Only loading can fail. Load returns an error wrapping ErrDecodeFailed when the
// path does not exist, cannot be read, or is not a decodable raster image. Resize
// and conversion are total over any working buffer.
package imaging
