// Package segment turns an HSV buffer into cleaned binary masks.
//
// A mask is an *image.Gray whose pixels are either 0 (background) or 255
// (foreground). Threshold builds a mask from an inclusive HSV box, and the
// morphology operators (Erode, Dilate, Open, Close) clean it with a
// rectangular structuring element.
//
// # Border Handling
//
// Pixels outside the image never constrain erosion and never contribute to
// dilation, so a foreground region touching the image edge is not eaten away
// from that edge.
package segment
