// Package cvmat copies packed Go pixel buffers into gocv Mats and back.
//
// Everything except this file is compiled only with the gocv build tag. Rows
// are compacted on the way in, so sub-images and padded strides are safe, and
// Mat data is copied on the way out, so results never alias C memory.
package cvmat
