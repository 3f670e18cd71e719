// Package detection extracts and renders the regions found in a binary mask.
//
// This package finds the outer boundaries of connected foreground regions,
// strokes them onto a copy of the working buffer, and isolates the pixels a
// mask selects. It's designed for the output stage of the kelp pipeline, where
// the diseased mask is outlined on the photograph.
//
// # Contour Extraction
//
// FindExternalContours follows the outer border of every 8-connected
// foreground component that is not nested inside a hole of another component:
//
//  1. Background Marking: Flood the background 4-connected from the image frame
//  2. Component Finding: Flood-fill each foreground component in raster order
//  3. Filtering: Skip components that never touch the outer background
//  4. Border Following: Trace the outer border from the component's first pixel
//  5. Compression: Keep only the end points of straight runs
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Contour points are pixel centres of boundary pixels
//
// # Ordering
//
// Contours are returned in the order the raster scan reaches their first
// pixel. That order is an artefact of the scan and carries no meaning; callers
// should treat the result as a set.
package detection
