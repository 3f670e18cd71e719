// Package pipeline runs the kelp disease detection stages in order.
//
// A Detector carries one calibration and runs:
//
//  1. Load: decode the photograph (imaging.Load)
//  2. Normalize: bound the height for display (imaging.FitHeight)
//  3. Convert: RGB to 8-bit HSV (imaging.ToHSV)
//  4. Threshold: one mask per tissue class (segment.Threshold)
//  5. Denoise: open then close the diseased mask (segment.Denoise)
//  6. Contours: outer borders of the diseased regions (detection.FindExternalContours)
//  7. Render: isolate each class and outline the disease (detection.ApplyMask, detection.DrawContours)
//
// Every intermediate buffer is returned in a Result, so the stages can be
// checked without a display. Result.Panels gives the four views the viewer
// shows.
package pipeline
