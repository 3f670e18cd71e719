// Package config resolves the run settings of kelp-detect.
//
// Settings come from environment variables with built-in defaults. The
// segmentation calibration (HSV ranges, kernel, outline style) is either one of
// the named presets or a YAML file; keys missing from the file keep the value
// of the preset the file starts from.
//
// # Environment
//
//   - KELP_IMAGE: input image path used when no argument is given
//   - KELP_CALIBRATION: preset name ("default", "alternate") or YAML file path
//   - KELP_VIEWER: "fyne" or "opencv"
//   - KELP_MAX_HEIGHT: display height bound in pixels
//   - KELP_LOG_LEVEL: logrus level name
//
// # Calibration File
//
//	preset: alternate
//	diseased:
//	  lower: [29, 50, 51]
//	  upper: [105, 211, 178]
//	healthy:
//	  lower: [0, 0, 0]
//	  upper: [29, 254, 208]
//	kernel: {width: 5, height: 5}
//	outline: {color: [255, 0, 0], thickness: 2}
//	denoise_healthy: false
package config
