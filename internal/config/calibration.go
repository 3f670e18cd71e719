package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/kelp-detect/internal/detection"
	"github.com/ironsheep/kelp-detect/internal/segment"
)

// ErrInvalidCalibration is returned when a calibration cannot be used.
var ErrInvalidCalibration = errors.New("invalid calibration")

// Calibration holds the tunable parameters of one segmentation run.
type Calibration struct {
	Diseased         segment.Range  `json:"diseased"`
	Healthy          segment.Range  `json:"healthy"`
	Kernel           segment.Kernel `json:"kernel"`
	OutlineColor     color.RGBA     `json:"outline_color"`
	OutlineThickness int            `json:"outline_thickness"`

	// DenoiseHealthy also runs open/close on the healthy mask. The reference
	// calibration cleans only the diseased mask.
	DenoiseHealthy bool `json:"denoise_healthy"`
}

// Preset names.
const (
	PresetDefault   = "default"
	PresetAlternate = "alternate"
)

var presets = map[string]Calibration{
	PresetDefault: {
		Diseased:         segment.NewRange([3]uint8{29, 50, 51}, [3]uint8{105, 211, 178}),
		Healthy:          segment.NewRange([3]uint8{0, 0, 0}, [3]uint8{29, 254, 208}),
		Kernel:           segment.DefaultKernel,
		OutlineColor:     detection.OutlineColor,
		OutlineThickness: detection.OutlineThickness,
	},
	PresetAlternate: {
		Diseased:         segment.NewRange([3]uint8{30, 25, 12}, [3]uint8{108, 234, 136}),
		Healthy:          segment.NewRange([3]uint8{0, 30, 40}, [3]uint8{31, 254, 130}),
		Kernel:           segment.DefaultKernel,
		OutlineColor:     detection.OutlineColor,
		OutlineThickness: detection.OutlineThickness,
	},
}

// DefaultCalibration returns the reference calibration.
func DefaultCalibration() Calibration {
	return presets[PresetDefault]
}

// Preset returns the named built-in calibration.
func Preset(name string) (Calibration, error) {
	c, ok := presets[name]
	if !ok {
		return Calibration{}, fmt.Errorf("%w: unknown preset %q (have %v)", ErrInvalidCalibration, name, PresetNames())
	}
	return c, nil
}

// PresetNames lists the built-in calibrations in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks both ranges, the kernel and the outline thickness.
func (c Calibration) Validate() error {
	if err := c.Diseased.Validate(); err != nil {
		return fmt.Errorf("diseased range: %w", err)
	}
	if err := c.Healthy.Validate(); err != nil {
		return fmt.Errorf("healthy range: %w", err)
	}
	if c.Kernel.Width < 1 || c.Kernel.Height < 1 {
		return fmt.Errorf("%w: kernel %dx%d", ErrInvalidCalibration, c.Kernel.Width, c.Kernel.Height)
	}
	if c.OutlineThickness < 1 {
		return fmt.Errorf("%w: outline thickness %d", ErrInvalidCalibration, c.OutlineThickness)
	}
	return nil
}

type rangeFile struct {
	Lower *[3]int `yaml:"lower"`
	Upper *[3]int `yaml:"upper"`
}

type kernelFile struct {
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

type outlineFile struct {
	Color     *[3]int `yaml:"color"`
	Thickness *int    `yaml:"thickness"`
}

type calibrationFile struct {
	Preset         string       `yaml:"preset"`
	Diseased       *rangeFile   `yaml:"diseased"`
	Healthy        *rangeFile   `yaml:"healthy"`
	Kernel         *kernelFile  `yaml:"kernel"`
	Outline        *outlineFile `yaml:"outline"`
	DenoiseHealthy *bool        `yaml:"denoise_healthy"`
}

// LoadCalibration reads a YAML calibration file.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, fmt.Errorf("failed to read calibration: %w", err)
	}
	c, err := ParseCalibration(data)
	if err != nil {
		return Calibration{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCalibration decodes a YAML calibration document.
//
// The document starts from the preset it names, or the default preset, and
// overrides whatever keys it sets. Unknown keys are rejected. The result is
// validated before it is returned.
func ParseCalibration(data []byte) (Calibration, error) {
	var f calibrationFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Calibration{}, fmt.Errorf("%w: %w", ErrInvalidCalibration, err)
	}

	base := PresetDefault
	if f.Preset != "" {
		base = f.Preset
	}
	c, err := Preset(base)
	if err != nil {
		return Calibration{}, err
	}

	if err := applyRange(&c.Diseased, f.Diseased, "diseased"); err != nil {
		return Calibration{}, err
	}
	if err := applyRange(&c.Healthy, f.Healthy, "healthy"); err != nil {
		return Calibration{}, err
	}
	if f.Kernel != nil {
		if f.Kernel.Width != nil {
			c.Kernel.Width = *f.Kernel.Width
		}
		if f.Kernel.Height != nil {
			c.Kernel.Height = *f.Kernel.Height
		}
	}
	if f.Outline != nil {
		if f.Outline.Color != nil {
			rgb, err := toBytes(*f.Outline.Color, "outline.color")
			if err != nil {
				return Calibration{}, err
			}
			c.OutlineColor = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
		}
		if f.Outline.Thickness != nil {
			c.OutlineThickness = *f.Outline.Thickness
		}
	}
	if f.DenoiseHealthy != nil {
		c.DenoiseHealthy = *f.DenoiseHealthy
	}

	if err := c.Validate(); err != nil {
		return Calibration{}, err
	}
	return c, nil
}

func applyRange(dst *segment.Range, src *rangeFile, name string) error {
	if src == nil {
		return nil
	}
	lower := [3]uint8{dst.Lower.H, dst.Lower.S, dst.Lower.V}
	upper := [3]uint8{dst.Upper.H, dst.Upper.S, dst.Upper.V}
	var err error
	if src.Lower != nil {
		if lower, err = toBytes(*src.Lower, name+".lower"); err != nil {
			return err
		}
	}
	if src.Upper != nil {
		if upper, err = toBytes(*src.Upper, name+".upper"); err != nil {
			return err
		}
	}
	*dst = segment.NewRange(lower, upper)
	return nil
}

func toBytes(v [3]int, field string) ([3]uint8, error) {
	var out [3]uint8
	for i, n := range v {
		if n < 0 || n > 255 {
			return out, fmt.Errorf("%w: %s[%d] = %d outside 0-255", ErrInvalidCalibration, field, i, n)
		}
		out[i] = uint8(n)
	}
	return out, nil
}
