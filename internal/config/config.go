package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/kelp-detect/internal/imaging"
)

// DefaultImagePath is the input used when neither an argument nor KELP_IMAGE is given.
const DefaultImagePath = "kelp_picture/disease/6-1.JPG"

// Viewer backends.
const (
	ViewerFyne   = "fyne"
	ViewerOpenCV = "opencv"
)

// Config holds the settings of one run.
type Config struct {
	ImagePath string
	MaxHeight int
	Viewer    string
	LogLevel  string

	// CalibrationSource is the preset name or file the calibration came from.
	CalibrationSource string
	Calibration       Calibration
}

// Load builds a Config from the environment, falling back to defaults for
// anything unset. A malformed KELP_MAX_HEIGHT keeps the default.
func Load() (*Config, error) {
	cfg := &Config{
		ImagePath:         getEnv("KELP_IMAGE", DefaultImagePath),
		MaxHeight:         getEnvInt("KELP_MAX_HEIGHT", imaging.DefaultMaxHeight),
		Viewer:            strings.ToLower(getEnv("KELP_VIEWER", ViewerFyne)),
		LogLevel:          getEnv("KELP_LOG_LEVEL", "info"),
		CalibrationSource: getEnv("KELP_CALIBRATION", PresetDefault),
	}

	if cfg.Viewer != ViewerFyne && cfg.Viewer != ViewerOpenCV {
		return nil, fmt.Errorf("unknown viewer %q: want %q or %q", cfg.Viewer, ViewerFyne, ViewerOpenCV)
	}

	cal, err := resolveCalibration(cfg.CalibrationSource)
	if err != nil {
		return nil, err
	}
	cfg.Calibration = cal

	return cfg, nil
}

// resolveCalibration treats source as a preset name first, then as a file path.
func resolveCalibration(source string) (Calibration, error) {
	if c, err := Preset(source); err == nil {
		return c, nil
	}
	return LoadCalibration(source)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
