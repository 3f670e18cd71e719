package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/kelp-detect/internal/config"
	"github.com/ironsheep/kelp-detect/internal/display"
	"github.com/ironsheep/kelp-detect/internal/imaging"
	"github.com/ironsheep/kelp-detect/internal/pipeline"
)

// AppID is the fyne application identifier.
const AppID = "com.ironsheep.kelp-detect"

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("kelp-detect %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return 0
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return 0
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kelp-detect: %v\n", err)
		return 1
	}

	logger := initLogger(cfg.LogLevel, os.Stderr)
	logger.WithFields(logrus.Fields{
		"version":     Version,
		"calibration": cfg.CalibrationSource,
		"viewer":      cfg.Viewer,
	}).Debug("Starting kelp-detect")

	if len(args) > 0 && args[0] == "sample" {
		return sample(cfg, args[1:])
	}
	if len(args) > 0 {
		cfg.ImagePath = args[0]
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel, logger)

	det, err := pipeline.New(cfg.Calibration, cfg.MaxHeight, logger)
	if err != nil {
		logger.WithError(err).Error("Invalid calibration")
		return 1
	}

	res, err := det.Run(ctx, cfg.ImagePath)
	if errors.Is(err, imaging.ErrDecodeFailed) {
		logger.WithError(err).WithField("path", cfg.ImagePath).Error("Could not read image")
		return 0
	}
	if err != nil {
		logger.WithError(err).Error("Detection stopped")
		return 1
	}

	s := res.Summary()
	logger.WithFields(logrus.Fields{
		"run":               s.RunID,
		"width":             s.Width,
		"height":            s.Height,
		"regions":           len(s.Regions),
		"diseased_coverage": s.DiseasedCoverage,
		"healthy_coverage":  s.HealthyCoverage,
	}).Info("Detection complete")

	viewer, err := newViewer(cfg.Viewer, logger)
	if err != nil {
		logger.WithError(err).Error("Viewer unavailable")
		return 1
	}
	if err := viewer.Show(ctx, res.Panels()); err != nil && !errors.Is(err, context.Canceled) {
		logger.WithError(err).Error("Display failed")
		return 1
	}

	logger.Debug("Shutting down")
	return 0
}

func newViewer(kind string, logger logrus.FieldLogger) (display.Viewer, error) {
	if kind == config.ViewerOpenCV {
		return display.NewOpenCV(logger)
	}
	return display.NewFyne(app.NewWithID(AppID), logger), nil
}

// sample prints the HSV value at x,y of the normalized working buffer, and
// which calibrated ranges contain it.
func sample(cfg *config.Config, args []string) int {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: kelp-detect sample <image-path> <x> <y>")
		return 1
	}
	x, errX := strconv.Atoi(args[1])
	y, errY := strconv.Atoi(args[2])
	if errX != nil || errY != nil {
		fmt.Fprintln(os.Stderr, "kelp-detect: x and y must be integers")
		return 1
	}

	img, err := imaging.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "kelp-detect: %v\n", err)
		return 1
	}
	img, _ = imaging.FitHeight(img, cfg.MaxHeight)

	c, err := imaging.SampleHSV(img, x, y)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kelp-detect: %v\n", err)
		return 1
	}
	fmt.Printf("%s at (%d,%d): diseased=%t healthy=%t\n", c, x, y,
		cfg.Calibration.Diseased.Contains(c), cfg.Calibration.Healthy.Contains(c))
	return 0
}

// initLogger configures logrus on out. Debug output uses the text
// formatter; other levels log JSON. An unknown level falls back to info.
func initLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	if lvl >= logrus.DebugLevel {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	}

	if err != nil {
		logger.WithField("level", level).Warn("Unknown log level, using info")
	}
	return logger
}

func setupSignalHandling(cancel context.CancelFunc, logger logrus.FieldLogger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.WithField("signal", sig.String()).Info("Shutdown signal received")
		cancel()
	}()
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "kelp-detect - outline diseased tissue in kelp seedling photographs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kelp-detect [image-path]")
	fmt.Fprintln(w, "  kelp-detect sample <image-path> <x> <y>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintf(w, "  KELP_IMAGE=<path>                  Input image (default %s)\n", config.DefaultImagePath)
	fmt.Fprintf(w, "  KELP_CALIBRATION=<preset|file>     Calibration preset %v or YAML file\n", config.PresetNames())
	fmt.Fprintln(w, "  KELP_VIEWER=fyne|opencv            Display backend (opencv needs -tags gocv)")
	fmt.Fprintf(w, "  KELP_MAX_HEIGHT=<pixels>           Display height bound (default %d)\n", imaging.DefaultMaxHeight)
	fmt.Fprintln(w, "  KELP_LOG_LEVEL=debug               Enable debug logging")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Four windows open after detection; press any key in one of them to exit.")
}
