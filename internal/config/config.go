package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/user/xyplot_go/internal/logging"
)

// Input files are named FilePrefix + suffix + FileExtension in the working directory.
const (
	FilePrefix    = "data"
	FileExtension = ".txt"
)

// Environment variables read by FromEnv.
const (
	EnvViewer   = "XYPLOT_VIEWER"
	EnvRenderer = "XYPLOT_RENDERER"
	EnvWidth    = "XYPLOT_WIDTH"
	EnvHeight   = "XYPLOT_HEIGHT"
	EnvLogLevel = "XYPLOT_LOG_LEVEL"
)

// ErrUsage is returned when more than one positional argument is given.
var ErrUsage = errors.New("usage: xyplot [suffix]")

// Config holds the presentation settings of a run.
type Config struct {
	// Viewer selects the window backend: fyne, wails or none
	Viewer string

	// Renderer selects the plotting backend: gonum or gochart
	Renderer string

	// Width and Height are the chart size in pixels
	Width  int
	Height int

	LogLevel slog.Level
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Viewer:   "fyne",
		Renderer: "gonum",
		Width:    800,
		Height:   600,
		LogLevel: slog.LevelInfo,
	}
}

// FromEnv overlays DefaultConfig with the variables found through getenv.
// Unset or empty variables keep their defaults.
func FromEnv(getenv func(key string) string) (*Config, error) {
	cfg := DefaultConfig()

	if v := strings.TrimSpace(getenv(EnvViewer)); v != "" {
		cfg.Viewer = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvRenderer)); v != "" {
		cfg.Renderer = strings.ToLower(v)
	}

	var err error
	if cfg.Width, err = positiveInt(getenv, EnvWidth, cfg.Width); err != nil {
		return nil, err
	}
	if cfg.Height, err = positiveInt(getenv, EnvHeight, cfg.Height); err != nil {
		return nil, err
	}
	if cfg.LogLevel, err = logging.ParseLevel(getenv(EnvLogLevel)); err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

// SuffixFromArgs returns the filename suffix selected by the positional
// arguments (program name excluded): empty for none, the argument verbatim
// for one, ErrUsage for more.
func SuffixFromArgs(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", ErrUsage
	}
}

// FileName returns the input file name for suffix.
func FileName(suffix string) string {
	return FilePrefix + suffix + FileExtension
}
