// Package config loads eigen2x2 run settings from a JSON or YAML file and
// merges them with command-line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/eigen2x2/matrix"
)

// Defaults applied by Resolve.
const (
	DefaultPlotSize    = 5.0 // inches
	DefaultSupersample = 3
	DefaultLogLevel    = "info"
)

var (
	// ErrUnknownFormat is returned by Load for extensions other than .json, .yaml and .yml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrBadLevel indicates a log_level slog cannot parse.
	ErrBadLevel = errors.New("config: bad log level")
)

// Config holds all run settings.
type Config struct {
	// Matrix lists A00, A01, A10, A11. Empty means prompt on stdin.
	Matrix []float64 `json:"matrix,omitempty" yaml:"matrix,omitempty"`

	// Randomness
	Seed          int64 `json:"seed" yaml:"seed"`
	Deterministic bool  `json:"deterministic" yaml:"deterministic"`

	// Output
	Verify      bool    `json:"verify" yaml:"verify"`
	Plot        string  `json:"plot,omitempty" yaml:"plot,omitempty"`
	HTML        string  `json:"html,omitempty" yaml:"html,omitempty"`
	PlotSize    float64 `json:"plot_size" yaml:"plot_size"`
	Supersample int     `json:"supersample" yaml:"supersample"`

	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Load reads a config file; the decoder is picked by extension.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values leave the file setting alone.
type Flags struct {
	Matrix        []float64
	Seed          int64
	Deterministic bool
	Verify        bool
	Plot          string
	HTML          string
	LogLevel      string
}

// Resolve applies flag overrides, then fills defaults.
func (c *Config) Resolve(flags Flags) {
	if len(flags.Matrix) > 0 {
		c.Matrix = flags.Matrix
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Deterministic {
		c.Deterministic = true
	}
	if flags.Verify {
		c.Verify = true
	}
	if flags.Plot != "" {
		c.Plot = flags.Plot
	}
	if flags.HTML != "" {
		c.HTML = flags.HTML
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.PlotSize <= 0 {
		c.PlotSize = DefaultPlotSize
	}
	if c.Supersample <= 0 {
		c.Supersample = DefaultSupersample
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Input returns the configured matrix. ok is false when none is set.
func (c Config) Input() (m matrix.Matrix2x2, ok bool, err error) {
	if len(c.Matrix) == 0 {
		return matrix.Matrix2x2{}, false, nil
	}
	m, err = matrix.FromEntries(c.Matrix)
	if err != nil {
		return matrix.Matrix2x2{}, false, fmt.Errorf("config: matrix: %w", err)
	}

	return m, true, nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: %q", ErrBadLevel, c.LogLevel)
	}

	return l, nil
}
