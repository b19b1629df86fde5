// Package config loads mazesolve settings from YAML.
//
// Example file:
//
//	color: auto          # auto | always | never
//	algorithms: [bfs, dfs]
//	sample_path: sample_maze.txt
//	log:
//	  level: info        # debug | info | warn | error
//	  json: false
//	symbols:
//	  wall: "#"
//	  open: "."
//	  start: "S"
//	  goal: "G"
//	  path: "*"
//
// Fields missing from the file keep their Default values.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/gridgraph"
	"github.com/katalvlaran/mazepath/logging"
)

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Algorithm names accepted in Algorithms.
const (
	AlgoBFS = "bfs"
	AlgoDFS = "dfs"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid setting")

// Config is the full mazesolve configuration.
type Config struct {
	Color      string   `yaml:"color"`
	Algorithms []string `yaml:"algorithms"`
	SamplePath string   `yaml:"sample_path"`
	Log        Log      `yaml:"log"`
	Symbols    Symbols  `yaml:"symbols"`
}

// Log configures the run logger.
type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Symbols are the single-character glyphs used to draw a maze.
type Symbols struct {
	Wall  string `yaml:"wall"`
	Open  string `yaml:"open"`
	Start string `yaml:"start"`
	Goal  string `yaml:"goal"`
	Path  string `yaml:"path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Color:      ColorAuto,
		Algorithms: []string{AlgoBFS, AlgoDFS},
		SamplePath: gridgraph.SampleFileName,
		Log:        Log{Level: "info"},
		Symbols: Symbols{
			Wall:  "#",
			Open:  ".",
			Start: "S",
			Goal:  "G",
			Path:  "*",
		},
	}
}

// Load reads path over Default and validates the result.
// An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks colour mode, algorithm names (each at most once), log
// level and symbols.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalid, c.Color)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: algorithms must not be empty", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Algorithms))
	for _, a := range c.Algorithms {
		if a != AlgoBFS && a != AlgoDFS {
			return fmt.Errorf("%w: algorithm %q (want bfs or dfs)", ErrInvalid, a)
		}
		if seen[a] {
			return fmt.Errorf("%w: algorithm %q listed twice", ErrInvalid, a)
		}
		seen[a] = true
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	glyphs := map[string]string{
		"wall": c.Symbols.Wall, "open": c.Symbols.Open, "start": c.Symbols.Start,
		"goal": c.Symbols.Goal, "path": c.Symbols.Path,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("%w: symbol %s must be one character, got %q", ErrInvalid, name, g)
		}
	}

	return nil
}

// LoggerConfig converts the log section into a logging.Config.
// Validate must have accepted the level.
func (c Config) LoggerConfig() logging.Config {
	lvl, _ := logging.ParseLevel(c.Log.Level)

	return logging.Config{Level: lvl, JSON: c.Log.JSON, Service: "mazesolve"}
}
