// Package config reads and writes the demo's TOML configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the demo configuration.
type Config struct {
	// Seed drives the random rectangles and colours; zero picks one per run.
	Seed   uint64 `toml:"seed"`
	Canvas Canvas `toml:"canvas"`
	Output Output `toml:"output"`
	Labels Labels `toml:"labels"`
	Theme  Theme  `toml:"theme"`
	Scene  Scene  `toml:"scene"`
	// Panels is a directory of YAML/JSON panel documents. Empty uses the
	// built-in panels.
	Panels string `toml:"panels"`
}

// Canvas sizes the drawing buffer as display size times multiplier.
type Canvas struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Multiplier float64 `toml:"multiplier"`
}

// Output names the files the demo writes. Empty paths are skipped.
type Output struct {
	PNG  string `toml:"png"`
	HTML string `toml:"html"`
}

// Labels configures display-name localisation.
type Labels struct {
	// Query holds key=value pairs in URL query form, e.g. "ui-x=Horizontal".
	Query    string                       `toml:"query"`
	Locale   string                       `toml:"locale"`
	Fallback string                       `toml:"fallback"`
	Catalogs map[string]map[string]string `toml:"catalogs"`
}

// Scene is the initial state of the translated rectangle.
type Scene struct {
	X       float64 `toml:"x"`
	Y       float64 `toml:"y"`
	Outline bool    `toml:"outline"`
	Palette int     `toml:"palette"`
}

// Theme feeds the HTML page theming.
type Theme struct {
	Name    string            `toml:"name"`
	Variant string            `toml:"variant"`
	Tokens  map[string]string `toml:"tokens"`
	CSSVars map[string]string `toml:"css_vars"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 400, Height: 300, Multiplier: 1},
		Output: Output{PNG: "rectangles.png", HTML: "controls.html"},
		Labels: Labels{Fallback: "en"},
		Theme:  Theme{Name: "default", Variant: "light"},
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Write encodes cfg to path, creating the parent directory.
func Write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks the canvas dimensions.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Multiplier < 0 {
		return fmt.Errorf("%w: canvas multiplier %v", ErrInvalid, c.Canvas.Multiplier)
	}
	return nil
}
