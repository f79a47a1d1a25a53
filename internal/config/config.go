// Package config provides configuration management for abstracta.
//
// The config file holds editor preferences and the location of the document
// library. Documents themselves live in the database or in plain files.
//
// Config file locations (priority order):
//  1. $ABSTRACTA_CONFIG
//  2. ./abstracta.yaml
//  3. ~/.config/abstracta/config.yaml
//  4. /etc/abstracta/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"abstracta/internal/domain"
	"abstracta/internal/geometry"
	"abstracta/internal/model"
	"abstracta/internal/view"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDatabasePath is where the document library lives unless configured
	DefaultDatabasePath = "./abstracta.db"
	// DefaultDebounce is how long the watcher waits for writes to settle
	DefaultDebounce = 100 * time.Millisecond
)

// ErrInvalid is returned by Validate for unusable settings
var ErrInvalid = errors.New("invalid config")

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Editor.GridSize == 0 {
		c.Editor.GridSize = view.DefaultGridSize
	}
	if c.Editor.Viewport.Width == 0 {
		c.Editor.Viewport.Width = view.DefaultWidth
	}
	if c.Editor.Viewport.Height == 0 {
		c.Editor.Viewport.Height = view.DefaultHeight
	}
	if c.Editor.ArrowLength == 0 {
		c.Editor.ArrowLength = geometry.DefaultArrowLength
	}
	if c.Outer.Width == 0 {
		c.Outer.Width = model.DefaultOuterWidth
	}
	if c.Outer.Height == 0 {
		c.Outer.Height = model.DefaultOuterHeight
	}
	if c.Outer.Gap == 0 {
		c.Outer.Gap = model.DefaultOuterGap
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = Duration(DefaultDebounce)
	}
}

// Validate rejects negative sizes and durations
func (c *Config) Validate() error {
	switch {
	case c.Editor.GridSize < 0:
		return fmt.Errorf("%w: editor.grid_size must not be negative", ErrInvalid)
	case c.Editor.Viewport.Width < 0 || c.Editor.Viewport.Height < 0:
		return fmt.Errorf("%w: editor.viewport must not be negative", ErrInvalid)
	case c.Editor.ArrowLength < 0:
		return fmt.Errorf("%w: editor.arrow_length must not be negative", ErrInvalid)
	case c.Outer.Width < 0 || c.Outer.Height < 0 || c.Outer.Gap < 0:
		return fmt.Errorf("%w: outer box must not be negative", ErrInvalid)
	case c.Watch.Debounce < 0:
		return fmt.Errorf("%w: watch.debounce must not be negative", ErrInvalid)
	}
	return nil
}

// ViewSettings returns the settings a view is created with
func (c *Config) ViewSettings() view.Settings {
	return view.Settings{
		GridSize:     c.Editor.GridSize,
		ViewportSize: domain.Size{W: c.Editor.Viewport.Width, H: c.Editor.Viewport.Height},
	}
}

// ModelOptions returns the options a model is created with
func (c *Config) ModelOptions() []model.Option {
	return []model.Option{
		model.WithOuterBox(domain.Size{W: c.Outer.Width, H: c.Outer.Height}, c.Outer.Gap),
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Grid: %g, Viewport: %gx%g, Arrow: %g\n",
		c.Editor.GridSize, c.Editor.Viewport.Width, c.Editor.Viewport.Height, c.Editor.ArrowLength)
	summary += fmt.Sprintf("Outer box: %gx%g gap %g\n", c.Outer.Width, c.Outer.Height, c.Outer.Gap)
	summary += fmt.Sprintf("Database: %s, Watch debounce: %s", c.Database.Path, c.Watch.Debounce.Duration())
	return summary
}
