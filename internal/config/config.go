// Package config loads and saves user preferences from a single YAML file.
// Loading merges the file over defaults and validates the result; a missing
// file yields the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Validation errors.
var (
	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidInterval indicates a non-positive duration setting.
	ErrInvalidInterval = errors.New("interval must be positive")

	// ErrInvalidKeyframeDuration indicates a non-positive minimum keyframe duration.
	ErrInvalidKeyframeDuration = errors.New("minimum keyframe duration must be positive")
)

// Config is the user preferences file.
type Config struct {
	// LogLevel is the minimum log severity: debug, info, warn, or error.
	LogLevel string `yaml:"log_level"`

	// RecentFiles lists recently opened sheet paths, most recent first.
	RecentFiles []string `yaml:"recent_files"`

	// MaxRecentFiles caps the recent file list.
	MaxRecentFiles int `yaml:"max_recent_files"`

	// AutosaveInterval is how often unsaved documents are written to their
	// autosave location.
	AutosaveInterval time.Duration `yaml:"autosave_interval"`

	// MinimumKeyframeDurationMillis is the floor duration drags clamp to.
	MinimumKeyframeDurationMillis int `yaml:"minimum_keyframe_duration_millis"`

	// TextureRefreshPeriod is how often the texture cache reconciles its
	// entries against the referenced frame paths.
	TextureRefreshPeriod time.Duration `yaml:"texture_refresh_period"`
}

// Default returns the built-in preferences.
func Default() Config {
	return Config{
		LogLevel:                      "info",
		MaxRecentFiles:                10,
		AutosaveInterval:              30 * time.Second,
		MinimumKeyframeDurationMillis: 20,
		TextureRefreshPeriod:          2 * time.Second,
	}
}

// Load reads the preferences at path, merged over defaults. A missing file
// is not an error; it returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate checks the preferences for out-of-range values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	if c.AutosaveInterval <= 0 || c.TextureRefreshPeriod <= 0 {
		return ErrInvalidInterval
	}
	if c.MinimumKeyframeDurationMillis <= 0 {
		return ErrInvalidKeyframeDuration
	}
	if c.MaxRecentFiles < 0 {
		return fmt.Errorf("max_recent_files must not be negative")
	}
	return nil
}

// Save writes the preferences to path, creating parent directories.
func (c Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// AddRecentFile promotes path to the front of the recent list, trimming to
// the configured cap.
func (c *Config) AddRecentFile(path string) {
	recent := make([]string, 0, len(c.RecentFiles)+1)
	recent = append(recent, path)
	for _, existing := range c.RecentFiles {
		if existing != path {
			recent = append(recent, existing)
		}
	}
	if c.MaxRecentFiles > 0 && len(recent) > c.MaxRecentFiles {
		recent = recent[:c.MaxRecentFiles]
	}
	c.RecentFiles = recent
}
