// Package config loads the tooltip host configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all host configuration.
type Config struct {
	Tooltip  TooltipConfig   `yaml:"tooltip"`
	Toolbar  []ButtonConfig  `yaml:"toolbar"`
	Triggers []TriggerConfig `yaml:"triggers"`
	Logging  LoggingConfig   `yaml:"logging"`
}

// TooltipConfig describes the single static tooltip.
type TooltipConfig struct {
	Content        string `yaml:"content"`
	MaxWidth       int    `yaml:"max_width"`        // content columns before wrapping
	DismissOnLeave bool   `yaml:"dismiss_on_leave"` // hide when the pointer leaves trigger+tooltip
}

// ButtonConfig is a toolbar button that carries the tooltip.
type ButtonConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// TriggerConfig is a free-standing trigger on the canvas. Negative X or Y
// are measured from the right or bottom edge of the canvas.
type TriggerConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	W     int    `yaml:"w"` // 0 = label width + 2
	H     int    `yaml:"h"` // 0 = 1
}

// LoggingConfig configures the zap logger. An empty File disables logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
	File   string `yaml:"file"`
}

const defaultContent = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
	"Nullam consectetur quam a sapien egestas eget scelerisque lectus tempor. " +
	"Duis placerat tellus at erat pellentesque nec ultricies erat molestie."

// Default returns the built-in configuration: the entity toolbar buttons
// plus one trigger in each corner and one in the middle.
func Default() *Config {
	return &Config{
		Tooltip: TooltipConfig{
			Content:        defaultContent,
			MaxWidth:       36,
			DismissOnLeave: true,
		},
		Toolbar: []ButtonConfig{
			{ID: "new", Label: "New"},
			{ID: "save", Label: "Save"},
			{ID: "saveas", Label: "Save as"},
			{ID: "delete", Label: "Delete"},
		},
		Triggers: []TriggerConfig{
			{ID: "top-left", Label: "top-left", X: 1, Y: 0},
			{ID: "top-right", Label: "top-right", X: -12, Y: 0},
			{ID: "center", Label: "center", X: 30, Y: 8},
			{ID: "bottom-left", Label: "bottom-left", X: 1, Y: -1},
			{ID: "bottom-right", Label: "bottom-right", X: -15, Y: -1},
		},
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads a YAML file on top of Default, then applies environment
// overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv overrides logging settings from TIPPLACE_LOG_FILE and
// TIPPLACE_LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TIPPLACE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("TIPPLACE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration for values the host cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Tooltip.Content) == "" {
		return fmt.Errorf("%w: tooltip.content is empty", ErrInvalid)
	}
	if c.Tooltip.MaxWidth < 4 {
		return fmt.Errorf("%w: tooltip.max_width must be at least 4, got %d", ErrInvalid, c.Tooltip.MaxWidth)
	}

	seen := make(map[string]bool)
	for _, b := range c.Toolbar {
		if b.ID == "" || b.Label == "" {
			return fmt.Errorf("%w: toolbar button needs id and label", ErrInvalid)
		}
		if seen[b.ID] {
			return fmt.Errorf("%w: duplicate trigger id %q", ErrInvalid, b.ID)
		}
		seen[b.ID] = true
	}
	for _, t := range c.Triggers {
		if t.ID == "" || t.Label == "" {
			return fmt.Errorf("%w: trigger needs id and label", ErrInvalid)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate trigger id %q", ErrInvalid, t.ID)
		}
		if t.W < 0 || t.H < 0 {
			return fmt.Errorf("%w: trigger %q has negative size", ErrInvalid, t.ID)
		}
		seen[t.ID] = true
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}
