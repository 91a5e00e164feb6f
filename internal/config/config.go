// Package config loads gauge settings from gauge.yaml, GAUGE_* environment
// variables and command-line flags, and maps them onto progress options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schmitthub/gauge/internal/logger"
	"github.com/schmitthub/gauge/pkg/progress"
)

const (
	// FileName is the configuration file name.
	FileName = "gauge.yaml"
	// EnvPrefix prefixes every environment override, e.g. GAUGE_BAR_WIDTH_MAX.
	EnvPrefix = "GAUGE"
	// DirEnv overrides the configuration directory.
	DirEnv = "GAUGE_CONFIG_DIR"
	// LogsSubdir is the default log directory under the configuration directory.
	LogsSubdir = "logs"
)

// Config is the full gauge configuration.
type Config struct {
	Bar     BarConfig     `mapstructure:"bar" yaml:"bar"`
	Render  RenderConfig  `mapstructure:"render" yaml:"render"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BarConfig holds per-line defaults.
type BarConfig struct {
	Goal     float64 `mapstructure:"goal" yaml:"goal"`
	Template string  `mapstructure:"template" yaml:"template"`
	// CompleteTemplate replaces Template once a line completes. Empty keeps Template.
	CompleteTemplate string `mapstructure:"complete_template" yaml:"complete_template"`
	ClearOnComplete  bool   `mapstructure:"clear_on_complete" yaml:"clear_on_complete"`
	Glyphs           string `mapstructure:"glyphs" yaml:"glyphs"`
	WidthMin         int    `mapstructure:"width_min" yaml:"width_min"`
	WidthMax         int    `mapstructure:"width_max" yaml:"width_max"`
}

// RenderConfig holds session-wide rendering settings.
type RenderConfig struct {
	// Columns pins the terminal width; 0 detects it.
	Columns               int           `mapstructure:"columns" yaml:"columns"`
	MinUpdateInterval     time.Duration `mapstructure:"min_update_interval" yaml:"min_update_interval"`
	DisplayAlways         bool          `mapstructure:"display_always" yaml:"display_always"`
	HideCursor            bool          `mapstructure:"hide_cursor" yaml:"hide_cursor"`
	ClearOnComplete       bool          `mapstructure:"clear_on_complete" yaml:"clear_on_complete"`
	DynamicUpdateHeight   bool          `mapstructure:"dynamic_update_height" yaml:"dynamic_update_height"`
	DynamicCompleteHeight bool          `mapstructure:"dynamic_complete_height" yaml:"dynamic_complete_height"`
}

// MarshalYAML writes the interval in its human form ("20ms").
func (r RenderConfig) MarshalYAML() (any, error) {
	return struct {
		Columns               int    `yaml:"columns"`
		MinUpdateInterval     string `yaml:"min_update_interval"`
		DisplayAlways         bool   `yaml:"display_always"`
		HideCursor            bool   `yaml:"hide_cursor"`
		ClearOnComplete       bool   `yaml:"clear_on_complete"`
		DynamicUpdateHeight   bool   `yaml:"dynamic_update_height"`
		DynamicCompleteHeight bool   `yaml:"dynamic_complete_height"`
	}{
		r.Columns, r.MinUpdateInterval.String(), r.DisplayAlways, r.HideCursor,
		r.ClearOnComplete, r.DynamicUpdateHeight, r.DynamicCompleteHeight,
	}, nil
}

// LoggingConfig configures the rotating log file.
type LoggingConfig struct {
	FileEnabled *bool  `mapstructure:"file_enabled" yaml:"file_enabled"`
	Dir         string `mapstructure:"dir" yaml:"dir,omitempty"`
	MaxSizeMB   int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxAgeDays  int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	enabled := true
	return &Config{
		Bar: BarConfig{
			Goal:     progress.DefaultGoal,
			Template: progress.DefaultProgressTemplate,
			Glyphs:   "classic",
			WidthMin: progress.DefaultWidthMin,
			WidthMax: progress.DefaultWidthMax,
		},
		Render: RenderConfig{
			MinUpdateInterval: progress.DefaultMinUpdateInterval,
		},
		Logging: LoggingConfig{
			FileEnabled: &enabled,
			MaxSizeMB:   10,
			MaxAgeDays:  7,
			MaxBackups:  3,
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Bar.Goal < 0:
		return fmt.Errorf("bar.goal must not be negative, got %v", c.Bar.Goal)
	case c.Bar.WidthMin < 0:
		return fmt.Errorf("bar.width_min must not be negative, got %d", c.Bar.WidthMin)
	case c.Bar.WidthMax < 0:
		return fmt.Errorf("bar.width_max must not be negative, got %d", c.Bar.WidthMax)
	case c.Bar.Template == "":
		return fmt.Errorf("bar.template must not be empty")
	case c.Render.Columns < 0:
		return fmt.Errorf("render.columns must not be negative, got %d", c.Render.Columns)
	case c.Logging.MaxSizeMB < 0 || c.Logging.MaxAgeDays < 0 || c.Logging.MaxBackups < 0:
		return fmt.Errorf("logging rotation limits must not be negative")
	}
	return nil
}

// ProgressOptions maps the configuration onto session options, drawing
// bars with glyphs.
func (c *Config) ProgressOptions(glyphs progress.Glyphs) progress.Options {
	defaults := []progress.LineOption{
		progress.WithGoal(c.Bar.Goal),
		progress.WithTemplate(c.Bar.Template),
		progress.WithWidth(c.Bar.WidthMin, c.Bar.WidthMax),
		progress.WithGlyphs(glyphs),
	}
	if c.Bar.CompleteTemplate != "" {
		defaults = append(defaults, progress.WithCompleteTemplate(c.Bar.CompleteTemplate))
	}
	if c.Bar.ClearOnComplete {
		defaults = append(defaults, progress.WithClearOnComplete(true))
	}

	// a zero interval means "every frame" in the config file
	interval := c.Render.MinUpdateInterval
	if interval == 0 {
		interval = -1
	}

	return progress.Options{
		Columns:               c.Render.Columns,
		MinUpdateInterval:     interval,
		DisplayAlways:         c.Render.DisplayAlways,
		HideCursor:            c.Render.HideCursor,
		ClearAllOnComplete:    c.Render.ClearOnComplete,
		DynamicUpdateHeight:   c.Render.DynamicUpdateHeight,
		DynamicCompleteHeight: c.Render.DynamicCompleteHeight,
		Defaults:              defaults,
	}
}

// Dir returns the configuration directory: $GAUGE_CONFIG_DIR, or
// gauge under the user configuration directory.
func Dir() (string, error) {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(base, "gauge"), nil
}

// DefaultPath returns the path of gauge.yaml in Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// LogsDir returns the log directory: logging.dir when set, otherwise
// logs under Dir.
func (c *Config) LogsDir() (string, error) {
	if c.Logging.Dir != "" {
		return c.Logging.Dir, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogsSubdir), nil
}

// LoggerConfig converts the logging section for logger.InitWithFile.
func (c *Config) LoggerConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: c.Logging.FileEnabled,
		MaxSizeMB:   c.Logging.MaxSizeMB,
		MaxAgeDays:  c.Logging.MaxAgeDays,
		MaxBackups:  c.Logging.MaxBackups,
		Compress:    c.Logging.Compress,
	}
}
