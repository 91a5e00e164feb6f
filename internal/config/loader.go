package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NotFoundError reports an explicitly requested config file that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Loader resolves a Config from defaults, an optional file, GAUGE_*
// environment variables and bound flags, in increasing precedence.
type Loader struct {
	path     string
	explicit bool
	flags    *pflag.FlagSet
	viper    *viper.Viper
}

// NewLoader creates a loader. An empty path looks for gauge.yaml in Dir
// and tolerates its absence; a non-empty path must exist.
func NewLoader(path string) *Loader {
	return &Loader{
		path:     path,
		explicit: path != "",
		viper:    newViper(),
	}
}

// WithFlags binds the flags registered by RegisterFlags. Only flags the
// user changed override the file and environment.
func (l *Loader) WithFlags(fs *pflag.FlagSet) *Loader {
	l.flags = fs
	return l
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	d := DefaultConfig()
	v.SetDefault("bar.goal", d.Bar.Goal)
	v.SetDefault("bar.template", d.Bar.Template)
	v.SetDefault("bar.complete_template", d.Bar.CompleteTemplate)
	v.SetDefault("bar.clear_on_complete", d.Bar.ClearOnComplete)
	v.SetDefault("bar.glyphs", d.Bar.Glyphs)
	v.SetDefault("bar.width_min", d.Bar.WidthMin)
	v.SetDefault("bar.width_max", d.Bar.WidthMax)
	v.SetDefault("render.columns", d.Render.Columns)
	v.SetDefault("render.min_update_interval", d.Render.MinUpdateInterval)
	v.SetDefault("render.display_always", d.Render.DisplayAlways)
	v.SetDefault("render.hide_cursor", d.Render.HideCursor)
	v.SetDefault("render.clear_on_complete", d.Render.ClearOnComplete)
	v.SetDefault("render.dynamic_update_height", d.Render.DynamicUpdateHeight)
	v.SetDefault("render.dynamic_complete_height", d.Render.DynamicCompleteHeight)
	v.SetDefault("logging.file_enabled", *d.Logging.FileEnabled)
	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.compress", d.Logging.Compress)
	return v
}

// Path returns the file the loader reads, resolving the default location
// when none was given.
func (l *Loader) Path() (string, error) {
	if l.path != "" {
		return l.path, nil
	}
	return DefaultPath()
}

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	path, err := l.Path()
	if err != nil && l.explicit {
		return nil, err
	}

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			l.viper.SetConfigFile(path)
			if err := l.viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		case os.IsNotExist(statErr) && l.explicit:
			return nil, &NotFoundError{Path: path}
		case !os.IsNotExist(statErr):
			return nil, fmt.Errorf("failed to stat config file: %w", statErr)
		}
	}

	if l.flags != nil {
		if err := bindFlags(l.viper, l.flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// ConfigFileUsed returns the file Load read, or "" when none was found.
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}
