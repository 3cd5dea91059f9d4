package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/cursorfit/internal/grapheme"
	"github.com/iw2rmb/cursorfit/layout"
	"github.com/iw2rmb/cursorfit/litmus"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Layout LayoutConfig `mapstructure:"layout"`
	Litmus LitmusConfig `mapstructure:"litmus"`
	Log    LogConfig    `mapstructure:"log"`
}

type LayoutConfig struct {
	ViewportWidth int    `mapstructure:"viewport_width"`
	Margin        int    `mapstructure:"margin"`
	EllipsisMax   int    `mapstructure:"ellipsis_max"`
	Ellipsis      string `mapstructure:"ellipsis"`
	Marker        string `mapstructure:"marker"`
}

type LitmusConfig struct {
	Cursor       string `mapstructure:"cursor"`
	PrettyCursor string `mapstructure:"pretty_cursor"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func defaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			ViewportWidth: 10,
			Margin:        4,
			EllipsisMax:   3,
			Ellipsis:      ".",
			Marker:        " ",
		},
		Litmus: LitmusConfig{
			Cursor:       "|",
			PrettyCursor: "│",
		},
		Log: LogConfig{
			Level: "off",
		},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaultConfig()
}

// DefaultPath is the config file Load looks for first.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "cursorfit", "config.toml")
}

func (c *Config) settings() map[string]any {
	return map[string]any{
		"layout.viewport_width": c.Layout.ViewportWidth,
		"layout.margin":         c.Layout.Margin,
		"layout.ellipsis_max":   c.Layout.EllipsisMax,
		"layout.ellipsis":       c.Layout.Ellipsis,
		"layout.marker":         c.Layout.Marker,
		"litmus.cursor":         c.Litmus.Cursor,
		"litmus.pretty_cursor":  c.Litmus.PrettyCursor,
		"log.level":             c.Log.Level,
		"log.file":              c.Log.File,
	}
}

// Load reads configPath, or config.toml from ~/.config/cursorfit and the
// working directory when configPath is empty. A missing file is not an
// error. CURSORFIT_* environment variables override file values, e.g.
// CURSORFIT_LAYOUT_MARGIN.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	for key, val := range defaultConfig().settings() {
		v.SetDefault(key, val)
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CURSORFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	config.Log.File = expandPath(config.Log.File)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks that sizes are non-negative and that every drawn marker
// is a single grapheme cluster.
func (c *Config) Validate() error {
	if c.Layout.ViewportWidth < 0 || c.Layout.Margin < 0 || c.Layout.EllipsisMax < 0 {
		return fmt.Errorf("%w: layout sizes must not be negative", ErrInvalid)
	}
	units := map[string]string{
		"layout.ellipsis":      c.Layout.Ellipsis,
		"layout.marker":        c.Layout.Marker,
		"litmus.cursor":        c.Litmus.Cursor,
		"litmus.pretty_cursor": c.Litmus.PrettyCursor,
	}
	for key, val := range units {
		if n := len(grapheme.Split(val)); n != 1 {
			return fmt.Errorf("%w: %s must be one grapheme, got %q", ErrInvalid, key, val)
		}
	}
	return nil
}

// TruncateOptions returns the layout parameters.
func (c *Config) TruncateOptions() layout.TruncateOptions {
	return layout.TruncateOptions{
		ViewportWidth: c.Layout.ViewportWidth,
		Margin:        c.Layout.Margin,
		EllipsisMax:   c.Layout.EllipsisMax,
	}
}

// LitmusOptions returns drawing options for litmus input typed on the
// command line.
func (c *Config) LitmusOptions() litmus.Options {
	return litmus.Options{
		ViewportWidth: c.Layout.ViewportWidth,
		Margin:        c.Layout.Margin,
		EllipsisMax:   c.Layout.EllipsisMax,
		Marker:        c.Layout.Marker,
		Ellipsis:      c.Layout.Ellipsis,
		Cursor:        c.Litmus.Cursor,
	}
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	v := viper.New()

	v.Set("layout", map[string]any{
		"viewport_width": config.Layout.ViewportWidth,
		"margin":         config.Layout.Margin,
		"ellipsis_max":   config.Layout.EllipsisMax,
		"ellipsis":       config.Layout.Ellipsis,
		"marker":         config.Layout.Marker,
	})
	v.Set("litmus", map[string]any{
		"cursor":        config.Litmus.Cursor,
		"pretty_cursor": config.Litmus.PrettyCursor,
	})
	v.Set("log", map[string]any{
		"level": config.Log.Level,
		"file":  config.Log.File,
	})

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
