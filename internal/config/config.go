// Package config manages application configuration using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Colour modes for report output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultDebounce is the watch debounce used when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// Config represents the application configuration.
type Config struct {
	Summary SummaryConfig `mapstructure:"summary"`
	Watch   WatchConfig   `mapstructure:"watch"`
}

// SummaryConfig represents report settings.
type SummaryConfig struct {
	Color           string `mapstructure:"color"`
	FailOnReadError bool   `mapstructure:"fail_on_read_error"`
}

// WatchConfig represents watch mode settings.
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// ColorMode returns the normalised colour mode. Unknown values mean auto.
func (s SummaryConfig) ColorMode() string {
	switch mode := strings.ToLower(strings.TrimSpace(s.Color)); mode {
	case ColorAlways, ColorNever:
		return mode
	default:
		return ColorAuto
	}
}

// Debounce returns the configured debounce, or DefaultDebounce if unset.
func (w WatchConfig) Debounce() time.Duration {
	if w.DebounceMS <= 0 {
		return DefaultDebounce
	}
	return time.Duration(w.DebounceMS) * time.Millisecond
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Summary: SummaryConfig{Color: ColorAuto},
		Watch:   WatchConfig{DebounceMS: int(DefaultDebounce / time.Millisecond)},
	}
}

// Load loads configuration from files and environment variables.
// It searches for config files in the following order:
// 1. /etc/lint-summary/config.{toml,yaml,yml}
// 2. $XDG_CONFIG_HOME/lint-summary/config.{toml,yaml,yml} (or ~/.config/lint-summary/)
// 3. ./config.{toml,yaml,yml}
//
// Environment variables override file settings using the prefix LINT_SUMMARY_
// For example: LINT_SUMMARY_SUMMARY_FAIL_ON_READ_ERROR
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")

	v.AddConfigPath("/etc/lint-summary/")
	v.AddConfigPath(getXDGConfigPath())
	v.AddConfigPath(".")

	v.SetEnvPrefix("LINT_SUMMARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance.
// Defaults are registered on v so environment overrides resolve without BindEnv.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("summary.color", d.Summary.Color)
	v.SetDefault("summary.fail_on_read_error", d.Summary.FailOnReadError)
	v.SetDefault("watch.debounce_ms", d.Watch.DebounceMS)
}

// getXDGConfigPath returns the XDG config directory for lint-summary.
func getXDGConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "lint-summary")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home
		return "."
	}

	return filepath.Join(homeDir, ".config", "lint-summary")
}
