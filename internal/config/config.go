// SPDX-License-Identifier: MIT

// Package config loads gamekit settings.
//
// Sources are layered by viper, lowest priority first:
//
//	built-in defaults
//	YAML file (optional, --config)
//	GAMEKIT_* environment, dots become underscores (GAMEKIT_LOG_LEVEL)
//	command-line flags that were explicitly set
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gamekit/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GAMEKIT"

// Defaults.
const (
	DefaultMaxStrategies = 10
	DefaultLogLevel      = "info"
	DefaultAddr          = ":8080"
)

// Flag names registered by BindFlags, mapped to their config keys.
var flagKeys = map[string]string{
	"max-strategies":  "analysis.max_strategies",
	"log-level":       "log.level",
	"log-development": "log.development",
	"addr":            "http.addr",
	"metrics":         "metrics.enabled",
}

// ErrInvalid marks a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the full gamekit configuration.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	HTTP     HTTPConfig     `mapstructure:"http" yaml:"http"`
	Metrics  MetricsConfig  `mapstructure:"metrics" yaml:"metrics"`
}

// AnalysisConfig tunes the prediction engine.
type AnalysisConfig struct {
	// MaxStrategies caps the predictions entering one game.
	MaxStrategies int `mapstructure:"max_strategies" yaml:"max_strategies"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// MetricsConfig toggles the /metrics endpoint and solver instrumentation.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analysis: AnalysisConfig{MaxStrategies: DefaultMaxStrategies},
		Log:      LogConfig{Level: DefaultLogLevel},
		HTTP:     HTTPConfig{Addr: DefaultAddr},
		Metrics:  MetricsConfig{Enabled: true},
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.Analysis.MaxStrategies < 1 {
		return fmt.Errorf("%w: analysis.max_strategies must be >= 1, got %d",
			ErrInvalid, c.Analysis.MaxStrategies)
	}
	if err := logging.ValidateLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("%w: http.addr must not be empty", ErrInvalid)
	}

	return nil
}

// BindFlags registers the configuration flags on fs with the defaults as
// their values.
func BindFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("max-strategies", d.Analysis.MaxStrategies, "maximum predictions per game")
	fs.String("log-level", d.Log.Level, "log level: trace, debug, info, warn, error")
	fs.Bool("log-development", d.Log.Development, "human-readable console logs")
	fs.String("addr", d.HTTP.Addr, "HTTP listen address")
	fs.Bool("metrics", d.Metrics.Enabled, "expose Prometheus metrics")
}

// Load layers defaults, the optional YAML file at path, the environment and
// the flags in fs (may be nil), then validates the result.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("load config: read %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("load config: bind --%s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("analysis.max_strategies", d.Analysis.MaxStrategies)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}
