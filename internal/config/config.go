// Package config holds defaultsctl configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables, e.g. DEFAULTSCTL_MANIFEST.
const EnvPrefix = "DEFAULTSCTL"

// Config is the resolved CLI configuration.
type Config struct {
	// Manifest is the asset manifest path. Empty selects the built-in one.
	Manifest string `mapstructure:"manifest"`

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string `mapstructure:"log_level"`

	// Strict makes check fail when any default asset is missing.
	Strict bool `mapstructure:"strict"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{}
}

// New returns a viper instance with defaults and environment binding set up.
// If file is non-empty it is read as the config file.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	d := Defaults()
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("strict", d.Strict)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}
	return v, nil
}

// Load decodes the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Level parses LogLevel. An empty LogLevel parses as info; check
// LoggingEnabled first.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return lvl, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return lvl, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// LoggingEnabled reports whether a log level is configured.
func (c Config) LoggingEnabled() bool {
	return c.LogLevel != ""
}
