/*
Package config
File: config.go
Description:
    Application configuration. Values come from, in increasing priority:
    built-in defaults, an optional YAML file, a .env file, UMAMI_*
    environment variables and command-line flags bound by cmd.
*/

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable (UMAMI_PORT, ...).
const EnvPrefix = "UMAMI"

// Keys, shared by the YAML file, environment and flag bindings.
const (
	KeyPort         = "port"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyEnvironment  = "environment"
	KeyTickInterval = "tick_interval"
	KeySeed         = "seed"
	KeyHistorySize  = "history_size"
	KeyHistoryTTL   = "history_ttl"
)

// Config holds the application configuration
type Config struct {
	Port         int           `mapstructure:"port" validate:"min=1,max=65535"`
	LogLevel     string        `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat    string        `mapstructure:"log_format" validate:"oneof=json text"`
	Environment  string        `mapstructure:"environment" validate:"required"`
	TickInterval time.Duration `mapstructure:"tick_interval" validate:"gt=0"` // One countdown second
	Seed         int64         `mapstructure:"seed"`                          // 0 = seed from the clock
	HistorySize  int           `mapstructure:"history_size" validate:"min=1"`
	HistoryTTL   time.Duration `mapstructure:"history_ttl" validate:"gt=0"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyEnvironment, "dev")
	v.SetDefault(KeyTickInterval, time.Second)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyHistorySize, 100)
	v.SetDefault(KeyHistoryTTL, 24*time.Hour)
}

// Load reads the configuration into a Config. v may be nil; cmd passes
// its own instance so bound flags take part. cfgFile is optional.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	// 1. Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	// 2. Defaults, environment, optional file
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 3. Decode, parsing "1s" style durations
	var cfg Config
	decoderConfigOption := viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			dc.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
		)
	})
	if err := v.Unmarshal(&cfg, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	// 4. Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed on %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether source locations should be logged.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
