// Package config loads pomodoro's settings from the config file and
// command-line flags
package config

import (
	"fmt"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		Log           LogConfig          `mapstructure:"log"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// TimerConfig holds countdown settings.
	TimerConfig struct {
		Mode string `mapstructure:"mode"`
	}

	// NotificationConfig holds completion alert settings.
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		Cmd   string `mapstructure:"cmd"`
		Store string `mapstructure:"store"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// CLIConfig holds values that only come from the command line.
	CLIConfig struct {
		ConfigPath string
		NoColor    bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.1.0"

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return cfg, nil
}
