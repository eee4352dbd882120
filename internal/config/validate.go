package config

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/pomodoro/internal/logger"
	"github.com/ayoisaiah/pomodoro/notify"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/timer"
)

// Validate performs validation checks on the Config struct and its fields.
// The store name is normalised to lower case.
func (c *Config) Validate() error {
	if _, err := timer.ParseMode(c.Timer.Mode); err != nil {
		return err
	}

	c.Settings.Store = strings.ToLower(strings.TrimSpace(c.Settings.Store))

	if !slices.Contains(store.Backends(), c.Settings.Store) {
		return errInvalidStore.Fmt(c.Settings.Store)
	}

	if err := notify.ValidateSound(c.Notifications.Sound); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// Mode returns the configured starting mode. It must only be called on a
// validated Config.
func (c *Config) Mode() timer.Mode {
	m, _ := timer.ParseMode(c.Timer.Mode)

	return m
}
