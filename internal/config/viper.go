package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/pomodoro/internal/osutil"
)

const (
	keyTimerMode            = "timer.mode"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keySessionCmd           = "settings.cmd"
	keyStore                = "settings.store"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the file at
// configPath. The file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		c.CLI.ConfigPath = configPath

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return errReadConfig.Wrap(err)
		}

		if err := os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission); err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTimerMode, "focus")
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsSound, "bell")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyStore, "bolt")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogLevel, "info")
}
