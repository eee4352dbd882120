package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Mode          string
	Sound         string
	SessionCmd    string
	Store         string
	DisableNotify bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Mode:          ctx.String("mode"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			Store:         ctx.String("store"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions overrides file values with the flags that were set.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Mode != "" {
		c.Timer.Mode = opts.Mode
	}

	if opts.Sound != "" {
		c.Notifications.Sound = opts.Sound
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Store != "" {
		c.Settings.Store = opts.Store
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	c.CLI.NoColor = opts.NoColor
}
