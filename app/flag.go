package app

import "github.com/urfave/cli/v2"

var (
	modeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "The mode to start in: focus, short-break or long-break (default: focus)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification that appears when time is up",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command when time is up",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when time is up. Use 'bell', a path to an mp3, ogg, flac or wav file,\n\t\t\t\tor 'off' to disable sound",
	}

	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "Storage backend for the task list: bolt or sqlite (default: bolt)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the list as JSON",
	}

	plainFlag = &cli.BoolFlag{
		Name:  "plain",
		Usage: "Print the list as plain numbered lines",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "File format: json or yaml (default: from the file extension, or json)",
	}
)
