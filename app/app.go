// Package app defines the pomodoro command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomodoro app instance.
func Get() *cli.App {
	pomodoroApp := &cli.App{
		Name: "pomodoro",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Pomodoro is a focus timer with a task list for the command-line. It counts
		down a 25 minute focus period or a short or long break, alerts you when
		time is up, and keeps a to-do list between runs.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
			taskCommand(),
		},
		Flags: []cli.Flag{
			modeFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			storeFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return pomodoroApp
}

func taskCommand() *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage the task list",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a task to the end of the list",
				ArgsUsage: "<text>",
				Action:    withTasks(addTaskAction),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Print the task list",
				Flags:   []cli.Flag{jsonFlag, plainFlag},
				Action:  withTasks(listTasksAction),
			},
			{
				Name:      "toggle",
				Usage:     "Mark a task as done or not done",
				ArgsUsage: "<n>",
				Action:    withTasks(toggleTaskAction),
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete a task",
				ArgsUsage: "<n>",
				Action:    withTasks(deleteTaskAction),
			},
			{
				Name:   "clear",
				Usage:  "Delete all completed tasks",
				Flags:  []cli.Flag{yesFlag},
				Action: withTasks(clearTasksAction),
			},
			{
				Name:      "export",
				Usage:     "Write the task list to stdout or a file",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{formatFlag},
				Action:    withTasks(exportTasksAction),
			},
			{
				Name:      "import",
				Usage:     "Replace the task list with the contents of a file",
				ArgsUsage: "<file>",
				Flags:     []cli.Flag{formatFlag},
				Action:    withTasks(importTasksAction),
			},
		},
	}
}
