package main

import (
	"os"

	"github.com/ayoisaiah/pomodoro/app"
	"github.com/ayoisaiah/pomodoro/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
