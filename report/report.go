// Package report prints user-facing errors
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with status 1.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
