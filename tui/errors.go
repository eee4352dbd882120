package tui

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var errNotAttached = &apperr.Error{
	Message: "permission prompt is not attached to a running interface",
}
