package timer

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var errUnknownMode = &apperr.Error{
	Message: "unknown mode: %s (must be focus, short-break, or long-break)",
}
