package store

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	// ErrAlreadyRunning is returned when another process holds the database.
	ErrAlreadyRunning = &apperr.Error{
		Message: "is pomodoro already running? Only one instance can be active at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown store backend: %s (must be bolt or sqlite)",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open the database",
	}
)
