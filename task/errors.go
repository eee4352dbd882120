package task

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	// ErrTaskNotFound is returned for positions outside the list. Positions in
	// the message are 1-based.
	ErrTaskNotFound = &apperr.Error{
		Message: "task %d does not exist",
	}

	errPersist = &apperr.Error{
		Message: "unable to save tasks",
	}

	errUnknownFormat = &apperr.Error{
		Message: "unknown format: %s (must be json or yaml)",
	}

	errDecode = &apperr.Error{
		Message: "unable to read tasks",
	}
)
