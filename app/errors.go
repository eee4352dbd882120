package app

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errInvalidTaskNumber = &apperr.Error{
		Message: "invalid task number: %s (must be a whole number from 1)",
	}

	errTaskNumberRequired = &apperr.Error{
		Message: "exactly one task number is required",
	}

	errEmptyTask = &apperr.Error{
		Message: "task text is required",
	}

	errImportFileRequired = &apperr.Error{
		Message: "a file to import from is required",
	}
)
