package config

import "github.com/ayoisaiah/pomodoro/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	// ErrValidation is returned by New when the loaded values are invalid.
	ErrValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidStore = &apperr.Error{
		Message: "invalid store: %s (must be bolt or sqlite)",
	}
)
