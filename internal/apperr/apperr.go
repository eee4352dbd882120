// Package apperr defines the error type used across pomodoro for errors that
// are reported to the user
package apperr

import (
	"errors"
	"fmt"
)

// Error is a user-facing error. Message may contain fmt verbs which are
// filled in with Fmt.
type Error struct {
	Cause   error
	Message string

	// tmpl points at the sentinel this error was derived from
	tmpl *Error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the sentinel e was derived from, so that
// errors.Is keeps working after Fmt or Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return e.template() == t.template()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Cause:   e.Cause,
		tmpl:    e.template(),
	}
}

// Wrap returns a copy of the error that carries err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   err,
		tmpl:    e.template(),
	}
}

func (e *Error) template() *Error {
	if e.tmpl != nil {
		return e.tmpl
	}

	return e
}
