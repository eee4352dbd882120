// Package logger configures the default structured logger. Logs are written to
// a rotated file in the data directory because the terminal belongs to the
// timer interface.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

var errInvalidLevel = &apperr.Error{
	Message: "invalid log level: %s (must be debug, info, warn, or error)",
}

// ParseLevel converts a level name from the config file to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, errInvalidLevel.Fmt(s)
}

// New returns a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Init installs a file backed logger as the slog default. The returned closer
// releases the log file.
func Init(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	slog.SetDefault(New(w, lvl))

	return w, nil
}
