package timer

import (
	"strings"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/timeutil"
)

// Mode identifies one of the fixed countdown configurations.
type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "short-break"
	LongBreak  Mode = "long-break"
)

var durations = map[Mode]time.Duration{
	Focus:      25 * time.Minute,
	ShortBreak: 5 * time.Minute,
	LongBreak:  15 * time.Minute,
}

var labels = map[Mode]string{
	Focus:      "Focus",
	ShortBreak: "Short break",
	LongBreak:  "Long break",
}

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{Focus, ShortBreak, LongBreak}
}

// ParseMode converts a mode identifier to a Mode. "pomodoro" and "work" are
// accepted as aliases for focus.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Focus, "pomodoro", "work":
		return Focus, nil
	case ShortBreak, LongBreak:
		return m, nil
	}

	return "", errUnknownMode.Fmt(s)
}

// Duration returns the configured countdown length for the mode.
func (m Mode) Duration() time.Duration {
	return durations[m]
}

// Seconds returns the configured countdown length in whole seconds.
func (m Mode) Seconds() int {
	return timeutil.Seconds(durations[m])
}

// Label is the human readable name of the mode.
func (m Mode) Label() string {
	return labels[m]
}

func (m Mode) String() string {
	return string(m)
}
