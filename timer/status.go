package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ayoisaiah/pomodoro/internal/timeutil"
)

// Status is the snapshot of a live timer written to disk so that other
// invocations can report on it.
type Status struct {
	UpdatedAt time.Time `json:"updated_at"`
	State
}

// Format returns seconds as "MM:SS".
func Format(secs int) string {
	return timeutil.Clock(secs)
}

// String renders the status the way `pomodoro status` prints it.
func (s Status) String() string {
	running := "paused"
	if s.Running {
		running = "running"
	}

	return fmt.Sprintf("[%s] %s (%s)", s.Mode.Label(), s.Clock(), running)
}

// staleAfter is how long a running timer may go without rewriting its status
// before the file is considered abandoned.
const staleAfter = 3 * TickPeriod

// Stale reports whether s describes a running timer that stopped updating,
// e.g. because the process that wrote it crashed. A paused timer only writes
// on change, so it is never stale.
func (s Status) Stale(now time.Time) bool {
	return s.Running && now.Sub(s.UpdatedAt) > staleAfter
}

// WriteStatus overwrites the status file at path with s.
func WriteStatus(path string, s State) error {
	b, err := json.Marshal(Status{
		State:     s,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// ReadStatus reads the status file at path. A missing file yields nil and no
// error.
func ReadStatus(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// RemoveStatus deletes the status file, ignoring a missing file.
func RemoveStatus(path string) error {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}
