package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomodoro/notify"
)

// PromptRequester implements notify.Requester by asking inside the running
// interface.
type PromptRequester struct {
	send func(tea.Msg)
	mu   sync.Mutex
}

// NewPromptRequester returns a requester that is not yet attached to a
// program. Requests fail until it is.
func NewPromptRequester() *PromptRequester {
	return &PromptRequester{}
}

func (r *PromptRequester) attach(send func(tea.Msg)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.send = send
}

// RequestPermission shows the prompt and blocks until it is answered or ctx
// is done.
func (r *PromptRequester) RequestPermission(
	ctx context.Context,
) (notify.Permission, error) {
	r.mu.Lock()
	send := r.send
	r.mu.Unlock()

	if send == nil {
		return notify.Default, errNotAttached
	}

	reply := make(chan notify.Permission, 1)

	send(permissionPromptMsg{reply: reply})

	select {
	case p := <-reply:
		return p, nil
	case <-ctx.Done():
		return notify.Default, ctx.Err()
	}
}
