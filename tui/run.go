package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interface and blocks until the user quits or ctx is
// cancelled. If requester is not nil it is attached to the program for the
// duration of the call.
func Run(ctx context.Context, opts Options, requester *PromptRequester) error {
	var p *tea.Program

	m := New(opts, func(msg tea.Msg) {
		p.Send(msg)
	})

	p = tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())

	if requester != nil {
		requester.attach(p.Send)
		defer requester.attach(nil)
	}

	m.writeStatus()

	_, err := p.Run()

	m.shutdown()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}

	return err
}
