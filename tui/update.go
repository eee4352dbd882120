package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/pomodoro/notify"
	"github.com/ayoisaiah/pomodoro/timer"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		// the engine is the source of truth; refreshes may arrive out of order
		m.state = m.engine.State()
		m.writeStatus()

		return m, nil

	case permissionPromptMsg:
		m.answer(notify.Default)
		m.prompt = msg.reply

		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil
	}

	slog.Debug("unhandled message", slog.String("msg", spew.Sdump(msg)))

	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		return m.handlePromptKey(msg)
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, defaultKeymap.start):
		m.engine.Start()
	case key.Matches(msg, defaultKeymap.pause):
		m.engine.Pause()
	case key.Matches(msg, defaultKeymap.reset):
		m.engine.Reset()
	case key.Matches(msg, defaultKeymap.focus):
		m.engine.SelectMode(timer.Focus)
	case key.Matches(msg, defaultKeymap.shortBreak):
		m.engine.SelectMode(timer.ShortBreak)
	case key.Matches(msg, defaultKeymap.longBreak):
		m.engine.SelectMode(timer.LongBreak)

	case key.Matches(msg, defaultKeymap.input):
		if m.tasks == nil {
			return m, nil
		}

		return m, m.input.Focus()

	case key.Matches(msg, defaultKeymap.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, defaultKeymap.down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, defaultKeymap.toggle):
		if len(m.items) > 0 {
			m.setErr(m.tasks.Toggle(m.cursor))
		}
	case key.Matches(msg, defaultKeymap.remove):
		if len(m.items) > 0 {
			m.setErr(m.tasks.Delete(m.cursor))
		}

	case key.Matches(msg, defaultKeymap.help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit
	}

	m.state = m.engine.State()

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.forceQuit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.submit):
		err := m.tasks.Add(m.input.Value())
		m.setErr(err)

		if err == nil {
			m.input.Reset()
			m.cursor = max(len(m.items)-1, 0)
		}

		return m, nil

	case key.Matches(msg, defaultKeymap.blur):
		m.input.Blur()

		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.allow):
		m.answer(notify.Granted)
	case key.Matches(msg, defaultKeymap.deny):
		m.answer(notify.Denied)
	case key.Matches(msg, defaultKeymap.quit):
		// the request stays undecided and is asked again next run
		m.answer(notify.Default)
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) setErr(err error) {
	m.err = err

	if err != nil {
		slog.Warn("task update failed", slog.Any("error", err))
	}
}
