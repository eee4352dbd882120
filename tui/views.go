package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomodoro/timer"
)

const permissionPrompt = "Allow desktop notifications? (y/n)"

func (m *Model) tabsView() string {
	modes := timer.Modes()
	tabs := make([]string, len(modes))

	for i, mode := range modes {
		style := m.style.Tab
		if mode == m.state.Mode {
			style = m.style.ActiveTab
		}

		tabs[i] = style.Render(mode.Label())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) timerView() string {
	var s strings.Builder

	s.WriteString(m.tabsView())
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(m.state.Clock()))
	s.WriteString(" ")

	switch {
	case m.state.Running:
		s.WriteString(m.style.Secondary.Render("[Running]"))
	case m.state.Remaining == 0:
		s.WriteString(m.style.Secondary.Render("[Time's up]"))
	default:
		s.WriteString(m.style.Hint.Render("[Paused]"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.state.Progress()))

	return s.String()
}

func (m *Model) tasksView() string {
	if m.tasks == nil {
		return ""
	}

	var s strings.Builder

	s.WriteString("\n\n")

	if len(m.items) == 0 {
		s.WriteString(m.style.Hint.Render("No tasks yet"))
	}

	for i, t := range m.items {
		cursor := "  "
		if i == m.cursor && !m.input.Focused() {
			cursor = m.style.Cursor.Render("> ")
		}

		check := "[ ]"
		style := m.style.Task

		if t.Completed {
			check = "[x]"
			style = m.style.Done
		}

		s.WriteString(cursor)
		s.WriteString(style.Render(fmt.Sprintf("%d. %s %s", i+1, check, t.Text)))
		s.WriteString("\n")
	}

	if m.input.Focused() {
		s.WriteString("\n")
		s.WriteString(m.input.View())
	}

	return strings.TrimRight(s.String(), "\n")
}

func (m *Model) helpView() string {
	if m.prompt != nil {
		return m.help.ShortHelpView([]key.Binding{
			defaultKeymap.allow,
			defaultKeymap.deny,
			defaultKeymap.quit,
		})
	}

	if m.input.Focused() {
		return m.help.ShortHelpView([]key.Binding{
			defaultKeymap.submit,
			defaultKeymap.blur,
			defaultKeymap.forceQuit,
		})
	}

	return m.help.View(defaultKeymap)
}

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(m.timerView())
	s.WriteString(m.tasksView())

	if m.prompt != nil {
		s.WriteString("\n\n")
		s.WriteString(m.style.Prompt.Render(permissionPrompt))
	}

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(m.style.Error.Render(m.err.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(m.helpView())

	return m.style.Base.Render(s.String())
}
