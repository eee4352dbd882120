package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	start      key.Binding
	pause      key.Binding
	reset      key.Binding
	focus      key.Binding
	shortBreak key.Binding
	longBreak  key.Binding
	input      key.Binding
	submit     key.Binding
	blur       key.Binding
	up         key.Binding
	down       key.Binding
	toggle     key.Binding
	remove     key.Binding
	allow      key.Binding
	deny       key.Binding
	help       key.Binding
	quit       key.Binding
	forceQuit  key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	focus: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "focus"),
	),
	shortBreak: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "short break"),
	),
	longBreak: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "long break"),
	),
	input: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "new task"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add task"),
	),
	blur: key.NewBinding(
		key.WithKeys("tab", "esc"),
		key.WithHelp("tab/esc", "done"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space/x", "toggle"),
	),
	remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	allow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "allow"),
	),
	deny: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "deny"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	forceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.start, k.pause, k.reset, k.input, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.start, k.pause, k.reset},
		{k.focus, k.shortBreak, k.longBreak},
		{k.input, k.up, k.down},
		{k.toggle, k.remove},
		{k.help, k.quit},
	}
}
