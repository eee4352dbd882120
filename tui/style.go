package tui

import "github.com/charmbracelet/lipgloss"

// Style holds the styles used to draw the interface.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Task      lipgloss.Style
	Done      lipgloss.Style
	Cursor    lipgloss.Style
	Prompt    lipgloss.Style
	Error     lipgloss.Style
}

type palette struct {
	main      lipgloss.Color
	secondary lipgloss.Color
	hint      lipgloss.Color
	accent    lipgloss.Color
	err       lipgloss.Color
}

var (
	darkPalette = palette{
		main:      lipgloss.Color("#FFFDF5"),
		secondary: lipgloss.Color("#A8CC8C"),
		hint:      lipgloss.Color("#626262"),
		accent:    lipgloss.Color("#E06C75"),
		err:       lipgloss.Color("#FF5F87"),
	}

	lightPalette = palette{
		main:      lipgloss.Color("#1A1A1A"),
		secondary: lipgloss.Color("#3B7A2A"),
		hint:      lipgloss.Color("#8A8A8A"),
		accent:    lipgloss.Color("#C0392B"),
		err:       lipgloss.Color("#D7005F"),
	}
)

// NewStyle returns the styles for a dark or light terminal. With noColor set
// only text attributes are used.
func NewStyle(dark, noColor bool) Style {
	base := lipgloss.NewStyle().Padding(1, padding)

	if noColor {
		return Style{
			Base:      base,
			Main:      lipgloss.NewStyle().Bold(true),
			Secondary: lipgloss.NewStyle(),
			Hint:      lipgloss.NewStyle(),
			Tab:       lipgloss.NewStyle().Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Padding(0, 1).Bold(true).Underline(true),
			Task:      lipgloss.NewStyle(),
			Done:      lipgloss.NewStyle().Strikethrough(true),
			Cursor:    lipgloss.NewStyle().Bold(true),
			Prompt:    lipgloss.NewStyle().Bold(true),
			Error:     lipgloss.NewStyle(),
		}
	}

	p := darkPalette
	if !dark {
		p = lightPalette
	}

	return Style{
		Base:      base,
		Main:      lipgloss.NewStyle().Bold(true).Foreground(p.main),
		Secondary: lipgloss.NewStyle().Foreground(p.secondary),
		Hint:      lipgloss.NewStyle().Foreground(p.hint),
		Tab:       lipgloss.NewStyle().Padding(0, 1).Foreground(p.hint),
		ActiveTab: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(p.main).
			Background(p.accent),
		Task:   lipgloss.NewStyle().Foreground(p.main),
		Done:   lipgloss.NewStyle().Strikethrough(true).Foreground(p.hint),
		Cursor: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(p.secondary),
		Error:  lipgloss.NewStyle().Foreground(p.err),
	}
}
