// Package tui is the interactive terminal interface: it draws the countdown
// and the task list, and forwards key presses to the timer engine and the
// task list
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/pomodoro/notify"
	"github.com/ayoisaiah/pomodoro/task"
	"github.com/ayoisaiah/pomodoro/timer"
)

const (
	padding  = 2
	maxWidth = 60
)

// refreshMsg is sent whenever the engine state changes.
type refreshMsg struct{}

// permissionPromptMsg asks the user to answer a pending notification
// permission request on reply.
type permissionPromptMsg struct {
	reply chan<- notify.Permission
}

// Options configures the interface.
type Options struct {
	Tasks      *task.List
	Notifier   timer.Notifier
	Scheduler  timer.Scheduler
	Mode       timer.Mode
	StatusPath string
	Style      Style
}

// Model is the bubbletea model of the interface.
type Model struct {
	engine     *timer.Engine
	tasks      *task.List
	prompt     chan<- notify.Permission
	err        error
	style      Style
	statusPath string
	items      []task.Task
	input      textinput.Model
	help       help.Model
	progress   progress.Model
	state      timer.State
	cursor     int
}

// New creates the model. send delivers messages to the running program; it is
// always called on its own goroutine.
func New(opts Options, send func(tea.Msg)) *Model {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 200
	input.Prompt = "+ "

	m := &Model{
		tasks:      opts.Tasks,
		style:      opts.Style,
		statusPath: opts.StatusPath,
		input:      input,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}

	m.progress.Width = maxWidth

	engineOpts := []timer.Option{
		timer.WithMode(opts.Mode),
		timer.WithRefresh(func(timer.State) {
			if send != nil {
				go send(refreshMsg{})
			}
		}),
	}

	if opts.Notifier != nil {
		engineOpts = append(engineOpts, timer.WithNotifier(opts.Notifier))
	}

	if opts.Scheduler != nil {
		engineOpts = append(engineOpts, timer.WithScheduler(opts.Scheduler))
	}

	m.engine = timer.New(engineOpts...)
	m.state = m.engine.State()

	if m.tasks != nil {
		m.items = m.tasks.Tasks()
		m.tasks.SetRenderer(m)
	}

	return m
}

// Render implements task.Renderer. It is called by the task list after every
// mutation, on the program's goroutine.
func (m *Model) Render(tasks []task.Task) {
	m.items = tasks

	if m.cursor >= len(m.items) {
		m.cursor = max(len(m.items)-1, 0)
	}
}

// Engine returns the timer engine driven by the model.
func (m *Model) Engine() *timer.Engine {
	return m.engine
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// shutdown stops the countdown and removes the status file.
func (m *Model) shutdown() {
	m.engine.Pause()
	m.answer(notify.Default)

	if m.statusPath == "" {
		return
	}

	if err := timer.RemoveStatus(m.statusPath); err != nil {
		slog.Warn("unable to remove status file", slog.Any("error", err))
	}
}

func (m *Model) writeStatus() {
	if m.statusPath == "" {
		return
	}

	if err := timer.WriteStatus(m.statusPath, m.state); err != nil {
		slog.Debug("unable to write status file", slog.Any("error", err))
	}
}

// answer replies to a pending permission prompt, if any.
func (m *Model) answer(p notify.Permission) {
	if m.prompt == nil {
		return
	}

	m.prompt <- p
	m.prompt = nil
}
