// Package timer operates the countdown: mode selection, start, pause and reset,
// and the one second tick that drives it
package timer

import (
	"log/slog"
	"sync"
	"time"
)

// TickPeriod is the interval between two decrements of a running countdown.
const TickPeriod = time.Second

// Notifier is told when a countdown reaches zero.
type Notifier interface {
	NotifyCompletion()
}

// State is a snapshot of the engine.
type State struct {
	Mode      Mode `json:"mode"`
	Remaining int  `json:"remaining"`
	Running   bool `json:"running"`
}

// Clock formats the remaining time as "MM:SS".
func (s State) Clock() string {
	return Format(s.Remaining)
}

// Progress reports how much of the current countdown has elapsed, from 0 to 1.
func (s State) Progress() float64 {
	total := s.Mode.Seconds()
	if total == 0 {
		return 0
	}

	return 1 - float64(s.Remaining)/float64(total)
}

// Engine owns the countdown state. All methods are safe for concurrent use;
// ticks arrive from the scheduler's goroutine.
type Engine struct {
	scheduler Scheduler
	notifier  Notifier
	refresh   func(State)
	handle    Handle
	state     State
	mu        sync.Mutex

	// generation identifies the live handle; ticks from older handles are
	// dropped
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler replaces the default ticker based scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// WithNotifier sets the service that is invoked on completion.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithRefresh sets the display refresh callback. It is called without the
// engine lock held.
func WithRefresh(fn func(State)) Option {
	return func(e *Engine) {
		e.refresh = fn
	}
}

// WithMode sets the initial mode.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		e.state.Mode = m
	}
}

// New creates a paused engine in focus mode with a full countdown.
func New(opts ...Option) *Engine {
	e := &Engine{
		scheduler: TickerScheduler{},
		state: State{
			Mode: Focus,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	if _, ok := durations[e.state.Mode]; !ok {
		e.state.Mode = Focus
	}

	e.state.Remaining = e.state.Mode.Seconds()

	return e
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// Start begins the countdown. It does nothing if the countdown is already
// running or has already reached zero.
func (e *Engine) Start() {
	e.mu.Lock()

	if e.state.Running || e.state.Remaining == 0 {
		e.mu.Unlock()
		return
	}

	e.state.Running = true
	e.generation++
	gen := e.generation

	e.handle = e.scheduler.Every(TickPeriod, func() {
		e.tick(gen)
	})

	state := e.state
	e.mu.Unlock()

	slog.Debug("countdown started",
		slog.String("mode", state.Mode.String()),
		slog.Int("remaining", state.Remaining),
	)

	e.notifyRefresh(state)
}

// Pause stops the countdown without changing the remaining time.
func (e *Engine) Pause() {
	e.mu.Lock()

	if !e.state.Running {
		e.mu.Unlock()
		return
	}

	e.stopLocked()

	state := e.state
	e.mu.Unlock()

	slog.Debug("countdown paused", slog.Int("remaining", state.Remaining))

	e.notifyRefresh(state)
}

// Reset pauses the countdown and restores the full duration of the current
// mode.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.resetLocked()
	state := e.state
	e.mu.Unlock()

	e.notifyRefresh(state)
}

// SelectMode switches to m and resets the countdown to its duration. A
// running countdown is paused.
func (e *Engine) SelectMode(m Mode) {
	if _, ok := durations[m]; !ok {
		return
	}

	e.mu.Lock()
	e.state.Mode = m
	e.resetLocked()
	state := e.state
	e.mu.Unlock()

	slog.Debug("mode selected", slog.String("mode", m.String()))

	e.notifyRefresh(state)
}

func (e *Engine) resetLocked() {
	e.stopLocked()
	e.state.Remaining = e.state.Mode.Seconds()
}

func (e *Engine) stopLocked() {
	if e.handle != nil {
		e.handle.Stop()
		e.handle = nil
	}

	// invalidate any tick that is already in flight
	e.generation++
	e.state.Running = false
}

func (e *Engine) tick(gen uint64) {
	e.mu.Lock()

	if gen != e.generation || !e.state.Running {
		e.mu.Unlock()
		return
	}

	if e.state.Remaining > 0 {
		e.state.Remaining--
	}

	completed := e.state.Remaining == 0
	if completed {
		e.stopLocked()
	}

	state := e.state
	e.mu.Unlock()

	e.notifyRefresh(state)

	if completed {
		slog.Info("countdown completed", slog.String("mode", state.Mode.String()))

		if e.notifier != nil {
			e.notifier.NotifyCompletion()
		}
	}
}

func (e *Engine) notifyRefresh(s State) {
	if e.refresh != nil {
		e.refresh(s)
	}
}
