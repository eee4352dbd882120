// Package task keeps the ordered to-do list, persists it on every change and
// hands it to a renderer after every change
package task

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/ayoisaiah/pomodoro/store"
)

// Key is the store key the list is persisted under.
const Key = "pomodoroTasks"

// Task is a single to-do item. Tasks have no identity beyond their position
// in the list.
type Task struct {
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Renderer draws the full list.
type Renderer interface {
	Render(tasks []Task)
}

// List is the ordered task list backed by a durable store. It is not safe
// for concurrent use.
type List struct {
	kv       store.KV
	renderer Renderer
	tasks    []Task
}

// Option configures a List.
type Option func(*List)

// WithRenderer sets the renderer called after every mutation.
func WithRenderer(r Renderer) Option {
	return func(l *List) {
		l.renderer = r
	}
}

// New returns an empty list backed by kv. Call Load to read the persisted
// tasks.
func New(kv store.KV, opts ...Option) *List {
	l := &List{
		kv: kv,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Open creates a list backed by kv and loads it.
func Open(kv store.KV, opts ...Option) *List {
	l := New(kv, opts...)
	l.Load()

	return l
}

// SetRenderer replaces the renderer.
func (l *List) SetRenderer(r Renderer) {
	l.renderer = r
}

// Tasks returns a copy of the list.
func (l *List) Tasks() []Task {
	return slices.Clone(l.tasks)
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Add appends a new incomplete task. Text is trimmed and an empty result is
// ignored.
func (l *List) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	return l.mutate(func(tasks []Task) []Task {
		return append(tasks, Task{Text: text})
	})
}

// Toggle flips the completion state of the task at index.
func (l *List) Toggle(index int) error {
	if !l.valid(index) {
		return ErrTaskNotFound.Fmt(index + 1)
	}

	return l.mutate(func(tasks []Task) []Task {
		tasks[index].Completed = !tasks[index].Completed
		return tasks
	})
}

// Delete removes the task at index. Later tasks move up by one position.
func (l *List) Delete(index int) error {
	if !l.valid(index) {
		return ErrTaskNotFound.Fmt(index + 1)
	}

	return l.mutate(func(tasks []Task) []Task {
		return slices.Delete(tasks, index, index+1)
	})
}

// ClearCompleted removes every completed task.
func (l *List) ClearCompleted() error {
	return l.mutate(func(tasks []Task) []Task {
		return slices.DeleteFunc(tasks, func(t Task) bool {
			return t.Completed
		})
	})
}

// Replace overwrites the whole list. Tasks with empty text are dropped.
func (l *List) Replace(tasks []Task) error {
	return l.mutate(func([]Task) []Task {
		return normalise(tasks)
	})
}

// Render hands the current list to the renderer.
func (l *List) Render() {
	if l.renderer != nil {
		l.renderer.Render(l.Tasks())
	}
}

// Persist writes the entire list to the store, replacing the previous value.
func (l *List) Persist() error {
	tasks := l.tasks
	if tasks == nil {
		tasks = []Task{}
	}

	b, err := json.Marshal(tasks)
	if err != nil {
		return err
	}

	err = l.kv.Put(Key, b)
	if err != nil {
		return errPersist.Wrap(err)
	}

	return nil
}

// Load replaces the in-memory list with the persisted one. Missing or
// malformed data yields an empty list.
func (l *List) Load() {
	l.tasks = []Task{}

	b, err := l.kv.Get(Key)
	if err != nil {
		slog.Warn("unable to read tasks", slog.Any("error", err))
		return
	}

	if len(b) == 0 {
		return
	}

	var tasks []Task

	err = json.Unmarshal(b, &tasks)
	if err != nil {
		slog.Warn("discarding malformed tasks", slog.Any("error", err))
		return
	}

	l.tasks = normalise(tasks)

	slog.Debug("tasks loaded", slog.Int("count", len(l.tasks)))
}

// mutate applies fn to a copy of the list, persists the result and renders.
// If persisting fails the list is left as it was so that the displayed and
// stored lists stay in sync.
func (l *List) mutate(fn func([]Task) []Task) error {
	prev := l.tasks
	l.tasks = fn(slices.Clone(l.tasks))

	err := l.Persist()
	if err != nil {
		l.tasks = prev
		return err
	}

	l.Render()

	return nil
}

func (l *List) valid(index int) bool {
	return index >= 0 && index < len(l.tasks)
}

func normalise(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		t.Text = strings.TrimSpace(t.Text)
		if t.Text == "" {
			continue
		}

		out = append(out, t)
	}

	return out
}
