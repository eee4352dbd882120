package tui

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomodoro/internal/testutil"
	"github.com/ayoisaiah/pomodoro/notify"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/task"
	"github.com/ayoisaiah/pomodoro/timer"
)

type stubHandle struct{}

func (stubHandle) Stop() {}

// stubScheduler never ticks; the tests only care about engine commands.
type stubScheduler struct {
	mu    sync.Mutex
	ticks []func()
}

func (s *stubScheduler) Every(_ time.Duration, fn func()) timer.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks = append(s.ticks, fn)

	return stubHandle{}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *task.List, string) {
	t.Helper()

	list := task.Open(testutil.OpenStore(t, store.Bolt))
	statusPath := filepath.Join(t.TempDir(), "status.json")

	m := New(Options{
		Tasks:      list,
		Scheduler:  &stubScheduler{},
		Mode:       timer.Focus,
		StatusPath: statusPath,
		Style:      NewStyle(true, true),
	}, nil)

	return m, list, statusPath
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}

	return cmd
}

func TestTimerKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, "25:00", m.state.Clock())

	press(m, runes("s"))
	assert.True(t, m.state.Running)

	press(m, runes("p"))
	assert.False(t, m.state.Running)

	press(m, runes("2"))
	assert.Equal(t, timer.ShortBreak, m.state.Mode)
	assert.Equal(t, "05:00", m.state.Clock())

	press(m, runes("3"))
	assert.Equal(t, "15:00", m.state.Clock())

	press(m, runes("s"), runes("r"))
	assert.False(t, m.state.Running)
	assert.Equal(t, 900, m.state.Remaining)

	press(m, runes("1"))
	assert.Equal(t, timer.Focus, m.state.Mode)
	assert.Contains(t, m.View(), "25:00")
}

func TestAddTaskThroughInput(t *testing.T) {
	m, list, _ := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.input.Focused())

	// command keys are typed into the input while it is focused
	press(m, runes("s"), runes("hip it"))
	assert.False(t, m.state.Running)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []task.Task{{Text: "ship it"}}, list.Tasks())
	assert.Equal(t, list.Tasks(), m.items)
	assert.Empty(t, m.input.Value())

	// blank input is ignored
	press(m, runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, list.Len())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.input.Focused())
	assert.Contains(t, m.View(), "1. [ ] ship it")
}

func TestToggleAndDeleteRows(t *testing.T) {
	m, list, _ := newTestModel(t)

	for _, text := range []string{"A", "B", "C"} {
		require.NoError(t, list.Add(text))
	}

	assert.Len(t, m.items, 3)

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.True(t, list.Tasks()[1].Completed)

	press(m, runes("x"))
	assert.False(t, list.Tasks()[1].Completed)

	press(m, runes("j"), runes("j"), runes("d"))
	assert.Equal(t, []task.Task{{Text: "A"}, {Text: "B"}}, list.Tasks())
	assert.Equal(t, 1, m.cursor)

	press(m, runes("k"), runes("k"), runes("d"))
	assert.Equal(t, []task.Task{{Text: "B"}}, list.Tasks())
	assert.Equal(t, 0, m.cursor)
}

func TestToggleOnEmptyList(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, runes("x"), runes("d"))

	assert.NoError(t, m.err)
	assert.Contains(t, m.View(), "No tasks yet")
}

func TestRefreshWritesStatus(t *testing.T) {
	m, _, statusPath := newTestModel(t)

	press(m, runes("s"), refreshMsg{})

	s, err := timer.ReadStatus(statusPath)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "[Focus] 25:00 (running)", s.String())

	m.shutdown()

	s, err = timer.ReadStatus(statusPath)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.False(t, m.engine.State().Running)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestPermissionPrompt(t *testing.T) {
	cases := []struct {
		key  string
		want notify.Permission
	}{
		{"y", notify.Granted},
		{"n", notify.Denied},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			m, _, _ := newTestModel(t)

			msgs := make(chan tea.Msg, 1)
			r := NewPromptRequester()
			r.attach(func(msg tea.Msg) {
				msgs <- msg
			})

			result := make(chan notify.Permission, 1)

			go func() {
				p, err := r.RequestPermission(context.Background())
				assert.NoError(t, err)
				result <- p
			}()

			select {
			case msg := <-msgs:
				press(m, msg)
			case <-time.After(time.Second):
				t.Fatal("prompt was not sent")
			}

			assert.Contains(t, m.View(), permissionPrompt)

			// timer keys are ignored while the prompt is shown
			press(m, runes("s"))
			assert.False(t, m.state.Running)

			press(m, runes(tc.key))

			select {
			case p := <-result:
				assert.Equal(t, tc.want, p)
			case <-time.After(time.Second):
				t.Fatal("prompt was not answered")
			}

			assert.NotContains(t, m.View(), permissionPrompt)
		})
	}
}

func TestRequesterNotAttached(t *testing.T) {
	_, err := NewPromptRequester().RequestPermission(context.Background())

	assert.ErrorIs(t, err, errNotAttached)
}

func TestRequesterCancelled(t *testing.T) {
	r := NewPromptRequester()
	r.attach(func(tea.Msg) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := r.RequestPermission(ctx)

	assert.Equal(t, notify.Default, p)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestQuitDuringPermissionPrompt(t *testing.T) {
	m, _, _ := newTestModel(t)

	reply := make(chan notify.Permission, 1)
	press(m, permissionPromptMsg{reply: reply})

	assert.Contains(t, m.View(), "q quit")

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Equal(t, notify.Default, <-reply)
	assert.Nil(t, m.prompt)
}
