package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler records scheduled callbacks so that tests can fire ticks
// deterministically.
type manualScheduler struct {
	handles []*manualHandle
}

type manualHandle struct {
	fn      func()
	stopped bool
}

func (h *manualHandle) Stop() {
	h.stopped = true
}

func (s *manualScheduler) Every(_ time.Duration, fn func()) Handle {
	h := &manualHandle{fn: fn}
	s.handles = append(s.handles, h)

	return h
}

func (s *manualScheduler) active() []*manualHandle {
	var out []*manualHandle

	for _, h := range s.handles {
		if !h.stopped {
			out = append(out, h)
		}
	}

	return out
}

// tick fires every live handle once, returning false if none are live.
func (s *manualScheduler) tick() bool {
	live := s.active()

	for _, h := range live {
		h.fn()
	}

	return len(live) > 0
}

type countingNotifier struct {
	mu    sync.Mutex
	count int
}

func (n *countingNotifier) NotifyCompletion() {
	n.mu.Lock()
	n.count++
	n.mu.Unlock()
}

func newTestEngine(opts ...Option) (*Engine, *manualScheduler, *countingNotifier) {
	s := &manualScheduler{}
	n := &countingNotifier{}

	e := New(append([]Option{WithScheduler(s), WithNotifier(n)}, opts...)...)

	return e, s, n
}

func TestNewEngineDefaults(t *testing.T) {
	e, _, _ := newTestEngine()

	assert.Equal(t, State{Mode: Focus, Remaining: 1500, Running: false}, e.State())
}

func TestSelectModeSetsDuration(t *testing.T) {
	table := []struct {
		mode Mode
		secs int
	}{
		{Focus, 1500},
		{ShortBreak, 300},
		{LongBreak, 900},
	}

	for _, v := range table {
		t.Run(string(v.mode), func(t *testing.T) {
			e, s, _ := newTestEngine()

			e.Start()
			s.tick()
			e.SelectMode(v.mode)

			st := e.State()
			assert.Equal(t, v.mode, st.Mode)
			assert.Equal(t, v.secs, st.Remaining)
			assert.False(t, st.Running)
			assert.Empty(t, s.active(), "mode switch must cancel the tick")
		})
	}
}

func TestStartIsIdempotent(t *testing.T) {
	e, s, _ := newTestEngine()

	e.Start()
	e.Start()

	require.Len(t, s.handles, 1)

	s.tick()

	assert.Equal(t, 1499, e.State().Remaining)
}

func TestPause(t *testing.T) {
	e, s, _ := newTestEngine()

	e.Pause()
	assert.Empty(t, s.handles, "pausing an idle timer is a no-op")

	e.Start()
	s.tick()
	s.tick()
	e.Pause()

	st := e.State()
	assert.False(t, st.Running)
	assert.Equal(t, 1498, st.Remaining)
	assert.False(t, s.tick(), "no tick may be live after pause")

	e.Start()
	s.tick()
	assert.Equal(t, 1497, e.State().Remaining)
}

func TestReset(t *testing.T) {
	e, s, _ := newTestEngine(WithMode(ShortBreak))

	e.Start()

	for i := 0; i < 10; i++ {
		s.tick()
	}

	e.Reset()

	assert.Equal(t, State{Mode: ShortBreak, Remaining: 300}, e.State())
	assert.Empty(t, s.active())
}

func TestStaleTickIsDropped(t *testing.T) {
	e, s, _ := newTestEngine()

	e.Start()

	stale := s.handles[0].fn

	e.Pause()
	stale()

	assert.Equal(t, 1500, e.State().Remaining)

	e.Start()
	stale()

	assert.Equal(t, 1500, e.State().Remaining, "ticks from an old handle are ignored")
}

func TestFullFocusCountdown(t *testing.T) {
	var (
		refreshes int
		minSeen   = 1500
	)

	e, s, n := newTestEngine(WithRefresh(func(st State) {
		refreshes++

		if st.Remaining < minSeen {
			minSeen = st.Remaining
		}

		if st.Remaining < 0 || st.Remaining > st.Mode.Seconds() {
			t.Fatalf("remaining out of bounds: %d", st.Remaining)
		}
	}))

	e.Start()

	for i := 0; i < 1500; i++ {
		require.True(t, s.tick())
	}

	st := e.State()
	assert.Equal(t, 0, st.Remaining)
	assert.False(t, st.Running)
	assert.Equal(t, 1, n.count)
	assert.Equal(t, 0, minSeen)
	assert.Equal(t, 1501, refreshes)

	// no auto advance, and nothing left to tick
	assert.False(t, s.tick())
	assert.Equal(t, Focus, st.Mode)

	e.Start()
	assert.False(t, e.State().Running, "a finished countdown must be reset first")
	assert.Equal(t, 1, n.count)
}

func TestTickerScheduler(t *testing.T) {
	var (
		mu    sync.Mutex
		count int
	)

	h := TickerScheduler{}.Every(5*time.Millisecond, func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return count >= 2
	}, time.Second, 5*time.Millisecond)

	h.Stop()
	h.Stop()
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"focus":       Focus,
		"Pomodoro":    Focus,
		"short-break": ShortBreak,
		" long-break": LongBreak,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("lunch")
	assert.ErrorIs(t, err, errUnknownMode)
}
