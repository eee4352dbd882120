package timer

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "status.json")

	s, err := ReadStatus(path)
	require.NoError(t, err)
	assert.Nil(t, s)

	want := State{Mode: LongBreak, Remaining: 61, Running: true}

	require.NoError(t, WriteStatus(path, want))

	s, err = ReadStatus(path)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, want, s.State)
	assert.WithinDuration(t, time.Now(), s.UpdatedAt, time.Minute)
	assert.Equal(t, "[Long break] 01:01 (running)", s.String())

	require.NoError(t, RemoveStatus(path))
	require.NoError(t, RemoveStatus(path))
}

func TestStateProgress(t *testing.T) {
	assert.InDelta(t, 0.0, State{Mode: Focus, Remaining: 1500}.Progress(), 1e-9)
	assert.InDelta(t, 0.5, State{Mode: ShortBreak, Remaining: 150}.Progress(), 1e-9)
	assert.InDelta(t, 1.0, State{Mode: LongBreak}.Progress(), 1e-9)
}

func TestStatusStale(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{
			name:   "running and fresh",
			status: Status{UpdatedAt: now.Add(-TickPeriod), State: State{Running: true}},
		},
		{
			name:   "running and abandoned",
			status: Status{UpdatedAt: now.Add(-time.Minute), State: State{Running: true}},
			want:   true,
		},
		{
			name:   "paused long ago",
			status: Status{UpdatedAt: now.Add(-time.Hour)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.Stale(now))
		})
	}
}
