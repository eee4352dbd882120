package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStores(t *testing.T) map[string]KV {
	t.Helper()

	dir := t.TempDir()

	stores := make(map[string]KV)

	for _, backend := range Backends() {
		kv, err := Open(backend, filepath.Join(dir, "test."+backend))
		require.NoError(t, err, backend)

		t.Cleanup(func() { _ = kv.Close() })

		stores[backend] = kv
	}

	return stores
}

func TestGetMissingKey(t *testing.T) {
	for name, kv := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := kv.Get("pomodoroTasks")
			require.NoError(t, err)
			assert.Nil(t, v)
		})
	}
}

func TestPutOverwrites(t *testing.T) {
	for name, kv := range openTestStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, kv.Put("pomodoroTasks", []byte(`[{"text":"A"}]`)))
			require.NoError(t, kv.Put("pomodoroTasks", []byte(`[]`)))

			v, err := kv.Get("pomodoroTasks")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(v))
		})
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(dir, "reopen."+backend)

			kv, err := Open(backend, path)
			require.NoError(t, err)
			require.NoError(t, kv.Put("notificationPermission", []byte("granted")))
			require.NoError(t, kv.Close())

			kv, err = Open(backend, path)
			require.NoError(t, err)

			defer kv.Close()

			v, err := kv.Get("notificationPermission")
			require.NoError(t, err)
			assert.Equal(t, "granted", string(v))
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open("redis", filepath.Join(t.TempDir(), "x"))
	assert.ErrorIs(t, err, errUnknownBackend)
}

func TestBoltLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locked.db")

	assert.False(t, Locked(path))

	kv, err := NewBoltClient(path)
	require.NoError(t, err)

	defer kv.Close()

	assert.True(t, Locked(path))
}
