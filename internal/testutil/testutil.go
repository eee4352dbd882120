// Package testutil holds helpers shared by the package tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/store"
)

// CompareGoldenFile verifies that output matches testdata/<name>.golden. A
// nil output asserts that no golden file exists.
func CompareGoldenFile(t *testing.T, name string, output []byte) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: golden files are written with LF line endings
		t.Skip("skipping golden file test in Windows")
	}

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, output)
}

// OpenStore opens a store of the given backend in a temporary directory. It
// is closed when the test finishes.
func OpenStore(t *testing.T, backend string) store.KV {
	t.Helper()

	kv, err := store.Open(backend, filepath.Join(t.TempDir(), "pomodoro."+backend))
	if err != nil {
		t.Fatalf("opening %s store: %v", backend, err)
	}

	t.Cleanup(func() {
		_ = kv.Close()
	})

	return kv
}
