// Package static embeds the sound and icon assets into the binary and copies
// them to the data directory so that they are available offline and to the
// operating system's notification service
package static

import (
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ayoisaiah/pomodoro/internal/osutil"
)

const (
	filesDir = "files"

	// Bell is the default completion sound.
	Bell = "bell"
	// Icon is the notification icon.
	Icon = "icon.png"
)

//go:embed files/*
var embeddedFiles embed.FS

// ReadFile returns the contents of the named embedded asset.
func ReadFile(name string) ([]byte, error) {
	return embeddedFiles.ReadFile(path.Join(filesDir, name))
}

// Sounds lists the names of the bundled sounds without their extension.
func Sounds() []string {
	entries, err := fs.ReadDir(embeddedFiles, filesDir)
	if err != nil {
		return nil
	}

	var sounds []string

	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".wav" {
			sounds = append(sounds, strings.TrimSuffix(e.Name(), ".wav"))
		}
	}

	return sounds
}

// Install copies embedded assets that are missing from dir into it and
// returns the paths written.
func Install(dir string) ([]string, error) {
	var written []string

	err := fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			destPath := filepath.Join(dir, strings.TrimPrefix(p, filesDir+"/"))

			// Only write if file does not already exist
			_, err = os.Stat(destPath)
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), osutil.DirPermission); err != nil {
				return err
			}

			if err := os.WriteFile(destPath, b, osutil.FilePermission); err != nil {
				return err
			}

			written = append(written, destPath)

			return nil
		},
	)

	return written, err
}

// Register installs the assets into dir. The outcome is logged only; the
// timer works without the installed copies.
func Register(dir string) {
	written, err := Install(dir)
	if err != nil {
		slog.Warn("asset registration failed", slog.Any("error", err))
		return
	}

	slog.Info("assets registered",
		slog.String("dir", dir),
		slog.Int("written", len(written)),
	)
}
