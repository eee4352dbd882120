// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

const envName = "POMODORO_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	boltFileName   string
	sqliteFileName string
	statusFileName string
	logFileName    string
	configFilePath string
	dataDir        string
	boltFilePath   string
	sqliteFilePath string
	statusFilePath string
	logFilePath    string
}

var (
	paths   *Paths
	once    sync.Once
	initErr error
)

// Initialize must be called once at program startup. Subsequent calls return
// the result of the first one.
func Initialize() error {
	once.Do(func() {
		paths = &Paths{
			configDir:      "pomodoro",
			configFileName: "config.yml",
			boltFileName:   "pomodoro.db",
			sqliteFileName: "pomodoro.sqlite",
			statusFileName: "status.json",
			logFileName:    "pomodoro.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func DataDir() string {
	return Must().dataDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func BoltFilePath() string {
	return Must().boltFilePath
}

func SQLiteFilePath() string {
	return Must().sqliteFilePath
}

func StatusFilePath() string {
	return Must().statusFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.boltFileName = fmt.Sprintf("pomodoro_%s.db", env)
		p.sqliteFileName = fmt.Sprintf("pomodoro_%s.sqlite", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("pomodoro_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file: %w", err)
	}

	// xdg.DataFile creates the parent directories of the returned path
	statusPath, err := xdg.DataFile(filepath.Join(p.configDir, p.statusFileName))
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}

	p.dataDir = filepath.Dir(statusPath)
	p.statusFilePath = statusPath
	p.boltFilePath = filepath.Join(p.dataDir, p.boltFileName)
	p.sqliteFilePath = filepath.Join(p.dataDir, p.sqliteFileName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
