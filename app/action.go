package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/pomodoro/internal/config"
	"github.com/ayoisaiah/pomodoro/internal/logger"
	"github.com/ayoisaiah/pomodoro/internal/osutil"
	"github.com/ayoisaiah/pomodoro/internal/pathutil"
	"github.com/ayoisaiah/pomodoro/internal/static"
	"github.com/ayoisaiah/pomodoro/internal/ui"
	"github.com/ayoisaiah/pomodoro/notify"
	"github.com/ayoisaiah/pomodoro/store"
	"github.com/ayoisaiah/pomodoro/timer"
	"github.com/ayoisaiah/pomodoro/tui"
)

const (
	envNoColor         = "NO_COLOR"
	envPomodoroNoColor = "POMODORO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// deps holds what an action needs once the config is loaded.
type deps struct {
	cfg *config.Config
	kv  store.KV
	log io.Closer
}

func (d *deps) Close() {
	if d.kv != nil {
		if err := d.kv.Close(); err != nil {
			slog.Warn("unable to close store", slog.Any("error", err))
		}
	}

	if d.log != nil {
		_ = d.log.Close()
	}
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	if err := pathutil.Initialize(); err != nil {
		return nil, err
	}

	return config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// storePath returns the database file for backend.
func storePath(backend string) string {
	if backend == store.SQLite {
		return pathutil.SQLiteFilePath()
	}

	return pathutil.BoltFilePath()
}

// newDeps loads the config, starts file logging and opens the store.
func newDeps(ctx *cli.Context) (*deps, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	closer, err := logger.Init(pathutil.LogFilePath(), cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	d := &deps{
		cfg: cfg,
		log: closer,
	}

	d.kv, err = store.Open(cfg.Settings.Store, storePath(cfg.Settings.Store))
	if err != nil {
		d.Close()
		return nil, err
	}

	return d, nil
}

// newNotifier builds the completion alerts from the config.
func newNotifier(
	ctx context.Context,
	cfg *config.Config,
	kv store.KV,
	requester notify.Requester,
) *notify.Service {
	opts := []notify.Option{
		notify.WithContext(ctx),
		notify.WithDesktop(notify.SystemDesktop{
			Icon: filepath.Join(pathutil.DataDir(), static.Icon),
		}),
		notify.WithPermissions(&notify.KVPermissions{KV: kv}),
		notify.WithRequester(requester),
		notify.WithCommand(cfg.Settings.Cmd),
		notify.WithDesktopDisabled(!cfg.Notifications.Enabled),
	}

	// a nil *SoundPlayer must not end up inside the interface
	if p := notify.NewSoundPlayer(cfg.Notifications.Sound); p != nil {
		opts = append(opts, notify.WithPlayer(p))
	}

	return notify.New(opts...)
}

// defaultAction starts the interactive timer.
func defaultAction(ctx *cli.Context) error {
	d, err := newDeps(ctx)
	if err != nil {
		return err
	}

	defer d.Close()

	static.Register(pathutil.DataDir())

	runCtx, cancel := context.WithCancel(ctx.Context)
	defer cancel()

	list := openTasks(d.kv)
	requester := tui.NewPromptRequester()

	slog.Info("starting timer",
		slog.String("mode", d.cfg.Mode().String()),
		slog.String("store", d.cfg.Settings.Store),
	)

	return tui.Run(runCtx, tui.Options{
		Tasks:      list,
		Notifier:   newNotifier(runCtx, d.cfg, d.kv, requester),
		Mode:       d.cfg.Mode(),
		StatusPath: pathutil.StatusFilePath(),
		Style:      tui.NewStyle(d.cfg.Display.DarkTheme, d.cfg.CLI.NoColor || noColorEnv()),
	}, requester)
}

// statusAction prints the status of the running timer, if any.
func statusAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	// a bolt database that is not locked means no timer is running and the
	// status file is stale
	if cfg.Settings.Store == store.Bolt && !store.Locked(pathutil.BoltFilePath()) {
		return nil
	}

	s, err := timer.ReadStatus(pathutil.StatusFilePath())
	if err != nil || s == nil {
		return err
	}

	if s.Stale(time.Now()) {
		slog.Debug("ignoring stale status file", slog.Time("updated_at", s.UpdatedAt))
		return nil
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	pterm.Println(statusLine(s))

	return nil
}

func statusLine(s *timer.Status) string {
	label := fmt.Sprintf("[%s]", s.Mode.Label())

	switch s.Mode {
	case timer.Focus:
		label = ui.Green(label)
	case timer.ShortBreak:
		label = ui.Blue(label)
	case timer.LongBreak:
		label = ui.Magenta(label)
	}

	state := "paused"
	if s.Running {
		state = "running"
	}

	return fmt.Sprintf("%s %s (%s)", label, ui.Highlight(s.Clock()), state)
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil && !errors.Is(err, config.ErrValidation) {
		return err
	}

	path := pathutil.ConfigFilePath()
	if cfg != nil {
		path = cfg.CLI.ConfigPath
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(runtime.GOOS),
	)

	cmd := exec.Command(editor, path)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func noColorEnv() bool {
	_, noColor := os.LookupEnv(envNoColor)
	_, pomodoroNoColor := os.LookupEnv(envPomodoroNoColor)

	return noColor || pomodoroNoColor
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if noColorEnv() || ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomodoro")

	return nil
}
