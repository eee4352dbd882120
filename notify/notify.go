// Package notify alerts the user when a countdown completes: an audio cue, a
// desktop notification subject to the user's permission, and an optional
// command
package notify

import (
	"context"
	"log/slog"
	"sync"
)

const (
	// Title is the title of every desktop notification.
	Title = "Pomodoro Timer"

	bodyGranted   = "Time's up! Take a break 🌿"
	bodyRequested = "Time's up!"
)

// Desktop displays a system level notification.
type Desktop interface {
	Show(title, body string) error
}

// Player plays the completion sound. Play may block until playback ends.
type Player interface {
	Play() error
}

// Requester asks the user whether notifications may be shown. It may block
// until the user answers or ctx is cancelled.
type Requester interface {
	RequestPermission(ctx context.Context) (Permission, error)
}

// Service implements timer.Notifier.
type Service struct {
	ctx       context.Context
	desktop   Desktop
	player    Player
	perms     PermissionStore
	requester Requester
	cmd       string
	mu        sync.Mutex
	disabled  bool
	requested bool
}

// Option configures a Service.
type Option func(*Service)

// WithContext bounds pending permission requests and commands.
func WithContext(ctx context.Context) Option {
	return func(s *Service) {
		s.ctx = ctx
	}
}

// WithDesktop sets the notification backend.
func WithDesktop(d Desktop) Option {
	return func(s *Service) {
		s.desktop = d
	}
}

// WithPlayer sets the sound player. A nil player disables sound.
func WithPlayer(p Player) Option {
	return func(s *Service) {
		s.player = p
	}
}

// WithPermissions sets where the permission decision is remembered.
func WithPermissions(p PermissionStore) Option {
	return func(s *Service) {
		s.perms = p
	}
}

// WithRequester sets how an undecided permission is requested.
func WithRequester(r Requester) Option {
	return func(s *Service) {
		s.requester = r
	}
}

// WithCommand sets a shell command that runs after every completion.
func WithCommand(cmd string) Option {
	return func(s *Service) {
		s.cmd = cmd
	}
}

// WithDesktopDisabled turns off desktop notifications entirely.
func WithDesktopDisabled(disabled bool) Option {
	return func(s *Service) {
		s.disabled = disabled
	}
}

// New creates a notification service.
func New(opts ...Option) *Service {
	s := &Service{
		ctx:   context.Background(),
		perms: &MemoryPermissions{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NotifyCompletion plays the completion sound and shows a desktop
// notification if permitted. It never blocks: every side effect runs on its
// own goroutine and failures are only logged.
func (s *Service) NotifyCompletion() {
	if s.player != nil {
		go func() {
			if err := s.player.Play(); err != nil {
				slog.Debug("unable to play sound", slog.Any("error", err))
			}
		}()
	}

	if !s.disabled && s.desktop != nil {
		s.notifyDesktop()
	}

	if s.cmd != "" {
		go func() {
			if err := runCommand(s.ctx, s.cmd); err != nil {
				slog.Warn("session command failed",
					slog.String("cmd", s.cmd),
					slog.Any("error", err),
				)
			}
		}()
	}
}

func (s *Service) notifyDesktop() {
	perm, err := s.perms.Permission()
	if err != nil {
		slog.Debug("unable to read notification permission", slog.Any("error", err))
	}

	switch perm {
	case Granted:
		go s.show(bodyGranted)
	case Denied:
		return
	default:
		s.request()
	}
}

// request asks for permission at most once per Service.
func (s *Service) request() {
	if s.requester == nil {
		return
	}

	s.mu.Lock()
	if s.requested {
		s.mu.Unlock()
		return
	}

	s.requested = true
	s.mu.Unlock()

	go func() {
		perm, err := s.requester.RequestPermission(s.ctx)
		if err != nil {
			slog.Debug("permission request failed", slog.Any("error", err))
			return
		}

		slog.Info("notification permission decided", slog.String("permission", string(perm)))

		if perm != Default {
			if err := s.perms.SetPermission(perm); err != nil {
				slog.Warn("unable to save notification permission", slog.Any("error", err))
			}
		}

		if perm == Granted {
			s.show(bodyRequested)
		}
	}()
}

func (s *Service) show(body string) {
	if err := s.desktop.Show(Title, body); err != nil {
		slog.Debug("unable to display notification", slog.Any("error", err))
	}
}
