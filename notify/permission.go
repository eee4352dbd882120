package notify

import (
	"strings"
	"sync"

	"github.com/ayoisaiah/pomodoro/internal/apperr"
	"github.com/ayoisaiah/pomodoro/store"
)

// PermissionKey is the store key under which the decision is kept.
const PermissionKey = "notificationPermission"

// Permission is the user's decision about desktop notifications.
type Permission string

const (
	Default Permission = "default"
	Granted Permission = "granted"
	Denied  Permission = "denied"
)

var errInvalidPermission = &apperr.Error{
	Message: "invalid notification permission: %s (must be default, granted, or denied)",
}

// ParsePermission converts s to a Permission. The empty string is Default.
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(strings.ToLower(strings.TrimSpace(s))); p {
	case "", Default:
		return Default, nil
	case Granted, Denied:
		return p, nil
	}

	return Default, errInvalidPermission.Fmt(s)
}

// PermissionStore remembers the permission decision.
type PermissionStore interface {
	Permission() (Permission, error)
	SetPermission(p Permission) error
}

// KVPermissions keeps the decision in a durable store.
type KVPermissions struct {
	KV store.KV
}

// Permission returns the stored decision. Missing or unrecognised values are
// reported as Default.
func (k *KVPermissions) Permission() (Permission, error) {
	b, err := k.KV.Get(PermissionKey)
	if err != nil {
		return Default, err
	}

	p, err := ParsePermission(string(b))
	if err != nil {
		return Default, nil
	}

	return p, nil
}

func (k *KVPermissions) SetPermission(p Permission) error {
	return k.KV.Put(PermissionKey, []byte(p))
}

// MemoryPermissions keeps the decision for the lifetime of the process.
type MemoryPermissions struct {
	p  Permission
	mu sync.Mutex
}

func (m *MemoryPermissions) Permission() (Permission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.p == "" {
		return Default, nil
	}

	return m.p, nil
}

func (m *MemoryPermissions) SetPermission(p Permission) error {
	m.mu.Lock()
	m.p = p
	m.mu.Unlock()

	return nil
}
