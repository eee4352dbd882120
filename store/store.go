// Package store provides the durable key-value storage that task lists and
// notification settings are persisted to
package store

import (
	"strings"
)

// Backend names accepted by Open.
const (
	Bolt   = "bolt"
	SQLite = "sqlite"
)

// KV is a durable, string-keyed store. Values are opaque byte slices and a Put
// always overwrites any prior value for the key.
type KV interface {
	// Get returns the value stored under key, or nil if the key is absent
	Get(key string) ([]byte, error)
	// Put stores value under key
	Put(key string, value []byte) error
	// Close releases the underlying database
	Close() error
}

// Open opens the store for the named backend at path.
func Open(backend, path string) (KV, error) {
	switch strings.ToLower(backend) {
	case "", Bolt:
		return NewBoltClient(path)
	case SQLite:
		return NewSQLiteClient(path)
	}

	return nil, errUnknownBackend.Fmt(backend)
}

// Backends lists the supported backend names.
func Backends() []string {
	return []string{Bolt, SQLite}
}
