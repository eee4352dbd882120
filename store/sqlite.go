package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure Go driver registered as "sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// SQLiteClient is a SQLite backed KV.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens (or creates) a SQLite database at path.
func NewSQLiteClient(path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errOpenDB.Wrap(err)
	}

	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

func (c *SQLiteClient) Get(key string) ([]byte, error) {
	var value []byte

	err := c.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return value, err
}

func (c *SQLiteClient) Put(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	_, err := c.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)

	return err
}

func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
