package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/pomodoro/internal/osutil"
)

const storageBucket = "storage"

// BoltClient is a BoltDB backed KV.
type BoltClient struct {
	*bolt.DB
}

// Get retrieves the value for key. The returned slice is a copy and remains
// valid after the transaction ends.
func (c *BoltClient) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(storageBucket)).Get([]byte(key))
		if v != nil {
			value = append([]byte{}, v...)
		}

		return nil
	})

	return value, err
}

func (c *BoltClient) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(storageBucket)).Put([]byte(key), value)
	})
}

// openBolt creates or opens a database and locks it.
func openBolt(path string, timeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(
		path,
		osutil.DBPermission,
		&bolt.Options{Timeout: timeout},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrAlreadyRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewBoltClient returns a wrapper to a BoltDB connection.
func NewBoltClient(path string) (*BoltClient, error) {
	db, err := openBolt(path, 1*time.Second)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(storageBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltClient{
		db,
	}, nil
}

// Locked reports whether the database at path is held by another process.
// It is used to detect a running timer without disturbing it.
func Locked(path string) bool {
	db, err := openBolt(path, 100*time.Millisecond)
	if err != nil {
		return errors.Is(err, ErrAlreadyRunning)
	}

	_ = db.Close()

	return false
}
