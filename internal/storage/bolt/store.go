// Package bolt provides a BoltDB-backed storage.Store.
package bolt

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/curiolabs/curio/internal/storage"
)

const registryBucket = "registry"

// Store provides a BoltDB-backed key-value store. Every value is read and
// written whole, matching the registry's cost model.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path, creating the
// registry bucket if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBucket(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// View runs fn in a read-only BoltDB transaction.
func (s *Store) View(fn func(storage.Tx) error) error {
	return s.db.View(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(registryBucket))
		if bucket == nil {
			return fmt.Errorf("registry bucket is missing")
		}
		return fn(tx{bucket: bucket})
	})
}

// Update runs fn in a writable BoltDB transaction; an error from fn rolls
// every write back.
func (s *Store) Update(fn func(storage.Tx) error) error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		bucket := btx.Bucket([]byte(registryBucket))
		if bucket == nil {
			return fmt.Errorf("registry bucket is missing")
		}
		return fn(tx{bucket: bucket})
	})
}

func (s *Store) ensureBucket() error {
	return s.db.Update(func(btx *bbolt.Tx) error {
		if _, err := btx.CreateBucketIfNotExists([]byte(registryBucket)); err != nil {
			return fmt.Errorf("create registry bucket: %w", err)
		}
		return nil
	})
}

type tx struct {
	bucket *bbolt.Bucket
}

func (t tx) Get(key string) ([]byte, error) {
	payload := t.bucket.Get([]byte(key))
	if payload == nil {
		return nil, storage.ErrNotFound
	}
	// The slice is only valid for the life of the bolt transaction.
	value := make([]byte, len(payload))
	copy(value, payload)
	return value, nil
}

func (t tx) Put(key string, value []byte) error {
	return t.bucket.Put([]byte(key), value)
}

func (t tx) Delete(key string) error {
	return t.bucket.Delete([]byte(key))
}
