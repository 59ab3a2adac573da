// Package memory provides an in-process storage.Store for tests and
// ephemeral runs.
package memory

import (
	"errors"
	"sync"

	"github.com/curiolabs/curio/internal/storage"
)

// errReadOnly is returned by writes attempted inside View.
var errReadOnly = errors.New("write inside a read-only transaction")

// Store keeps all records in a map. Update transactions stage their
// writes in an overlay and apply them only if the transaction function
// succeeds.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

// View runs fn against a read-only transaction.
func (s *Store) View(fn func(storage.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(readTx{records: s.records})
}

// Update runs fn against a staged transaction and applies the staged
// writes only when fn returns nil.
func (s *Store) Update(fn func(storage.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &writeTx{
		records: s.records,
		staged:  make(map[string][]byte),
		deleted: make(map[string]struct{}),
	}
	if err := fn(tx); err != nil {
		return err
	}

	for key := range tx.deleted {
		delete(s.records, key)
	}
	for key, value := range tx.staged {
		s.records[key] = value
	}
	return nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}

type readTx struct {
	records map[string][]byte
}

func (t readTx) Get(key string) ([]byte, error) {
	value, ok := t.records[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (t readTx) Put(string, []byte) error {
	return errReadOnly
}

func (t readTx) Delete(string) error {
	return errReadOnly
}

type writeTx struct {
	records map[string][]byte
	staged  map[string][]byte
	deleted map[string]struct{}
}

func (t *writeTx) Get(key string) ([]byte, error) {
	if _, gone := t.deleted[key]; gone {
		return nil, storage.ErrNotFound
	}
	if value, ok := t.staged[key]; ok {
		return value, nil
	}
	value, ok := t.records[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (t *writeTx) Put(key string, value []byte) error {
	delete(t.deleted, key)
	staged := make([]byte, len(value))
	copy(staged, value)
	t.staged[key] = staged
	return nil
}

func (t *writeTx) Delete(key string) error {
	delete(t.staged, key)
	t.deleted[key] = struct{}{}
	return nil
}
