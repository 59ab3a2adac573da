// Package storage defines the key-value persistence contract the registry
// composes its commits from. Values are read and written whole; there is
// no partial update of a stored record.
package storage

import "errors"

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Tx is a single transaction over the key-value store. Implementations
// surface ErrNotFound from Get for missing keys.
type Tx interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// Store provides transactional access to the key-value store.
//
// Update is all-or-nothing: if fn returns an error, every write staged
// inside it is rolled back and the error is returned unchanged. This is
// the sole atomicity mechanism the registry relies on.
type Store interface {
	View(fn func(Tx) error) error
	Update(fn func(Tx) error) error
	Close() error
}
