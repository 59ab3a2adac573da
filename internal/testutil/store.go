// Package testutil provides test helpers for constructing storage
// backends against temporary locations.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curiolabs/curio/internal/storage"
	"github.com/curiolabs/curio/internal/storage/bolt"
	"github.com/curiolabs/curio/internal/storage/memory"
	"github.com/curiolabs/curio/internal/storage/sqlite"
)

// NewMemoryStore returns a fresh in-memory store.
func NewMemoryStore(t *testing.T) storage.Store {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewBoltStore returns a BoltDB store backed by a temp file.
func NewBoltStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "curio.db"))
	require.NoError(t, err, "opening bolt store should succeed")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewSQLiteStore returns a SQLite store backed by a temp file.
func NewSQLiteStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "curio.db"))
	require.NoError(t, err, "opening sqlite store should succeed")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// Backends returns a named constructor per storage backend, for running
// the same test against every implementation.
func Backends() map[string]func(t *testing.T) storage.Store {
	return map[string]func(t *testing.T) storage.Store{
		"memory": NewMemoryStore,
		"bolt":   NewBoltStore,
		"sqlite": NewSQLiteStore,
	}
}
