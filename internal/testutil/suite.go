package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/curiolabs/curio/internal/storage"
)

// RunStoreSuite exercises the storage.Store contract every backend must
// satisfy: whole-value get/put/delete, ErrNotFound for missing keys, and
// all-or-nothing Update transactions.
func RunStoreSuite(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Run("GetMissingKey", func(t *testing.T) {
		store := newStore(t)

		err := store.View(func(tx storage.Tx) error {
			_, err := tx.Get("absent")
			return err
		})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("PutThenGet", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Put("greeting", []byte("hello"))
		}))

		err := store.View(func(tx storage.Tx) error {
			value, err := tx.Get("greeting")
			require.NoError(t, err)
			require.Equal(t, []byte("hello"), value)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("Overwrite", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Put("key", []byte("first"))
		}))
		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Put("key", []byte("second"))
		}))

		_ = store.View(func(tx storage.Tx) error {
			value, err := tx.Get("key")
			require.NoError(t, err)
			require.Equal(t, []byte("second"), value, "put should replace the whole value")
			return nil
		})
	})

	t.Run("Delete", func(t *testing.T) {
		store := newStore(t)

		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Put("key", []byte("value"))
		}))
		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Delete("key")
		}))

		err := store.View(func(tx storage.Tx) error {
			_, err := tx.Get("key")
			return err
		})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateRollsBackOnError", func(t *testing.T) {
		store := newStore(t)
		boom := errors.New("boom")

		require.NoError(t, store.Update(func(tx storage.Tx) error {
			return tx.Put("keep", []byte("original"))
		}))

		err := store.Update(func(tx storage.Tx) error {
			require.NoError(t, tx.Put("keep", []byte("clobbered")))
			require.NoError(t, tx.Put("new", []byte("staged")))
			require.NoError(t, tx.Delete("keep"))
			return boom
		})
		require.ErrorIs(t, err, boom, "the transaction error should surface unchanged")

		_ = store.View(func(tx storage.Tx) error {
			value, err := tx.Get("keep")
			require.NoError(t, err, "rolled-back delete must not stick")
			require.Equal(t, []byte("original"), value, "rolled-back put must not stick")

			_, err = tx.Get("new")
			require.ErrorIs(t, err, storage.ErrNotFound, "staged writes must vanish on rollback")
			return nil
		})
	})

	t.Run("UpdateReadsItsOwnWrites", func(t *testing.T) {
		store := newStore(t)

		err := store.Update(func(tx storage.Tx) error {
			require.NoError(t, tx.Put("key", []byte("value")))

			value, err := tx.Get("key")
			require.NoError(t, err, "a transaction should see its own writes")
			require.Equal(t, []byte("value"), value)

			require.NoError(t, tx.Delete("key"))
			_, err = tx.Get("key")
			require.ErrorIs(t, err, storage.ErrNotFound, "a transaction should see its own deletes")

			return tx.Put("key", []byte("final"))
		})
		require.NoError(t, err)

		_ = store.View(func(tx storage.Tx) error {
			value, err := tx.Get("key")
			require.NoError(t, err)
			require.Equal(t, []byte("final"), value)
			return nil
		})
	})

	t.Run("ViewRejectsWrites", func(t *testing.T) {
		store := newStore(t)

		err := store.View(func(tx storage.Tx) error {
			return tx.Put("key", []byte("value"))
		})
		require.Error(t, err, "writes inside View must fail")
	})
}
