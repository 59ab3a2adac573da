// Package registry implements the asset registry engine: mint, burn, and
// transfer of content-addressed unique assets under global and per-owner
// capacity limits.
//
// The engine is designed for a serialized-call host: each operation runs
// to completion as one indivisible unit of work, and every multi-record
// mutation is committed through a single storage transaction so partial
// state is never observable. The engine itself never logs; every failure
// is a typed error returned to the caller.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"math/big"

	"github.com/curiolabs/curio/internal/asset"
	"github.com/curiolabs/curio/internal/cachemanager"
	"github.com/curiolabs/curio/internal/pubsub"
	"github.com/curiolabs/curio/internal/storage"
)

// Event is the payload published after a successful mutation. From is
// empty on mint, To is empty on burn.
type Event struct {
	ID   asset.ID
	From asset.AccountID
	To   asset.AccountID
}

// Registry is the top-level engine over a transactional key-value store.
type Registry struct {
	store  storage.Store
	limits asset.Limits
	broker *pubsub.Broker[Event]
	cache  cachemanager.CacheManager[string, asset.Info]
}

// Option configures optional registry collaborators.
type Option func(*Registry)

// WithBroker attaches an event broker; the registry publishes an event
// after every successful mint, burn, and transfer.
func WithBroker(broker *pubsub.Broker[Event]) Option {
	return func(r *Registry) { r.broker = broker }
}

// WithCache attaches a record cache for asset attribute lookups. The cache
// is a pure optimization; behavior is identical without it.
func WithCache(cache cachemanager.CacheManager[string, asset.Info]) Option {
	return func(r *Registry) { r.cache = cache }
}

// New creates a registry over the given store with the given limit policy.
func New(store storage.Store, limits asset.Limits, opts ...Option) (*Registry, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("limit policy: %w", err)
	}

	r := &Registry{store: store, limits: limits}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Limits returns the registry's capacity policy.
func (r *Registry) Limits() asset.Limits {
	return r.limits
}

// Total returns the number of assets currently in existence.
func (r *Registry) Total() (*big.Int, error) {
	var total *big.Int
	err := r.store.View(func(tx storage.Tx) error {
		var err error
		total, err = getCounter(tx, keyTotal)
		return err
	})
	if err != nil {
		return nil, err
	}
	return total, nil
}

// Burned returns the number of assets ever destroyed.
func (r *Registry) Burned() (*big.Int, error) {
	var burned *big.Int
	err := r.store.View(func(tx storage.Tx) error {
		var err error
		burned, err = getCounter(tx, keyBurned)
		return err
	})
	if err != nil {
		return nil, err
	}
	return burned, nil
}

// TotalForAccount returns the number of assets the account currently
// owns; zero for an unknown account.
func (r *Registry) TotalForAccount(owner asset.AccountID) (uint64, error) {
	var count uint64
	err := r.store.View(func(tx storage.Tx) error {
		index, err := getIndex(tx, owner)
		if err != nil {
			return err
		}
		count = uint64(len(index))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// OwnerOf returns the account that owns the asset.
// Returns asset.ErrAssetNotFound if the asset does not exist.
func (r *Registry) OwnerOf(id asset.ID) (asset.AccountID, error) {
	var owner asset.AccountID
	err := r.store.View(func(tx storage.Tx) error {
		found, err := getOwner(tx, id)
		if err != nil {
			return err
		}
		owner = found
		return nil
	})
	if err != nil {
		return "", err
	}
	return owner, nil
}

// ListAssets returns the assets the account owns, in ascending ID order,
// with their identity attributes. Empty for an unknown account.
func (r *Registry) ListAssets(owner asset.AccountID) ([]asset.Identified, error) {
	var assets []asset.Identified
	err := r.store.View(func(tx storage.Tx) error {
		index, err := getIndex(tx, owner)
		if err != nil {
			return err
		}
		assets = make([]asset.Identified, 0, len(index))
		for _, id := range index {
			info, err := r.getInfo(tx, id)
			if err != nil {
				return err
			}
			assets = append(assets, asset.Identified{ID: id, Info: info})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// Assets returns a lazy, restartable view of the account's assets in
// ascending ID order. The store is re-read each time the sequence is
// ranged over; a storage failure ends the iteration early.
func (r *Registry) Assets(owner asset.AccountID) iter.Seq[asset.Identified] {
	return func(yield func(asset.Identified) bool) {
		assets, err := r.ListAssets(owner)
		if err != nil {
			return
		}
		for _, a := range assets {
			if !yield(a) {
				return
			}
		}
	}
}

// Mint creates a new asset from the attribute set and assigns it to
// owner, returning the derived ID.
//
// Fails with asset.ErrDuplicateAsset if an asset with the same attributes
// exists, asset.ErrGlobalLimitReached at the global ceiling, and
// asset.ErrOwnerLimitReached at the owner's ceiling. All effects commit
// together or not at all.
func (r *Registry) Mint(owner asset.AccountID, info asset.Info) (asset.ID, error) {
	id := asset.DeriveID(info)

	err := r.store.Update(func(tx storage.Tx) error {
		if _, err := tx.Get(infoKey(id)); err == nil {
			return asset.ErrDuplicateAsset
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("check duplicate: %w", err)
		}

		total, err := getCounter(tx, keyTotal)
		if err != nil {
			return err
		}
		if total.Cmp(r.limits.AssetLimit) >= 0 {
			return asset.ErrGlobalLimitReached
		}

		index, err := getIndex(tx, owner)
		if err != nil {
			return err
		}
		if uint64(len(index)) >= r.limits.UserAssetLimit {
			return asset.ErrOwnerLimitReached
		}

		index, err = index.Insert(id)
		if err != nil {
			return err
		}
		if err := putIndex(tx, owner, index); err != nil {
			return err
		}
		if err := tx.Put(ownerKey(id), []byte(owner)); err != nil {
			return err
		}
		payload, err := json.Marshal(info)
		if err != nil {
			return fmt.Errorf("encode asset info: %w", err)
		}
		if err := tx.Put(infoKey(id), payload); err != nil {
			return err
		}
		return putCounter(tx, keyTotal, total.Add(total, big.NewInt(1)))
	})
	if err != nil {
		return asset.ID{}, err
	}

	if r.cache != nil {
		r.cache.Set(context.Background(), id.Hex(), info, cachemanager.DefaultExpiration)
	}
	r.publish(pubsub.MintedEvent, Event{ID: id, To: owner})
	return id, nil
}

// Burn permanently destroys the asset. Fails with asset.ErrAssetNotFound
// if it does not exist. Burning erases every record of the asset, so the
// same content may later be minted as a fresh asset with the same derived
// ID; the burned counter only ever grows.
func (r *Registry) Burn(id asset.ID) error {
	var owner asset.AccountID

	err := r.store.Update(func(tx storage.Tx) error {
		var err error
		owner, err = getOwner(tx, id)
		if err != nil {
			return err
		}

		index, err := getIndex(tx, owner)
		if err != nil {
			return err
		}
		index, err = index.Remove(id)
		if err != nil {
			return fmt.Errorf("owner index out of sync for %s: %w", id, err)
		}
		if err := putIndex(tx, owner, index); err != nil {
			return err
		}
		if err := tx.Delete(ownerKey(id)); err != nil {
			return err
		}
		if err := tx.Delete(infoKey(id)); err != nil {
			return err
		}

		total, err := getCounter(tx, keyTotal)
		if err != nil {
			return err
		}
		if total.Sign() <= 0 {
			return fmt.Errorf("total counter out of sync: %s", total)
		}
		if err := putCounter(tx, keyTotal, total.Sub(total, big.NewInt(1))); err != nil {
			return err
		}

		burned, err := getCounter(tx, keyBurned)
		if err != nil {
			return err
		}
		return putCounter(tx, keyBurned, burned.Add(burned, big.NewInt(1)))
	})
	if err != nil {
		return err
	}

	if r.cache != nil {
		_ = r.cache.Delete(context.Background(), id.Hex())
	}
	r.publish(pubsub.BurnedEvent, Event{ID: id, From: owner})
	return nil
}

// Transfer reassigns the asset to newOwner.
//
// Fails with asset.ErrAssetNotFound if the asset does not exist and
// asset.ErrOwnerLimitReached if newOwner is at their ceiling. A transfer
// to the current owner is a committed no-op that succeeds regardless of
// that owner's limit. The global count never changes.
func (r *Registry) Transfer(newOwner asset.AccountID, id asset.ID) error {
	var from asset.AccountID

	err := r.store.Update(func(tx storage.Tx) error {
		var err error
		from, err = getOwner(tx, id)
		if err != nil {
			return err
		}
		if from == newOwner {
			return nil
		}

		destIndex, err := getIndex(tx, newOwner)
		if err != nil {
			return err
		}
		if uint64(len(destIndex)) >= r.limits.UserAssetLimit {
			return asset.ErrOwnerLimitReached
		}

		srcIndex, err := getIndex(tx, from)
		if err != nil {
			return err
		}
		srcIndex, err = srcIndex.Remove(id)
		if err != nil {
			return fmt.Errorf("owner index out of sync for %s: %w", id, err)
		}
		if err := putIndex(tx, from, srcIndex); err != nil {
			return err
		}

		destIndex, err = destIndex.Insert(id)
		if err != nil {
			return err
		}
		if err := putIndex(tx, newOwner, destIndex); err != nil {
			return err
		}

		return tx.Put(ownerKey(id), []byte(newOwner))
	})
	if err != nil {
		return err
	}

	r.publish(pubsub.TransferredEvent, Event{ID: id, From: from, To: newOwner})
	return nil
}

func (r *Registry) publish(eventType pubsub.EventType, event Event) {
	if r.broker != nil {
		r.broker.Publish(eventType, event)
	}
}

// getInfo loads an asset's attributes, consulting the record cache first.
func (r *Registry) getInfo(tx storage.Tx, id asset.ID) (asset.Info, error) {
	if r.cache != nil {
		if info, ok := r.cache.Get(context.Background(), id.Hex()); ok {
			return info, nil
		}
	}

	payload, err := tx.Get(infoKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("asset info missing for %s: %w", id, asset.ErrAssetNotFound)
	}
	if err != nil {
		return nil, err
	}

	var info asset.Info
	if err := json.Unmarshal(payload, &info); err != nil {
		return nil, fmt.Errorf("decode asset info: %w", err)
	}
	if r.cache != nil {
		r.cache.Set(context.Background(), id.Hex(), info, cachemanager.DefaultExpiration)
	}
	return info, nil
}

func getOwner(tx storage.Tx, id asset.ID) (asset.AccountID, error) {
	payload, err := tx.Get(ownerKey(id))
	if errors.Is(err, storage.ErrNotFound) {
		return "", asset.ErrAssetNotFound
	}
	if err != nil {
		return "", err
	}
	return asset.AccountID(payload), nil
}

func getIndex(tx storage.Tx, owner asset.AccountID) (asset.OwnerIndex, error) {
	payload, err := tx.Get(indexKey(owner))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var index asset.OwnerIndex
	if err := json.Unmarshal(payload, &index); err != nil {
		return nil, fmt.Errorf("decode owner index: %w", err)
	}
	return index, nil
}

// putIndex re-encodes the whole index under one key; an empty index is
// deleted rather than stored.
func putIndex(tx storage.Tx, owner asset.AccountID, index asset.OwnerIndex) error {
	if len(index) == 0 {
		return tx.Delete(indexKey(owner))
	}
	payload, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encode owner index: %w", err)
	}
	return tx.Put(indexKey(owner), payload)
}

func getCounter(tx storage.Tx, key string) (*big.Int, error) {
	payload, err := tx.Get(key)
	if errors.Is(err, storage.ErrNotFound) {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}

	counter, ok := new(big.Int).SetString(string(payload), 10)
	if !ok {
		return nil, fmt.Errorf("decode counter %s: %q is not a decimal integer", key, payload)
	}
	return counter, nil
}

func putCounter(tx storage.Tx, key string, counter *big.Int) error {
	return tx.Put(key, []byte(counter.String()))
}
