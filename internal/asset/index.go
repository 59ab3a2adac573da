package asset

import "slices"

// OwnerIndex is the sorted, duplicate-free sequence of asset IDs held by
// one owner. The whole index is read and written as a single storage
// value, so every insert or remove re-encodes the full sequence; the
// per-owner limit exists to bound that cost.
//
// Invariant: strictly ascending by ID with no duplicate entries.
type OwnerIndex []ID

// Locate binary-searches the index for id. It returns the position where
// id is, or where it would be inserted, and whether it was found.
func (x OwnerIndex) Locate(id ID) (int, bool) {
	return slices.BinarySearchFunc(x, id, ID.Compare)
}

// Contains reports whether id is present in the index.
func (x OwnerIndex) Contains(id ID) bool {
	_, found := x.Locate(id)
	return found
}

// Insert returns the index with id added at its sorted position.
// Returns ErrDuplicateAsset if id is already present.
func (x OwnerIndex) Insert(id ID) (OwnerIndex, error) {
	pos, found := x.Locate(id)
	if found {
		return x, ErrDuplicateAsset
	}
	return slices.Insert(x, pos, id), nil
}

// Remove returns the index with id removed, preserving the order of the
// remaining entries. Returns ErrAssetNotFound if id is not present.
func (x OwnerIndex) Remove(id ID) (OwnerIndex, error) {
	pos, found := x.Locate(id)
	if !found {
		return x, ErrAssetNotFound
	}
	return slices.Delete(x, pos, pos+1), nil
}
