package asset

import "errors"

// Domain errors. All are precondition violations returned synchronously to
// the caller; none are retryable and none leave partial state behind.
var (
	// ErrDuplicateAsset is returned when a mint would recreate an asset
	// whose derived ID already exists.
	ErrDuplicateAsset = errors.New("asset already exists")

	// ErrGlobalLimitReached is returned when a mint would exceed the
	// global asset limit.
	ErrGlobalLimitReached = errors.New("global asset limit reached")

	// ErrOwnerLimitReached is returned when a mint or transfer would push
	// the destination owner past the per-owner asset limit.
	ErrOwnerLimitReached = errors.New("owner asset limit reached")

	// ErrAssetNotFound is returned when an operation references an asset
	// that does not exist or has been burned.
	ErrAssetNotFound = errors.New("asset not found")
)
