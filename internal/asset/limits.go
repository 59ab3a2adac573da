package asset

import (
	"fmt"
	"math"
	"math/big"
)

// maxAssetLimit is the largest representable global ceiling (2^128 - 1).
var maxAssetLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Limits is the immutable capacity policy consulted before any registry
// mutation. It never mutates state itself.
type Limits struct {
	// AssetLimit is the global ceiling on live assets (minted - burned).
	// Mint fails once the total reaches it. Unsigned 128-bit range.
	AssetLimit *big.Int

	// UserAssetLimit is the ceiling on assets any single account may own.
	// Mint and transfer-in fail once the destination is at it.
	UserAssetLimit uint64
}

// DefaultLimits returns a policy with both ceilings at their maximum.
func DefaultLimits() Limits {
	return Limits{
		AssetLimit:     new(big.Int).Set(maxAssetLimit),
		UserAssetLimit: math.MaxUint64,
	}
}

// ParseLimits builds a policy from a decimal global ceiling and a numeric
// per-owner ceiling, validating the u128 range.
func ParseLimits(assetLimit string, userAssetLimit uint64) (Limits, error) {
	ceiling, ok := new(big.Int).SetString(assetLimit, 10)
	if !ok {
		return Limits{}, fmt.Errorf("parse asset limit %q: not a decimal integer", assetLimit)
	}
	limits := Limits{AssetLimit: ceiling, UserAssetLimit: userAssetLimit}
	if err := limits.Validate(); err != nil {
		return Limits{}, err
	}
	return limits, nil
}

// Validate checks that the global ceiling is set and within the unsigned
// 128-bit range.
func (l Limits) Validate() error {
	if l.AssetLimit == nil {
		return fmt.Errorf("asset limit is required")
	}
	if l.AssetLimit.Sign() < 0 {
		return fmt.Errorf("asset limit %s is negative", l.AssetLimit)
	}
	if l.AssetLimit.Cmp(maxAssetLimit) > 0 {
		return fmt.Errorf("asset limit %s exceeds the unsigned 128-bit range", l.AssetLimit)
	}
	return nil
}
