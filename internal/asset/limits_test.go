package asset

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseLimits verifies decimal parsing and the u128 range check.
func TestParseLimits(t *testing.T) {
	limits, err := ParseLimits("1000", 5)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), limits.AssetLimit)
	require.Equal(t, uint64(5), limits.UserAssetLimit)
}

// TestParseLimits_FullRange verifies that 2^128-1 is accepted.
func TestParseLimits_FullRange(t *testing.T) {
	limits, err := ParseLimits("340282366920938463463374607431768211455", math.MaxUint64)
	require.NoError(t, err, "the u128 maximum should be accepted")
	require.Equal(t, maxAssetLimit, limits.AssetLimit)
}

// TestParseLimits_Invalid verifies rejection of malformed and
// out-of-range ceilings.
func TestParseLimits_Invalid(t *testing.T) {
	_, err := ParseLimits("not-a-number", 1)
	require.Error(t, err)

	_, err = ParseLimits("-1", 1)
	require.Error(t, err, "negative ceilings should be rejected")

	// 2^128 is one past the representable range.
	_, err = ParseLimits("340282366920938463463374607431768211456", 1)
	require.Error(t, err, "ceilings past u128 should be rejected")
}

// TestLimits_ValidateRequiresCeiling verifies the nil guard.
func TestLimits_ValidateRequiresCeiling(t *testing.T) {
	err := Limits{AssetLimit: nil, UserAssetLimit: 1}.Validate()
	require.Error(t, err, "a policy without a global ceiling should be rejected")
}

// TestDefaultLimits verifies that defaults sit at both maxima.
func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	require.NoError(t, limits.Validate())
	require.Equal(t, maxAssetLimit, limits.AssetLimit)
	require.Equal(t, uint64(math.MaxUint64), limits.UserAssetLimit)
}
