package asset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestDeriveID_Deterministic verifies that the same attributes always
// produce the same ID regardless of construction order.
func TestDeriveID_Deterministic(t *testing.T) {
	a := Info{"series": "genesis", "number": "1"}
	b := Info{"number": "1", "series": "genesis"}

	require.Equal(t, DeriveID(a), DeriveID(b), "attribute insertion order must not change the ID")
}

// TestDeriveID_DistinctAttributes verifies that different attribute sets
// produce different IDs.
func TestDeriveID_DistinctAttributes(t *testing.T) {
	base := DeriveID(Info{"series": "genesis", "number": "1"})

	require.NotEqual(t, base, DeriveID(Info{"series": "genesis", "number": "2"}),
		"different values must produce different IDs")
	require.NotEqual(t, base, DeriveID(Info{"series": "genesis"}),
		"different keys must produce different IDs")
	require.NotEqual(t, base, DeriveID(Info{}),
		"the empty attribute set must have its own ID")
}

// TestProperty_IdentityInvariant verifies the identity invariant: equal
// attributes imply equal IDs and unequal attributes imply unequal IDs.
func TestProperty_IdentityInvariant(t *testing.T) {
	infoGen := rapid.MapOfN(
		rapid.StringMatching(`[a-z]{1,8}`),
		rapid.StringMatching(`[a-zA-Z0-9]{0,12}`),
		0, 8,
	)

	rapid.Check(t, func(t *rapid.T) {
		first := Info(infoGen.Draw(t, "first"))
		second := Info(infoGen.Draw(t, "second"))

		if first.Equal(second) {
			require.Equal(t, DeriveID(first), DeriveID(second),
				"equal attributes must derive equal IDs")
		} else {
			require.NotEqual(t, DeriveID(first), DeriveID(second),
				"distinct attributes must derive distinct IDs")
		}
	})
}

// TestParseID_RoundTrip verifies hex round-tripping of IDs.
func TestParseID_RoundTrip(t *testing.T) {
	id := DeriveID(Info{"color": "blue"})

	parsed, err := ParseID(id.Hex())
	require.NoError(t, err, "hex form should parse back")
	require.Equal(t, id, parsed)
}

// TestParseID_Invalid verifies rejection of malformed IDs.
func TestParseID_Invalid(t *testing.T) {
	_, err := ParseID("not-hex")
	require.Error(t, err, "non-hex input should be rejected")

	_, err = ParseID("abcd")
	require.Error(t, err, "wrong-length input should be rejected")
}

// TestID_JSONRoundTrip verifies that IDs marshal as hex strings, which the
// stored owner index depends on.
func TestID_JSONRoundTrip(t *testing.T) {
	id := DeriveID(Info{"shape": "cube"})

	data, err := json.Marshal([]ID{id})
	require.NoError(t, err)
	require.JSONEq(t, `["`+id.Hex()+`"]`, string(data), "IDs should marshal as hex strings")

	var decoded []ID
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, []ID{id}, decoded)
}

// TestID_Compare verifies byte-lexicographic ordering.
func TestID_Compare(t *testing.T) {
	var low, high ID
	low[0] = 0x01
	high[0] = 0x02

	require.Negative(t, low.Compare(high))
	require.Positive(t, high.Compare(low))
	require.Zero(t, low.Compare(low))
}
