// Package asset provides the pure domain layer for the registry with no
// infrastructure dependencies.
//
// It defines content-addressed asset identity, the per-owner sorted index,
// the capacity limit policy, and the domain error sentinels. The package
// has no knowledge of persistence or host concerns.
package asset

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// IDSize is the width of an asset identifier in bytes.
const IDSize = 32

// ID uniquely identifies an asset. It is derived from the asset's
// attributes, so equal attributes always produce an equal ID and distinct
// IDs always describe distinct attributes.
type ID [IDSize]byte

// AccountID identifies an asset owner. Account identity and authentication
// are host concerns; the registry treats the value as opaque.
type AccountID string

// Info is the attribute payload that determines an asset's identity.
type Info map[string]string

// Identified pairs an asset ID with the attributes that produced it.
type Identified struct {
	ID   ID   `json:"id"`
	Info Info `json:"info"`
}

// Canonical returns the canonical encoding of the attribute set.
// json.Marshal emits map keys in sorted order and cannot fail for a
// string-to-string map, so the encoding is deterministic.
func (i Info) Canonical() []byte {
	data, _ := json.Marshal(map[string]string(i))
	return data
}

// Equal reports whether two attribute sets are identical.
func (i Info) Equal(other Info) bool {
	return bytes.Equal(i.Canonical(), other.Canonical())
}

// DeriveID computes the identifier for an attribute set: BLAKE2b-256 over
// the canonical encoding. Deterministic and collision-resistant, so ID
// equality stands in for full attribute comparison.
func DeriveID(info Info) ID {
	return ID(blake2b.Sum256(info.Canonical()))
}

// Compare orders IDs byte-lexicographically, the same total order used by
// the owner index and the storage layer.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Hex returns the lowercase hex form of the ID.
func (id ID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id ID) String() string {
	return id.Hex()
}

// MarshalText encodes the ID as lowercase hex.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText decodes an ID from its hex form.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := ParseID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID decodes a hex-encoded asset ID.
func ParseID(s string) (ID, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return ID{}, fmt.Errorf("parse asset id: %w", err)
	}
	if len(raw) != IDSize {
		return ID{}, fmt.Errorf("parse asset id: want %d bytes, got %d", IDSize, len(raw))
	}
	var id ID
	copy(id[:], raw)
	return id, nil
}
