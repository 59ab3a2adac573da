package registry

import "github.com/curiolabs/curio/internal/asset"

// Key layout for registry records. The owner index is stored under a
// single key per account and read/written whole.
const (
	keyTotal  = "meta/total"
	keyBurned = "meta/burned"

	prefixOwner = "asset/owner/"
	prefixInfo  = "asset/info/"
	prefixIndex = "owner/assets/"
)

func ownerKey(id asset.ID) string {
	return prefixOwner + id.Hex()
}

func infoKey(id asset.ID) string {
	return prefixInfo + id.Hex()
}

func indexKey(owner asset.AccountID) string {
	return prefixIndex + string(owner)
}
