package memory_test

import (
	"testing"

	"github.com/curiolabs/curio/internal/testutil"
)

func TestMemoryStore_Contract(t *testing.T) {
	testutil.RunStoreSuite(t, testutil.NewMemoryStore)
}
