package cache_test

import (
	"testing"
	"time"

	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/shared/testutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestHotStateCache_RoundTrip(t *testing.T) {
	c := cache.NewHotStateCache()
	root := [32]byte{'A'}

	assert.Equal(t, false, c.Has(root))
	st, _ := testutil.GenesisState(t, 1)
	c.Put(root, st)
	// Ristretto applies writes asynchronously.
	time.Sleep(10 * time.Millisecond)

	require.Equal(t, true, c.Has(root))
	cached := c.Get(root)
	require.NotNil(t, cached)
	assert.Equal(t, st.Slot(), cached.Slot())

	c.Delete(root)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, false, c.Has(root))
}
