package cache_test

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/testutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestValidatorPubkeyCache_BuildFromState(t *testing.T) {
	st, keys := testutil.GenesisState(t, 4)
	c, err := cache.NewValidatorPubkeyCache(st)
	require.NoError(t, err)

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)

	view, err := c.View()
	require.NoError(t, err)
	defer view.Release()

	for i := 0; i < 4; i++ {
		pub := view.Get(types.ValidatorIndex(i))
		require.NotNil(t, pub, "Missing pubkey for validator %d", i)
		assert.DeepEqual(t, keys[i].PublicKey().Marshal(), pub.Marshal())
	}
	assert.Equal(t, true, view.Get(4) == nil, "Expected nil for unknown index")
}

func TestValidatorPubkeyCache_AppendOnly(t *testing.T) {
	st, _ := testutil.GenesisState(t, 2)
	c, err := cache.NewValidatorPubkeyCache(st)
	require.NoError(t, err)

	key, err := bls.RandKey()
	require.NoError(t, err)
	require.NoError(t, c.AddPubkeys([][]byte{key.PublicKey().Marshal()}))

	n, err := c.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)

	view, err := c.View()
	require.NoError(t, err)
	defer view.Release()
	assert.DeepEqual(t, key.PublicKey().Marshal(), view.Get(2).Marshal())
}
