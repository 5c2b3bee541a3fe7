package cache

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func committeesForTest(epoch types.Epoch, targetRoot [32]byte, validatorCount uint64) *Committees {
	indices := make([]types.ValidatorIndex, validatorCount)
	for i := uint64(0); i < validatorCount; i++ {
		indices[i] = types.ValidatorIndex(i)
	}
	return &Committees{
		CommitteeCount:  uint64(params.BeaconConfig().SlotsPerEpoch),
		Epoch:           epoch,
		TargetRoot:      targetRoot,
		ShuffledIndices: indices,
		SortedIndices:   indices,
	}
}

func TestCommitteeCache_RoundTrip(t *testing.T) {
	c := NewCommitteesCache()
	targetRoot := [32]byte{1}

	cached, err := c.Get(1, targetRoot)
	require.NoError(t, err)
	assert.Equal(t, (*Committees)(nil), cached, "Expected a miss on an empty cache")

	committees := committeesForTest(1, targetRoot, 64)
	require.NoError(t, c.AddCommitteeShuffledList(committees))

	cached, err = c.Get(1, targetRoot)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.DeepEqual(t, committees.ShuffledIndices, cached.ShuffledIndices)

	// A different target root with the same epoch misses.
	cached, err = c.Get(1, [32]byte{2})
	require.NoError(t, err)
	assert.Equal(t, (*Committees)(nil), cached)
}

func TestCommitteeCache_InsertIsIdempotent(t *testing.T) {
	c := NewCommitteesCache()
	targetRoot := [32]byte{3}

	first := committeesForTest(2, targetRoot, 64)
	require.NoError(t, c.AddCommitteeShuffledList(first))

	// A second insert under the same key keeps the winner's entry.
	second := committeesForTest(2, targetRoot, 32)
	require.NoError(t, c.AddCommitteeShuffledList(second))

	cached, err := c.Get(2, targetRoot)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, 64, len(cached.ShuffledIndices), "Second insert overwrote the first entry")
}

func TestCommittees_BeaconCommittee(t *testing.T) {
	committees := committeesForTest(0, [32]byte{}, 64)
	perSlot := committees.CommitteesPerSlot()
	assert.Equal(t, uint64(1), perSlot)

	committee := committees.BeaconCommittee(0, 0)
	require.NotNil(t, committee)
	assert.Equal(t, 64/int(params.BeaconConfig().SlotsPerEpoch), len(committee))

	// Index beyond the committees of the slot yields no committee.
	assert.Equal(t, true, committees.BeaconCommittee(0, types.CommitteeIndex(perSlot)) == nil)

	// A slot outside the cached epoch yields no committee.
	assert.Equal(t, true, committees.BeaconCommittee(params.BeaconConfig().SlotsPerEpoch, 0) == nil)
}
