package helpers

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestShuffleList_Vs_ShuffledIndex(t *testing.T) {
	listSize := uint64(1000)
	seed := [32]byte{123, 42}
	list := make([]types.ValidatorIndex, listSize)
	for i := uint64(0); i < listSize; i++ {
		list[i] = types.ValidatorIndex(i)
	}

	shuffledListByIndex := make([]types.ValidatorIndex, listSize)
	for i := uint64(0); i < listSize; i++ {
		si, err := ShuffledIndex(types.ValidatorIndex(i), listSize, seed)
		require.NoError(t, err)
		shuffledListByIndex[si] = types.ValidatorIndex(i)
	}

	input := make([]types.ValidatorIndex, listSize)
	copy(input, list)
	shuffledList, err := ShuffleList(input, seed)
	require.NoError(t, err)
	assert.DeepEqual(t, shuffledListByIndex, shuffledList, "Shuffled lists are not equal")
}

func TestShuffleList_RoundTripThroughUnshuffle(t *testing.T) {
	listSize := uint64(512)
	seed := [32]byte{7, 7, 7}
	list := make([]types.ValidatorIndex, listSize)
	for i := uint64(0); i < listSize; i++ {
		list[i] = types.ValidatorIndex(i)
	}

	shuffled := make([]types.ValidatorIndex, listSize)
	copy(shuffled, list)
	shuffled, err := ShuffleList(shuffled, seed)
	require.NoError(t, err)

	unshuffled, err := UnshuffleList(shuffled, seed)
	require.NoError(t, err)
	assert.DeepEqual(t, list, unshuffled, "Unshuffle did not invert shuffle")
}

func TestShuffledIndex_Vs_UnShuffledIndex(t *testing.T) {
	listSize := uint64(100)
	seed := [32]byte{55}
	for i := uint64(0); i < listSize; i++ {
		si, err := ShuffledIndex(types.ValidatorIndex(i), listSize, seed)
		require.NoError(t, err)
		ui, err := UnShuffledIndex(si, listSize, seed)
		require.NoError(t, err)
		assert.Equal(t, types.ValidatorIndex(i), ui)
	}
}

func TestShuffledIndex_SeedChangesPermutation(t *testing.T) {
	listSize := uint64(100)
	same := true
	for i := uint64(0); i < listSize; i++ {
		a, err := ShuffledIndex(types.ValidatorIndex(i), listSize, [32]byte{1})
		require.NoError(t, err)
		b, err := ShuffledIndex(types.ValidatorIndex(i), listSize, [32]byte{2})
		require.NoError(t, err)
		if a != b {
			same = false
			break
		}
	}
	assert.Equal(t, false, same, "Different seeds produced the same permutation")
}

func TestShuffledIndex_OutOfBounds(t *testing.T) {
	_, err := ShuffledIndex(10, 10, [32]byte{})
	assert.ErrorContains(t, "out of bounds", err)
}
