package sliceutil_test

import (
	"testing"

	"github.com/prysmaticlabs/attestation/shared/sliceutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
)

func TestSplitOffset(t *testing.T) {
	testCases := []struct {
		listSize uint64
		chunks   uint64
		index    uint64
		result   uint64
	}{
		{30, 3, 2, 20},
		{1000, 10, 60, 6000},
		{2482, 10, 70, 17374},
		{323, 98, 56, 184},
		{273, 8, 6, 204},
		{3274, 98, 256, 8552},
		{23, 3, 2, 15},
		{23, 3, 9, 69},
	}
	for _, tt := range testCases {
		result := sliceutil.SplitOffset(tt.listSize, tt.chunks, tt.index)
		assert.Equal(t, tt.result, result)
	}
}

func TestIsInUint64(t *testing.T) {
	assert.Equal(t, true, sliceutil.IsInUint64(2, []uint64{1, 2, 3}))
	assert.Equal(t, false, sliceutil.IsInUint64(4, []uint64{1, 2, 3}))
}

func TestSubsetUint64(t *testing.T) {
	assert.Equal(t, true, sliceutil.SubsetUint64([]uint64{1, 2}, []uint64{1, 2, 3}))
	assert.Equal(t, false, sliceutil.SubsetUint64([]uint64{1, 4}, []uint64{1, 2, 3}))
	assert.Equal(t, false, sliceutil.SubsetUint64([]uint64{1, 1}, []uint64{1, 2, 3}))
}
