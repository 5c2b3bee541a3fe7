package cache

import (
	"testing"

	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestObservedAttestations_ObserveOnce(t *testing.T) {
	c, err := NewObservedAttestations()
	require.NoError(t, err)

	root := [32]byte{1, 2, 3}
	assert.Equal(t, false, c.IsKnown(root))
	assert.Equal(t, false, c.Observe(root), "First observation reported already known")
	assert.Equal(t, true, c.IsKnown(root))
	assert.Equal(t, true, c.Observe(root), "Second observation reported unknown")
}

func TestObservedAttestations_DistinctRoots(t *testing.T) {
	c, err := NewObservedAttestations()
	require.NoError(t, err)

	assert.Equal(t, false, c.Observe([32]byte{1}))
	assert.Equal(t, false, c.Observe([32]byte{2}))
	assert.Equal(t, true, c.IsKnown([32]byte{1}))
	assert.Equal(t, true, c.IsKnown([32]byte{2}))
}
