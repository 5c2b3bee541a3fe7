package cache

import (
	"errors"
	"sync"
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestObservedAttesters_Monotonic(t *testing.T) {
	c := NewObservedAttesters(nil)

	seen, err := c.HasObserved(1, 42)
	require.NoError(t, err)
	assert.Equal(t, false, seen)

	already, err := c.Observe(1, 42)
	require.NoError(t, err)
	assert.Equal(t, false, already)

	already, err = c.Observe(1, 42)
	require.NoError(t, err)
	assert.Equal(t, true, already, "Second observation of the same pair reported unobserved")

	// The same index in another epoch is independent.
	seen, err = c.HasObserved(2, 42)
	require.NoError(t, err)
	assert.Equal(t, false, seen)
}

func TestObservedAttesters_CapacityBound(t *testing.T) {
	c := NewObservedAttesters(func() uint64 { return 10 })

	_, err := c.Observe(0, 9)
	require.NoError(t, err)

	_, err = c.Observe(0, 10)
	var tooHigh ValidatorIndexTooHighError
	require.Equal(t, true, errors.As(err, &tooHigh), "Expected ValidatorIndexTooHighError, got %v", err)
	assert.Equal(t, types.ValidatorIndex(10), tooHigh.Index)
}

func TestObservedAttesters_Prune(t *testing.T) {
	c := NewObservedAttesters(nil)
	_, err := c.Observe(1, 5)
	require.NoError(t, err)
	_, err = c.Observe(3, 5)
	require.NoError(t, err)

	c.Prune(2)

	_, err = c.HasObserved(1, 5)
	var tooLow EpochTooLowError
	require.Equal(t, true, errors.As(err, &tooLow), "Expected EpochTooLowError, got %v", err)

	seen, err := c.HasObserved(3, 5)
	require.NoError(t, err)
	assert.Equal(t, true, seen, "Pruning dropped an epoch above the lowest permissible epoch")
}

func TestObservedAttesters_ConcurrentObserversExactlyOneWins(t *testing.T) {
	c := NewObservedAttesters(nil)

	workers := 8
	wins := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			already, err := c.Observe(7, 123)
			require.NoError(t, err)
			wins <- !already
		}()
	}
	wg.Wait()
	close(wins)

	winners := 0
	for won := range wins {
		if won {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "Expected exactly one concurrent observer to win")
}
