package slotutil_test

import (
	"testing"
	"time"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/roughtime"
	"github.com/prysmaticlabs/attestation/shared/slotutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestClock_CurrentSlot(t *testing.T) {
	secsPerSlot := time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second
	genesis := roughtime.Now().Add(-10*secsPerSlot - time.Second)
	clock := slotutil.NewClock(genesis)

	slot, err := clock.CurrentSlot()
	require.NoError(t, err)
	assert.Equal(t, types.Slot(10), slot)
}

func TestClock_BeforeGenesis(t *testing.T) {
	clock := slotutil.NewClock(roughtime.Now().Add(time.Hour))
	_, err := clock.CurrentSlot()
	require.ErrorIs(t, err, slotutil.ErrUnableToReadSlot)
}

func TestClock_FutureTolerance(t *testing.T) {
	secsPerSlot := time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second
	// A fraction of a second before the start of slot 10.
	genesis := roughtime.Now().Add(-10*secsPerSlot + 200*time.Millisecond)
	clock := slotutil.NewClock(genesis)

	slot, err := clock.CurrentSlot()
	require.NoError(t, err)
	assert.Equal(t, types.Slot(9), slot)

	slot, err = clock.NowWithFutureTolerance(500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(10), slot, "Future tolerance did not advance the clock into the next slot")
}

func TestClock_PastTolerance(t *testing.T) {
	secsPerSlot := time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second
	// A fraction of a second after the start of slot 10.
	genesis := roughtime.Now().Add(-10*secsPerSlot - 200*time.Millisecond)
	clock := slotutil.NewClock(genesis)

	slot, err := clock.CurrentSlot()
	require.NoError(t, err)
	assert.Equal(t, types.Slot(10), slot)

	slot, err = clock.NowWithPastTolerance(500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, types.Slot(9), slot, "Past tolerance did not move the clock into the previous slot")
}
