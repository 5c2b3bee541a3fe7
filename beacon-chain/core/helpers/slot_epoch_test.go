package helpers

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
)

func TestSlotToEpoch(t *testing.T) {
	tests := []struct {
		slot  types.Slot
		epoch types.Epoch
	}{
		{slot: 0, epoch: 0},
		{slot: 50, epoch: 1},
		{slot: 64, epoch: 2},
		{slot: 128, epoch: 4},
		{slot: 200, epoch: 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.epoch, SlotToEpoch(tt.slot), "SlotToEpoch(%d)", tt.slot)
	}
}

func TestStartSlot(t *testing.T) {
	tests := []struct {
		epoch types.Epoch
		slot  types.Slot
	}{
		{epoch: 0, slot: 0},
		{epoch: 1, slot: 32},
		{epoch: 10, slot: 320},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.slot, StartSlot(tt.epoch), "StartSlot(%d)", tt.epoch)
	}
}

func TestSlotsSinceEpochStart(t *testing.T) {
	assert.Equal(t, types.Slot(0), SlotsSinceEpochStart(64))
	assert.Equal(t, types.Slot(5), SlotsSinceEpochStart(69))
}

func TestIsEpochStart(t *testing.T) {
	epochLength := params.BeaconConfig().SlotsPerEpoch
	assert.Equal(t, true, IsEpochStart(0))
	assert.Equal(t, true, IsEpochStart(epochLength*2))
	assert.Equal(t, false, IsEpochStart(epochLength+1))
}

func TestIsEpochEnd(t *testing.T) {
	epochLength := params.BeaconConfig().SlotsPerEpoch
	assert.Equal(t, true, IsEpochEnd(epochLength-1))
	assert.Equal(t, false, IsEpochEnd(epochLength))
}
