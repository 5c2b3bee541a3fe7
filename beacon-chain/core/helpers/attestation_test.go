package helpers_test

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestIsAggregator_ModuloOne(t *testing.T) {
	// Committees below the aggregator target always elect.
	priv, err := bls.RandKey()
	require.NoError(t, err)
	sig := priv.Sign([]byte("slot"))

	agg, err := helpers.IsAggregator(params.BeaconConfig().TargetAggregatorsPerCommittee, sig.Marshal())
	require.NoError(t, err)
	assert.Equal(t, true, agg)
}

func TestIsAggregator_LargeCommittee(t *testing.T) {
	// With a large committee only roughly 1 of committee/TARGET proofs elect.
	committeeSize := params.BeaconConfig().TargetAggregatorsPerCommittee * 64
	elected := 0
	runs := 64
	for i := 0; i < runs; i++ {
		priv, err := bls.RandKey()
		require.NoError(t, err)
		sig := priv.Sign([]byte{byte(i)})
		agg, err := helpers.IsAggregator(committeeSize, sig.Marshal())
		require.NoError(t, err)
		if agg {
			elected++
		}
	}
	assert.NotEqual(t, runs, elected, "Every proof elected an aggregator in a large committee")
}

func TestIsAggregated(t *testing.T) {
	bits := bitfield.NewBitlist(8)
	bits.SetBitAt(1, true)
	att := &ethpb.Attestation{AggregationBits: bits}
	assert.Equal(t, false, helpers.IsAggregated(att))
	bits.SetBitAt(2, true)
	assert.Equal(t, true, helpers.IsAggregated(att))
}

func TestComputeSubnetForAttestation(t *testing.T) {
	att := &ethpb.Attestation{
		Data: &ethpb.AttestationData{
			Slot:           34,
			CommitteeIndex: 1,
		},
	}
	committeesPerSlot := uint64(4)
	slotsSinceStart := uint64(34 % params.BeaconConfig().SlotsPerEpoch)
	expected := (slotsSinceStart*committeesPerSlot + 1) % params.BeaconNetworkConfig().AttestationSubnetCount
	assert.Equal(t, expected, helpers.ComputeSubnetForAttestation(committeesPerSlot, att))
}

func TestValidateNilAttestation(t *testing.T) {
	assert.NotNil(t, helpers.ValidateNilAttestation(nil))
	assert.NotNil(t, helpers.ValidateNilAttestation(&ethpb.Attestation{}))
	att := &ethpb.Attestation{
		AggregationBits: bitfield.NewBitlist(4),
		Data: &ethpb.AttestationData{
			Source: &ethpb.Checkpoint{},
			Target: &ethpb.Checkpoint{},
		},
	}
	assert.NoError(t, helpers.ValidateNilAttestation(att))
}

func TestValidateSlotTargetEpoch(t *testing.T) {
	data := &ethpb.AttestationData{
		Slot:   params.BeaconConfig().SlotsPerEpoch,
		Target: &ethpb.Checkpoint{Epoch: 1},
	}
	assert.NoError(t, helpers.ValidateSlotTargetEpoch(data))

	data.Target.Epoch = 2
	assert.ErrorContains(t, "does not match target epoch", helpers.ValidateSlotTargetEpoch(data))
}

func TestComputeSubnetFromCommitteeAndSlot(t *testing.T) {
	got := helpers.ComputeSubnetFromCommitteeAndSlot(2, types.CommitteeIndex(1), types.Slot(3))
	expected := (3*2 + 1) % params.BeaconNetworkConfig().AttestationSubnetCount
	assert.Equal(t, expected, got)
}
