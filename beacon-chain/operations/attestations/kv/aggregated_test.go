package kv

import (
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func attWithBits(bits []uint64) *ethpb.Attestation {
	bl := bitfield.NewBitlist(8)
	for _, b := range bits {
		bl.SetBitAt(b, true)
	}
	return &ethpb.Attestation{
		AggregationBits: bl,
		Data: &ethpb.AttestationData{
			BeaconBlockRoot: make([]byte, 32),
			Source:          &ethpb.Checkpoint{Root: make([]byte, 32)},
			Target:          &ethpb.Checkpoint{Root: make([]byte, 32)},
		},
		Signature: make([]byte, 96),
	}
}

func TestSaveAggregatedAttestation(t *testing.T) {
	p := NewAttCaches()
	att := attWithBits([]uint64{1, 2})
	require.NoError(t, p.SaveAggregatedAttestation(att))
	assert.Equal(t, 1, p.AggregatedAttestationCount())

	has, err := p.HasAggregatedAttestation(att)
	require.NoError(t, err)
	assert.Equal(t, true, has)
}

func TestSaveAggregatedAttestation_RejectsUnaggregated(t *testing.T) {
	p := NewAttCaches()
	err := p.SaveAggregatedAttestation(attWithBits([]uint64{1}))
	assert.ErrorContains(t, "not aggregated", err)
}

func TestHasAggregatedAttestation_Subset(t *testing.T) {
	p := NewAttCaches()
	require.NoError(t, p.SaveAggregatedAttestation(attWithBits([]uint64{1, 2, 3})))

	has, err := p.HasAggregatedAttestation(attWithBits([]uint64{1, 2}))
	require.NoError(t, err)
	assert.Equal(t, true, has, "Covered bits should report as present")

	has, err = p.HasAggregatedAttestation(attWithBits([]uint64{4, 5}))
	require.NoError(t, err)
	assert.Equal(t, false, has)
}

func TestDeleteAggregatedAttestation(t *testing.T) {
	p := NewAttCaches()
	att := attWithBits([]uint64{1, 2})
	require.NoError(t, p.SaveAggregatedAttestation(att))
	require.NoError(t, p.DeleteAggregatedAttestation(att))
	assert.Equal(t, 0, p.AggregatedAttestationCount())

	// The seen-bits cache prevents re-adding what was already aggregated away.
	require.NoError(t, p.SaveAggregatedAttestation(att))
	assert.Equal(t, 0, p.AggregatedAttestationCount())
}
