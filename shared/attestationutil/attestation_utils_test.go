package attestationutil_test

import (
	"context"
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/attestationutil"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestAttestingIndices(t *testing.T) {
	committee := []types.ValidatorIndex{25, 3, 12, 9}
	bits := bitfield.NewBitlist(4)
	bits.SetBitAt(0, true)
	bits.SetBitAt(2, true)

	indices, err := attestationutil.AttestingIndices(bits, committee)
	require.NoError(t, err)
	assert.DeepEqual(t, []uint64{25, 12}, indices)
}

func TestAttestingIndices_LengthMismatch(t *testing.T) {
	committee := []types.ValidatorIndex{25, 3, 12, 9}
	bits := bitfield.NewBitlist(5)
	_, err := attestationutil.AttestingIndices(bits, committee)
	assert.ErrorContains(t, "bitfield length 5 is not equal to committee length 4", err)
}

func TestConvertToIndexed_SortsAscending(t *testing.T) {
	committee := []types.ValidatorIndex{41, 7, 19}
	bits := bitfield.NewBitlist(3)
	bits.SetBitAt(0, true)
	bits.SetBitAt(1, true)
	att := &ethpb.Attestation{
		AggregationBits: bits,
		Data: &ethpb.AttestationData{
			BeaconBlockRoot: make([]byte, 32),
			Source:          &ethpb.Checkpoint{Root: make([]byte, 32)},
			Target:          &ethpb.Checkpoint{Root: make([]byte, 32)},
		},
		Signature: make([]byte, 96),
	}
	indexed, err := attestationutil.ConvertToIndexed(context.Background(), att, committee)
	require.NoError(t, err)
	assert.DeepEqual(t, []uint64{7, 41}, indexed.AttestingIndices)
}

func TestIsValidAttestationIndices(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint64
		wantErr string
	}{
		{name: "sorted and unique", indices: []uint64{1, 2, 3}},
		{name: "empty", indices: []uint64{}, wantErr: "expected non-empty"},
		{name: "unsorted", indices: []uint64{3, 2}, wantErr: "not uniquely sorted"},
		{name: "duplicate", indices: []uint64{2, 2}, wantErr: "not uniquely sorted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indexed := &ethpb.IndexedAttestation{
				AttestingIndices: tt.indices,
				Data: &ethpb.AttestationData{
					Target: &ethpb.Checkpoint{Root: make([]byte, 32)},
				},
				Signature: make([]byte, 96),
			}
			err := attestationutil.IsValidAttestationIndices(context.Background(), indexed)
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				assert.ErrorContains(t, tt.wantErr, err)
			}
		})
	}
}

func TestCheckPointIsEqual(t *testing.T) {
	root := make([]byte, 32)
	assert.Equal(t, true, attestationutil.CheckPointIsEqual(
		&ethpb.Checkpoint{Epoch: 1, Root: root},
		&ethpb.Checkpoint{Epoch: 1, Root: root},
	))
	assert.Equal(t, false, attestationutil.CheckPointIsEqual(
		&ethpb.Checkpoint{Epoch: 1, Root: root},
		&ethpb.Checkpoint{Epoch: 2, Root: root},
	))
}
