package helpers

import (
	"encoding/binary"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/hashutil"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// ValidateNilAttestation checks if any composite field of input attestation is nil.
// Access to these nil fields will result in run time panic,
// it is recommended to run these checks as first line of defense.
func ValidateNilAttestation(attestation *ethpb.Attestation) error {
	if attestation == nil {
		return errors.New("attestation can't be nil")
	}
	if attestation.Data == nil {
		return errors.New("attestation's data can't be nil")
	}
	if attestation.Data.Source == nil {
		return errors.New("attestation's source can't be nil")
	}
	if attestation.Data.Target == nil {
		return errors.New("attestation's target can't be nil")
	}
	if attestation.AggregationBits == nil {
		return errors.New("attestation's bitfield can't be nil")
	}
	return nil
}

// ValidateSlotTargetEpoch checks if attestation data's epoch matches target checkpoint's epoch.
// It is recommended to run `ValidateNilAttestation` first to ensure `data.Target` can't be nil.
func ValidateSlotTargetEpoch(data *ethpb.AttestationData) error {
	if SlotToEpoch(data.Slot) != data.Target.Epoch {
		return errors.Errorf("slot %d does not match target epoch %d", data.Slot, data.Target.Epoch)
	}
	return nil
}

// IsAggregated returns true if the attestation is an aggregated attestation,
// false otherwise.
func IsAggregated(attestation *ethpb.Attestation) bool {
	return attestation.AggregationBits.Count() > 1
}

// IsAggregator returns true if the signature is from the input validator. The
// committee count is provided as an argument rather than an imported
// implementation from the spec definition. Having the committee count as an
// argument allows for cheaper computation at run time.
//
// Spec pseudocode definition:
//  def is_aggregator(state: BeaconState, slot: Slot, index: CommitteeIndex, slot_signature: BLSSignature) -> bool:
//    committee = get_beacon_committee(state, slot, index)
//    modulo = max(1, len(committee) // TARGET_AGGREGATORS_PER_COMMITTEE)
//    return bytes_to_uint64(hash(slot_signature)[0:8]) % modulo == 0
func IsAggregator(committeeCount uint64, slotSig []byte) (bool, error) {
	modulo := uint64(1)
	if committeeCount/params.BeaconConfig().TargetAggregatorsPerCommittee > 1 {
		modulo = committeeCount / params.BeaconConfig().TargetAggregatorsPerCommittee
	}

	b := hashutil.Hash(slotSig)
	return binary.LittleEndian.Uint64(b[:8])%modulo == 0, nil
}

// ComputeSubnetForAttestation returns the subnet for which the provided
// attestation will be broadcasted to. This differs from the spec definition by
// taking the committee count per slot as an argument, so callers that already
// resolved the committee do not need a state.
//
// Spec pseudocode definition:
// def compute_subnet_for_attestation(committees_per_slot: uint64, slot: Slot, committee_index: CommitteeIndex) -> uint64:
//    """
//    Compute the correct subnet for an attestation for Phase 0.
//    Note, this mimics expected Phase 1 behavior where attestations will be mapped to their shard subnet.
//    """
//    slots_since_epoch_start = uint64(slot % SLOTS_PER_EPOCH)
//    committees_since_epoch_start = committees_per_slot * slots_since_epoch_start
//
//    return uint64((committees_since_epoch_start + committee_index) % ATTESTATION_SUBNET_COUNT)
func ComputeSubnetForAttestation(committeesPerSlot uint64, att *ethpb.Attestation) uint64 {
	return ComputeSubnetFromCommitteeAndSlot(committeesPerSlot, att.Data.CommitteeIndex, att.Data.Slot)
}

// ComputeSubnetFromCommitteeAndSlot is a flattened version of
// ComputeSubnetForAttestation where we only pass in the relevant fields from
// the attestation as function arguments.
func ComputeSubnetFromCommitteeAndSlot(committeesPerSlot uint64, committeeIndex types.CommitteeIndex, attSlot types.Slot) uint64 {
	slotSinceStart := SlotsSinceEpochStart(attSlot)
	committeesSinceStart := committeesPerSlot * uint64(slotSinceStart)
	subnet := (committeesSinceStart + uint64(committeeIndex)) % params.BeaconNetworkConfig().AttestationSubnetCount
	return subnet
}
