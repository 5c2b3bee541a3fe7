package verification

import (
	"errors"
	"fmt"

	types "github.com/prysmaticlabs/eth2-types"
)

// Classification describes how the gossip layer should score the peer that
// sent a message which failed verification. The transport owns the scoring
// policy, this package only states what kind of failure occurred.
type Classification int

const (
	// ClassifyInvalid means, assuming the local clock is correct, the peer
	// has sent an objectively invalid message.
	ClassifyInvalid Classification = iota
	// ClassifyAmbiguous means the message may or may not be valid, e.g. it
	// duplicates something already observed. Peers must not be penalized.
	ClassifyAmbiguous
	// ClassifyInternal means verification hit a local fault and the message
	// validity is unknown. Peers must not be penalized.
	ClassifyInternal
)

var (
	// ErrEmptyAggregationBitfield is returned when an aggregate has no participants.
	ErrEmptyAggregationBitfield = errors.New("attestation aggregation bits are empty")
	// ErrInvalidSignature is returned when one or more signatures on the message failed verification.
	ErrInvalidSignature = errors.New("signature verification failed")
	// ErrBadTargetEpoch is returned when the target epoch does not match the epoch of the attestation slot.
	ErrBadTargetEpoch = errors.New("attestation target epoch does not match the epoch of its slot")
)

// FutureSlotError is returned when the attestation slot is later than the
// current slot with future clock disparity applied.
type FutureSlotError struct {
	AttestationSlot       types.Slot
	LatestPermissibleSlot types.Slot
}

func (e FutureSlotError) Error() string {
	return fmt.Sprintf("attestation slot %d is later than the latest permissible slot %d",
		e.AttestationSlot, e.LatestPermissibleSlot)
}

// PastSlotError is returned when the attestation slot precedes the earliest
// permissible slot with past clock disparity applied.
type PastSlotError struct {
	AttestationSlot         types.Slot
	EarliestPermissibleSlot types.Slot
}

func (e PastSlotError) Error() string {
	return fmt.Sprintf("attestation slot %d is earlier than the earliest permissible slot %d",
		e.AttestationSlot, e.EarliestPermissibleSlot)
}

// InvalidSelectionProofError is returned when the selection proof does not
// elect the aggregator.
type InvalidSelectionProofError struct {
	AggregatorIndex types.ValidatorIndex
}

func (e InvalidSelectionProofError) Error() string {
	return fmt.Sprintf("selection proof does not elect validator %d as an aggregator", e.AggregatorIndex)
}

// AggregatorNotInCommitteeError is returned when the aggregator is not a
// member of the committee it aggregates for.
type AggregatorNotInCommitteeError struct {
	AggregatorIndex types.ValidatorIndex
}

func (e AggregatorNotInCommitteeError) Error() string {
	return fmt.Sprintf("aggregator %d is not in the attestation committee", e.AggregatorIndex)
}

// AggregatorPubkeyUnknownError is returned when the aggregator index refers to
// a validator the pubkey cache has never seen.
type AggregatorPubkeyUnknownError struct {
	AggregatorIndex types.ValidatorIndex
}

func (e AggregatorPubkeyUnknownError) Error() string {
	return fmt.Sprintf("unknown public key for aggregator %d", e.AggregatorIndex)
}

// AttestationAlreadyKnownError is returned when the exact attestation has
// already been observed as a fully verified aggregate.
type AttestationAlreadyKnownError struct {
	Root [32]byte
}

func (e AttestationAlreadyKnownError) Error() string {
	return fmt.Sprintf("attestation %#x has already been observed", e.Root)
}

// AggregatorAlreadyKnownError is returned when an aggregate from the same
// aggregator has already been observed in the target epoch.
type AggregatorAlreadyKnownError struct {
	AggregatorIndex types.ValidatorIndex
	Epoch           types.Epoch
}

func (e AggregatorAlreadyKnownError) Error() string {
	return fmt.Sprintf("aggregate from aggregator %d in epoch %d has already been observed",
		e.AggregatorIndex, e.Epoch)
}

// ValidatorIndexTooHighError is returned when a validator index exceeds the
// permitted registry bound.
type ValidatorIndexTooHighError struct {
	ValidatorIndex types.ValidatorIndex
}

func (e ValidatorIndexTooHighError) Error() string {
	return fmt.Sprintf("validator index %d is higher than the maximum possible validator count", e.ValidatorIndex)
}

// UnknownHeadBlockError is returned when the beacon block root of the
// attestation is not known to fork choice, either because the block was never
// processed or because it precedes finalization.
type UnknownHeadBlockError struct {
	BeaconBlockRoot [32]byte
}

func (e UnknownHeadBlockError) Error() string {
	return fmt.Sprintf("unknown beacon block root %#x", e.BeaconBlockRoot)
}

// UnknownTargetRootError is returned when the target root is not known to
// fork choice.
type UnknownTargetRootError struct {
	Root [32]byte
}

func (e UnknownTargetRootError) Error() string {
	return fmt.Sprintf("unknown target root %#x", e.Root)
}

// NoCommitteeForSlotAndIndexError is returned when the resolved shuffling has
// no committee for the attestation's slot and committee index.
type NoCommitteeForSlotAndIndexError struct {
	Slot           types.Slot
	CommitteeIndex types.CommitteeIndex
}

func (e NoCommitteeForSlotAndIndexError) Error() string {
	return fmt.Sprintf("no committee exists for slot %d and committee index %d", e.Slot, e.CommitteeIndex)
}

// NotExactlyOneAggregationBitSetError is returned when an unaggregated
// attestation does not have exactly one aggregation bit set.
type NotExactlyOneAggregationBitSetError struct {
	Count uint64
}

func (e NotExactlyOneAggregationBitSetError) Error() string {
	return fmt.Sprintf("expected exactly one aggregation bit, got %d", e.Count)
}

// PriorAttestationKnownError is returned when a message from the validator has
// already been observed in the epoch.
type PriorAttestationKnownError struct {
	ValidatorIndex types.ValidatorIndex
	Epoch          types.Epoch
}

func (e PriorAttestationKnownError) Error() string {
	return fmt.Sprintf("attestation from validator %d in epoch %d has already been observed",
		e.ValidatorIndex, e.Epoch)
}

// FutureEpochError describes an attestation epoch beyond the epochs the
// observation caches may track. The observation caches bound epochs only from
// below, so no verification path in this package returns it.
type FutureEpochError struct {
	AttestationEpoch    types.Epoch
	MaxPermissibleEpoch types.Epoch
}

func (e FutureEpochError) Error() string {
	return fmt.Sprintf("attestation epoch %d is later than the maximum permissible epoch %d",
		e.AttestationEpoch, e.MaxPermissibleEpoch)
}

// PastEpochError is returned when the attestation epoch precedes the epochs
// still tracked by the observation caches.
type PastEpochError struct {
	AttestationEpoch        types.Epoch
	LowestPermissibleEpoch types.Epoch
}

func (e PastEpochError) Error() string {
	return fmt.Sprintf("attestation epoch %d is earlier than the lowest permissible epoch %d",
		e.AttestationEpoch, e.LowestPermissibleEpoch)
}

// AttestsToFutureBlockError is returned when an attestation votes for a block
// with a slot later than the attestation slot.
type AttestsToFutureBlockError struct {
	BlockSlot       types.Slot
	AttestationSlot types.Slot
}

func (e AttestsToFutureBlockError) Error() string {
	return fmt.Sprintf("attestation with slot %d attests to a block with the later slot %d",
		e.AttestationSlot, e.BlockSlot)
}

// InvalidSubnetError is returned when an unaggregated attestation arrived on
// the wrong subnet.
type InvalidSubnetError struct {
	Received uint64
	Expected uint64
}

func (e InvalidSubnetError) Error() string {
	return fmt.Sprintf("attestation was received on subnet %d, expected subnet %d", e.Received, e.Expected)
}

// TooManySkippedSlotsError is returned when the head block of an unaggregated
// attestation is too far behind the attestation slot, a DoS guard.
type TooManySkippedSlotsError struct {
	HeadBlockSlot   types.Slot
	AttestationSlot types.Slot
}

func (e TooManySkippedSlotsError) Error() string {
	return fmt.Sprintf("attestation at slot %d skips too many slots from its head block at slot %d",
		e.AttestationSlot, e.HeadBlockSlot)
}

// InvalidAttestationError wraps a structural state-processing rejection of the
// attestation, e.g. an aggregation bitfield whose length does not match the
// committee.
type InvalidAttestationError struct {
	Err error
}

func (e InvalidAttestationError) Error() string {
	return fmt.Sprintf("attestation failed state processing verification: %v", e.Err)
}

// Unwrap returns the wrapped processing failure.
func (e InvalidAttestationError) Unwrap() error {
	return e.Err
}

// BeaconChainError wraps an internal fault hit while verifying a message. The
// validity of the message is unknown and peers must not be penalized for it.
type BeaconChainError struct {
	Err error
}

func (e *BeaconChainError) Error() string {
	return fmt.Sprintf("internal error while verifying attestation: %v", e.Err)
}

// Unwrap returns the wrapped internal fault.
func (e *BeaconChainError) Unwrap() error {
	return e.Err
}

// internalError marks an error as an internal fault rather than a protocol
// rejection.
func internalError(err error) error {
	return &BeaconChainError{Err: err}
}

// Classify maps a verification failure to its peer-scoring intent.
func Classify(err error) Classification {
	var internal *BeaconChainError
	if errors.As(err, &internal) {
		return ClassifyInternal
	}
	switch {
	case errors.As(err, &AttestationAlreadyKnownError{}),
		errors.As(err, &AggregatorAlreadyKnownError{}),
		errors.As(err, &PriorAttestationKnownError{}),
		errors.As(err, &UnknownHeadBlockError{}):
		return ClassifyAmbiguous
	default:
		return ClassifyInvalid
	}
}
