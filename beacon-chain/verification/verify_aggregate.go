package verification

import (
	"context"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/attestationutil"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
	"github.com/prysmaticlabs/attestation/shared/params"
	"go.opencensus.io/trace"
)

// VerifyAggregate returns a verified wrapper if the signed aggregate is valid
// to be (re)published on the gossip network. On failure the slashing
// classifier is consulted, rejected attestations with a known or derivable
// indexed form reach the slasher sink exactly once.
func (s *Service) VerifyAggregate(
	ctx context.Context,
	signedAggregate *ethpb.SignedAggregateAttestationAndProof,
) (*VerifiedAggregate, error) {
	verified, slashInfo := s.VerifyAggregateSlashable(ctx, signedAggregate)
	if slashInfo != nil {
		return nil, s.processSlashInfo(ctx, slashInfo)
	}
	return verified, nil
}

// VerifyAggregateSlashable behaves like VerifyAggregate but leaves the
// slasher hand-off to the caller, returning the full slashing classification
// of the failure.
func (s *Service) VerifyAggregateSlashable(
	ctx context.Context,
	signedAggregate *ethpb.SignedAggregateAttestationAndProof,
) (*VerifiedAggregate, SlashInfo) {
	ctx, span := trace.StartSpan(ctx, "verification.VerifyAggregateSlashable")
	defer span.End()

	if signedAggregate == nil || signedAggregate.Message == nil {
		err := InvalidAttestationError{Err: errors.New("nil signed aggregate and proof")}
		return nil, &SignatureNotChecked{Failure: err}
	}
	att := signedAggregate.Message.Aggregate
	aggregatorIndex := signedAggregate.Message.AggregatorIndex

	attRoot, err := s.verifyAggregateEarlyChecks(signedAggregate)
	if err != nil {
		return nil, &SignatureNotChecked{Attestation: att, Failure: err}
	}

	var indexedAtt *ethpb.IndexedAttestation
	mapErr := s.mapAttestationCommittee(ctx, att, func(committee []types.ValidatorIndex, committeesPerSlot uint64) error {
		// Ensure the selection proof elects this aggregator for the slot.
		isAggregator, err := helpers.IsAggregator(uint64(len(committee)), signedAggregate.Message.SelectionProof)
		if err != nil {
			return internalError(err)
		}
		if !isAggregator {
			return InvalidSelectionProofError{AggregatorIndex: aggregatorIndex}
		}

		// Ensure the aggregator is a member of the committee for which it is
		// aggregating.
		inCommittee := false
		for _, i := range committee {
			if i == aggregatorIndex {
				inCommittee = true
				break
			}
		}
		if !inCommittee {
			return AggregatorNotInCommitteeError{AggregatorIndex: aggregatorIndex}
		}

		idxAtt, err := attestationutil.ConvertToIndexed(ctx, att, committee)
		if err != nil {
			return InvalidAttestationError{Err: err}
		}
		indexedAtt = idxAtt
		return nil
	})
	if mapErr != nil {
		return nil, &SignatureNotChecked{Attestation: att, Failure: mapErr}
	}

	if err := s.verifySignedAggregateSignatures(ctx, signedAggregate, indexedAtt); err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			return nil, &SignatureInvalid{Failure: err}
		}
		return nil, &SignatureNotCheckedIndexed{Indexed: indexedAtt, Failure: err}
	}

	if err := s.verifyAggregateLateChecks(att, attRoot, aggregatorIndex); err != nil {
		return nil, &SignatureValid{Indexed: indexedAtt, Failure: err}
	}

	return &VerifiedAggregate{
		signedAggregate:    signedAggregate,
		indexedAttestation: indexedAtt,
	}, nil
}

// verifyAggregateEarlyChecks performs every check that needs no signature
// work, returning the attestation tree hash root used by the late checks.
func (s *Service) verifyAggregateEarlyChecks(signedAggregate *ethpb.SignedAggregateAttestationAndProof) ([32]byte, error) {
	att := signedAggregate.Message.Aggregate
	aggregatorIndex := signedAggregate.Message.AggregatorIndex

	if err := helpers.ValidateNilAttestation(att); err != nil {
		return [32]byte{}, InvalidAttestationError{Err: err}
	}
	if err := helpers.ValidateSlotTargetEpoch(att.Data); err != nil {
		return [32]byte{}, ErrBadTargetEpoch
	}

	// Ensure the attestation is within the last SLOTS_PER_EPOCH slots (with a
	// MAXIMUM_GOSSIP_CLOCK_DISPARITY allowance). Future
	// attestations are not queued for later processing, the gossip layer's
	// regossip behavior covers them.
	if err := s.verifyPropagationSlotRange(att); err != nil {
		return [32]byte{}, err
	}

	// Ensure the valid aggregated attestation has not already been seen locally.
	attRoot, err := att.HashTreeRoot()
	if err != nil {
		return [32]byte{}, internalError(errors.Wrap(err, "could not tree hash attestation"))
	}
	if s.observedAttestations.IsKnown(attRoot) {
		return [32]byte{}, AttestationAlreadyKnownError{Root: attRoot}
	}

	// Ensure there has been no other observed aggregate for this aggregator.
	// Do not observe yet, only observe once the aggregate has been verified.
	seen, err := s.observedAggregators.HasObserved(att.Data.Target.Epoch, aggregatorIndex)
	if err != nil {
		return [32]byte{}, mapObservationError(err, att.Data.Target.Epoch)
	}
	if seen {
		return [32]byte{}, AggregatorAlreadyKnownError{AggregatorIndex: aggregatorIndex, Epoch: att.Data.Target.Epoch}
	}

	// Ensure the block being voted for passes validation. Any known,
	// non-finalized processed block is in fork choice, which immediately
	// filters out attestations attesting to unprocessed blocks. The skip
	// slot restriction is not enforced for aggregates.
	if err := s.verifyHeadBlockIsKnown(att, 0 /* no max skip slots */); err != nil {
		return [32]byte{}, err
	}

	// Ensure the attestation has participants.
	if att.AggregationBits.Count() == 0 {
		return [32]byte{}, ErrEmptyAggregationBitfield
	}

	return attRoot, nil
}

// verifyAggregateLateChecks re-checks and writes the observation caches after
// signature verification. Writes are deferred until now to avoid polluting
// dedup state with unsigned data, and re-checked under lock to close the race
// window where two concurrent verifications of the same message both passed
// the early checks.
func (s *Service) verifyAggregateLateChecks(att *ethpb.Attestation, attRoot [32]byte, aggregatorIndex types.ValidatorIndex) error {
	if known := s.observedAttestations.Observe(attRoot); known {
		return AttestationAlreadyKnownError{Root: attRoot}
	}

	seen, err := s.observedAggregators.Observe(att.Data.Target.Epoch, aggregatorIndex)
	if err != nil {
		return mapObservationError(err, att.Data.Target.Epoch)
	}
	if seen {
		return PriorAttestationKnownError{ValidatorIndex: aggregatorIndex, Epoch: att.Data.Target.Epoch}
	}
	return nil
}

// verifyPropagationSlotRange checks the attestation slot against the clock
// with symmetric tolerance windows applied.
func (s *Service) verifyPropagationSlotRange(att *ethpb.Attestation) error {
	attestationSlot := att.Data.Slot
	disparity := params.BeaconNetworkConfig().MaximumGossipClockDisparity

	latestPermissibleSlot, err := s.cfg.Clock.NowWithFutureTolerance(disparity)
	if err != nil {
		return internalError(errors.Wrap(err, "could not read slot clock"))
	}
	if attestationSlot > latestPermissibleSlot {
		return FutureSlotError{AttestationSlot: attestationSlot, LatestPermissibleSlot: latestPermissibleSlot}
	}

	pastSlot, err := s.cfg.Clock.NowWithPastTolerance(disparity)
	if err != nil {
		return internalError(errors.Wrap(err, "could not read slot clock"))
	}
	// The subtraction saturates at zero near genesis.
	earliestPermissibleSlot := types.Slot(0)
	if pastSlot >= params.BeaconConfig().SlotsPerEpoch {
		earliestPermissibleSlot = pastSlot - params.BeaconConfig().SlotsPerEpoch
	}
	if attestationSlot < earliestPermissibleSlot {
		return PastSlotError{AttestationSlot: attestationSlot, EarliestPermissibleSlot: earliestPermissibleSlot}
	}
	return nil
}

// verifyHeadBlockIsKnown checks the block being voted for against the fork
// choice block index. The block root may be unknown either because the block
// was never verified or because it precedes finalization, both are grounds to
// drop the attestation without delaying consideration for later.
func (s *Service) verifyHeadBlockIsKnown(att *ethpb.Attestation, maxSkipSlots uint64) error {
	blockRoot := bytesutil.ToBytes32(att.Data.BeaconBlockRoot)
	blk := s.cfg.ForkChoice.Block(blockRoot)
	if blk == nil {
		return UnknownHeadBlockError{BeaconBlockRoot: blockRoot}
	}
	if blk.Slot > att.Data.Slot {
		return AttestsToFutureBlockError{BlockSlot: blk.Slot, AttestationSlot: att.Data.Slot}
	}
	if maxSkipSlots > 0 && att.Data.Slot > blk.Slot+types.Slot(maxSkipSlots) {
		return TooManySkippedSlotsError{HeadBlockSlot: blk.Slot, AttestationSlot: att.Data.Slot}
	}
	return nil
}

// mapObservationError converts observation cache failures into their
// taxonomy equivalents.
func mapObservationError(err error, attestationEpoch types.Epoch) error {
	var indexTooHigh cache.ValidatorIndexTooHighError
	if errors.As(err, &indexTooHigh) {
		return ValidatorIndexTooHighError{ValidatorIndex: indexTooHigh.Index}
	}
	var epochTooLow cache.EpochTooLowError
	if errors.As(err, &epochTooLow) {
		return PastEpochError{AttestationEpoch: attestationEpoch, LowestPermissibleEpoch: epochTooLow.LowestPermissible}
	}
	return internalError(err)
}
