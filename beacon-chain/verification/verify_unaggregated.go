package verification

import (
	"context"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"go.opencensus.io/trace"
)

// VerifyUnaggregated returns a verified wrapper if the attestation is valid
// to be (re)published on the gossip network. The subnet id is the subnet the
// attestation was received on, it is checked against the protocol's subnet
// derivation for the attestation data.
func (s *Service) VerifyUnaggregated(
	ctx context.Context,
	att *ethpb.Attestation,
	subnetID uint64,
) (*VerifiedUnaggregated, error) {
	verified, slashInfo := s.VerifyUnaggregatedSlashable(ctx, att, subnetID)
	if slashInfo != nil {
		return nil, s.processSlashInfo(ctx, slashInfo)
	}
	return verified, nil
}

// VerifyUnaggregatedSlashable behaves like VerifyUnaggregated but leaves the
// slasher hand-off to the caller, returning the full slashing classification
// of the failure.
func (s *Service) VerifyUnaggregatedSlashable(
	ctx context.Context,
	att *ethpb.Attestation,
	subnetID uint64,
) (*VerifiedUnaggregated, SlashInfo) {
	ctx, span := trace.StartSpan(ctx, "verification.VerifyUnaggregatedSlashable")
	defer span.End()

	if err := s.verifyUnaggregatedEarlyChecks(att); err != nil {
		return nil, &SignatureNotChecked{Attestation: att, Failure: err}
	}

	indexedAtt, committeesPerSlot, err := s.obtainIndexedAttestationAndCommitteesPerSlot(ctx, att)
	if err != nil {
		return nil, &SignatureNotChecked{Attestation: att, Failure: err}
	}

	validatorIndex, err := s.verifyUnaggregatedMiddleChecks(att, indexedAtt, committeesPerSlot, subnetID)
	if err != nil {
		return nil, &SignatureNotCheckedIndexed{Indexed: indexedAtt, Failure: err}
	}

	if err := s.verifyIndexedAttestationSignature(ctx, indexedAtt); err != nil {
		if errors.Is(err, ErrInvalidSignature) {
			return nil, &SignatureInvalid{Failure: err}
		}
		return nil, &SignatureNotCheckedIndexed{Indexed: indexedAtt, Failure: err}
	}

	if err := s.verifyUnaggregatedLateChecks(att, validatorIndex); err != nil {
		return nil, &SignatureValid{Indexed: indexedAtt, Failure: err}
	}

	return &VerifiedUnaggregated{
		attestation:        att,
		indexedAttestation: indexedAtt,
	}, nil
}

// verifyUnaggregatedEarlyChecks performs every check that needs neither the
// committee nor any signature work.
func (s *Service) verifyUnaggregatedEarlyChecks(att *ethpb.Attestation) error {
	if err := helpers.ValidateNilAttestation(att); err != nil {
		return InvalidAttestationError{Err: err}
	}
	if err := helpers.ValidateSlotTargetEpoch(att.Data); err != nil {
		return ErrBadTargetEpoch
	}

	// Ensure the attestation is within the last SLOTS_PER_EPOCH slots (with a
	// MAXIMUM_GOSSIP_CLOCK_DISPARITY allowance). Future
	// attestations are not queued for later processing.
	if err := s.verifyPropagationSlotRange(att); err != nil {
		return err
	}

	// Ensure the attestation is "unaggregated", it has exactly one
	// aggregation bit set.
	if numBits := att.AggregationBits.Count(); numBits != 1 {
		return NotExactlyOneAggregationBitSetError{Count: numBits}
	}

	// Attestations must be for a known block. Enforce the maximum skip
	// distance, a DoS guard applied to unaggregated attestations only.
	return s.verifyHeadBlockIsKnown(att, s.cfg.ImportMaxSkipSlots)
}

// verifyUnaggregatedMiddleChecks validates everything that needs the resolved
// committee but no signature work, returning the sole attesting validator.
func (s *Service) verifyUnaggregatedMiddleChecks(
	att *ethpb.Attestation,
	indexedAtt *ethpb.IndexedAttestation,
	committeesPerSlot uint64,
	subnetID uint64,
) (types.ValidatorIndex, error) {
	// Ensure the attestation arrived on the subnet the protocol derives for
	// its data.
	expectedSubnet := helpers.ComputeSubnetForAttestation(committeesPerSlot, att)
	if subnetID != expectedSubnet {
		return 0, InvalidSubnetError{Received: subnetID, Expected: expectedSubnet}
	}

	if len(indexedAtt.AttestingIndices) == 0 {
		return 0, NotExactlyOneAggregationBitSetError{Count: 0}
	}
	validatorIndex := types.ValidatorIndex(indexedAtt.AttestingIndices[0])

	// Ensure this is the first attestation received for the participating
	// validator in the epoch. Do not observe yet, only observe once the
	// attestation has been verified.
	seen, err := s.observedAttesters.HasObserved(att.Data.Target.Epoch, validatorIndex)
	if err != nil {
		return 0, mapObservationError(err, att.Data.Target.Epoch)
	}
	if seen {
		return 0, PriorAttestationKnownError{ValidatorIndex: validatorIndex, Epoch: att.Data.Target.Epoch}
	}
	return validatorIndex, nil
}

// verifyUnaggregatedLateChecks stores the observation after signature
// verification, re-checking under lock since two attestations received at the
// same time may be processed on different threads.
func (s *Service) verifyUnaggregatedLateChecks(att *ethpb.Attestation, validatorIndex types.ValidatorIndex) error {
	seen, err := s.observedAttesters.Observe(att.Data.Target.Epoch, validatorIndex)
	if err != nil {
		return mapObservationError(err, att.Data.Target.Epoch)
	}
	if seen {
		return PriorAttestationKnownError{ValidatorIndex: validatorIndex, Epoch: att.Data.Target.Epoch}
	}
	return nil
}
