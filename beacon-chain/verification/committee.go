package verification

import (
	"context"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	coreState "github.com/prysmaticlabs/attestation/beacon-chain/core/state"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/attestationutil"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
	"github.com/prysmaticlabs/attestation/shared/params"
	"go.opencensus.io/trace"
)

// errIncorrectStateForAttestation is returned when the state resolved through
// the target root cannot serve the attestation's epoch.
var errIncorrectStateForAttestation = errors.New("state is incorrect for the attestation epoch")

// mapAttestationCommittee runs mapFn with the committee and the committee
// count per slot resolved for the attestation.
//
// The function exists in this odd "map" pattern because efficiently obtaining
// the committee can be complex. It might involve reading straight from the
// shuffling cache or it might involve loading a state from storage and fast
// forwarding it through empty slots. The callback lets callers fuse committee
// extraction with indexed-attestation computation or aggregator-membership
// testing without re-entering the cache.
func (s *Service) mapAttestationCommittee(
	ctx context.Context,
	att *ethpb.Attestation,
	mapFn func(committee []types.ValidatorIndex, committeesPerSlot uint64) error,
) error {
	ctx, span := trace.StartSpan(ctx, "verification.mapAttestationCommittee")
	defer span.End()

	attestationEpoch := helpers.SlotToEpoch(att.Data.Slot)
	targetRoot := bytesutil.ToBytes32(att.Data.Target.Root)

	// The attestation target must be a known block. Resolving it through fork
	// choice rejects any target earlier than our latest finalized root, there
	// is no point processing an attestation that does not include our latest
	// finalized block in its chain.
	targetBlock := s.cfg.ForkChoice.Block(targetRoot)
	if targetBlock == nil {
		return UnknownTargetRootError{Root: targetRoot}
	}

	committees, err := s.shufflingCache.Get(attestationEpoch, targetRoot)
	if err != nil {
		return internalError(err)
	}
	if committees != nil {
		return mapCommittee(att, committees, mapFn)
	}

	log.WithField("attestationEpoch", attestationEpoch).
		WithField("targetRoot", bytesutil.Trunc(targetRoot[:])).
		Debug("Attestation processing shuffling cache miss")

	// The shuffling cache lock is already released here, loading the state
	// and fast forwarding it may block on I/O and must not hold it.
	st, err := s.cfg.StateGen.StateByRootForAttestation(ctx, targetBlock.StateRoot)
	if err != nil {
		return internalError(errors.Wrap(err, "could not load state for attestation verification"))
	}

	// Fast forward through empty slots with state-root hashing disabled. The
	// shuffling depends only on the randao mixes and the active validator set
	// at epoch boundaries, the interior state roots are never consumed.
	for helpers.CurrentEpoch(st)+1 < attestationEpoch {
		st, err = coreState.ProcessSlotsNoStateRoot(ctx, st, st.Slot()+1)
		if err != nil {
			return internalError(errors.Wrap(err, "could not process slots"))
		}
		stateWalkSlots.Inc()
	}
	if attestationEpoch > helpers.CurrentEpoch(st)+1 || attestationEpoch+1 < helpers.CurrentEpoch(st) {
		return internalError(errors.Wrapf(errIncorrectStateForAttestation,
			"state epoch %d, attestation epoch %d", helpers.CurrentEpoch(st), attestationEpoch))
	}

	committees, err = buildCommitteesForEpoch(st, attestationEpoch, targetRoot)
	if err != nil {
		return internalError(err)
	}
	if err := s.shufflingCache.AddCommitteeShuffledList(committees); err != nil {
		return internalError(err)
	}
	// A concurrent inserter may have won the race, the post-race read uses
	// the winner's entry.
	winner, err := s.shufflingCache.Get(attestationEpoch, targetRoot)
	if err != nil {
		return internalError(err)
	}
	if winner == nil {
		winner = committees
	}
	return mapCommittee(att, winner, mapFn)
}

func mapCommittee(
	att *ethpb.Attestation,
	committees *cache.Committees,
	mapFn func(committee []types.ValidatorIndex, committeesPerSlot uint64) error,
) error {
	committee := committees.BeaconCommittee(att.Data.Slot, att.Data.CommitteeIndex)
	if committee == nil {
		return NoCommitteeForSlotAndIndexError{Slot: att.Data.Slot, CommitteeIndex: att.Data.CommitteeIndex}
	}
	return mapFn(committee, committees.CommitteesPerSlot())
}

// buildCommitteesForEpoch computes the full shuffling of the epoch from the
// fast-forwarded state.
func buildCommitteesForEpoch(st *stateTrie.BeaconState, epoch types.Epoch, targetRoot [32]byte) (*cache.Committees, error) {
	activeIndices, err := helpers.ActiveValidatorIndices(st, epoch)
	if err != nil {
		return nil, errors.Wrap(err, "could not get active indices")
	}
	if len(activeIndices) == 0 {
		return nil, errors.New("no active validator indices for epoch")
	}
	seed, err := helpers.Seed(st, epoch, params.BeaconConfig().DomainBeaconAttester)
	if err != nil {
		return nil, errors.Wrap(err, "could not get seed")
	}

	shuffledIndices := make([]types.ValidatorIndex, len(activeIndices))
	copy(shuffledIndices, activeIndices)
	shuffledList, err := helpers.UnshuffleList(shuffledIndices, seed)
	if err != nil {
		return nil, errors.Wrap(err, "could not unshuffle active indices")
	}

	// ActiveValidatorIndices returns indices in ascending order already.
	sortedIndices := make([]types.ValidatorIndex, len(activeIndices))
	copy(sortedIndices, activeIndices)

	return &cache.Committees{
		CommitteeCount:  helpers.SlotCommitteeCount(uint64(len(activeIndices))) * uint64(params.BeaconConfig().SlotsPerEpoch),
		Epoch:           epoch,
		TargetRoot:      targetRoot,
		Seed:            seed,
		ShuffledIndices: shuffledList,
		SortedIndices:   sortedIndices,
	}, nil
}

// obtainIndexedAttestationAndCommitteesPerSlot returns the indexed form of
// the attestation alongside the epoch's committee count per slot.
func (s *Service) obtainIndexedAttestationAndCommitteesPerSlot(
	ctx context.Context,
	att *ethpb.Attestation,
) (*ethpb.IndexedAttestation, uint64, error) {
	var indexed *ethpb.IndexedAttestation
	var committeesPerSlot uint64
	err := s.mapAttestationCommittee(ctx, att, func(committee []types.ValidatorIndex, perSlot uint64) error {
		idxAtt, err := attestationutil.ConvertToIndexed(ctx, att, committee)
		if err != nil {
			return InvalidAttestationError{Err: err}
		}
		indexed = idxAtt
		committeesPerSlot = perSlot
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return indexed, committeesPerSlot, nil
}
