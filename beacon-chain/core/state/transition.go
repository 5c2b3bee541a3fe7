// Package state implements the per-slot portion of the state transition
// function, advancing a stored beacon state through empty slots. Epoch
// boundaries apply the housekeeping committee shuffling depends on: validator
// registry updates and randao mix rotation.
package state

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	e "github.com/prysmaticlabs/attestation/beacon-chain/core/epoch"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	"github.com/prysmaticlabs/attestation/shared/params"
	"go.opencensus.io/trace"
)

// ProcessSlots processes through empty slots up through the requested slot,
// recording the canonical state root of every skipped slot.
func ProcessSlots(ctx context.Context, state *stateTrie.BeaconState, slot types.Slot) (*stateTrie.BeaconState, error) {
	return processSlots(ctx, state, slot, false /* skip state root hash */)
}

// ProcessSlotsNoStateRoot advances the state like ProcessSlots but replaces
// the per-slot state roots with a zero sentinel instead of hashing the state.
// The resulting state carries stale interior roots and must only be used for
// work that does not consume them, such as committee shuffling, which depends
// only on the randao mixes and the active validator registry at epoch
// boundaries.
func ProcessSlotsNoStateRoot(ctx context.Context, state *stateTrie.BeaconState, slot types.Slot) (*stateTrie.BeaconState, error) {
	return processSlots(ctx, state, slot, true /* skip state root hash */)
}

func processSlots(ctx context.Context, state *stateTrie.BeaconState, slot types.Slot, skipStateRootHash bool) (*stateTrie.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.processSlots")
	defer span.End()
	if state == nil || !state.HasInnerState() {
		return nil, errors.New("nil state")
	}
	span.AddAttributes(trace.Int64Attribute("slots", int64(slot)-int64(state.Slot())))

	if state.Slot() > slot {
		return nil, errors.Errorf("expected state.slot %d < slot %d", state.Slot(), slot)
	}
	if state.Slot() == slot {
		return state, nil
	}

	var err error
	for state.Slot() < slot {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if err := ProcessSlot(ctx, state, skipStateRootHash); err != nil {
			return nil, errors.Wrap(err, "could not process slot")
		}
		if CanProcessEpoch(state) {
			state, err = ProcessEpoch(ctx, state)
			if err != nil {
				return nil, errors.Wrap(err, "could not process epoch")
			}
		}
		if err := state.SetSlot(state.Slot() + 1); err != nil {
			return nil, errors.Wrap(err, "could not set slot")
		}
	}

	return state, nil
}

// ProcessSlot happens every slot and focuses on the slot counter and root
// records. It happens regardless if there's an incoming block or not.
//
// Spec pseudocode definition:
//  def process_slot(state: BeaconState) -> None:
//    # Cache state root
//    previous_state_root = hash_tree_root(state)
//    state.state_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_state_root
//    # Cache latest block header state root
//    if state.latest_block_header.state_root == Bytes32():
//        state.latest_block_header.state_root = previous_state_root
//    # Cache block root
//    previous_block_root = hash_tree_root(state.latest_block_header)
//    state.block_roots[state.slot % SLOTS_PER_HISTORICAL_ROOT] = previous_block_root
func ProcessSlot(ctx context.Context, state *stateTrie.BeaconState, skipStateRootHash bool) error {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessSlot")
	defer span.End()

	var prevStateRoot [32]byte
	if !skipStateRootHash {
		var err error
		prevStateRoot, err = state.HashTreeRoot(ctx)
		if err != nil {
			return errors.Wrap(err, "could not tree hash prev state root")
		}
	}
	slotsPerHistoricalRoot := uint64(params.BeaconConfig().SlotsPerHistoricalRoot)
	if err := state.UpdateStateRootAtIndex(uint64(state.Slot())%slotsPerHistoricalRoot, prevStateRoot); err != nil {
		return err
	}

	header := state.LatestBlockHeader()
	if header == nil {
		return errors.New("nil latest block header in state")
	}
	zeroHash := params.BeaconConfig().ZeroHash
	if len(header.StateRoot) == 0 || bytes.Equal(header.StateRoot, zeroHash[:]) {
		header.StateRoot = prevStateRoot[:]
		if err := state.SetLatestBlockHeader(header); err != nil {
			return err
		}
	}
	prevBlockRoot, err := header.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not determine prev block root")
	}
	return state.UpdateBlockRootAtIndex(uint64(state.Slot())%slotsPerHistoricalRoot, prevBlockRoot)
}

// CanProcessEpoch checks the eligibility to process epoch. The epoch can be
// processed at the end of the last slot of every epoch.
//
// Spec pseudocode definition:
//    If (state.slot + 1) % SLOTS_PER_EPOCH == 0:
func CanProcessEpoch(state *stateTrie.BeaconState) bool {
	return (state.Slot()+1)%params.BeaconConfig().SlotsPerEpoch == 0
}

// ProcessEpoch applies the epoch boundary operations committee shuffling
// depends on: validator registry rotation and the randao mix reset.
func ProcessEpoch(ctx context.Context, state *stateTrie.BeaconState) (*stateTrie.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "core.state.ProcessEpoch")
	defer span.End()

	if state == nil || !state.HasInnerState() {
		return nil, errors.New("nil state")
	}
	state, err := e.ProcessRegistryUpdates(state)
	if err != nil {
		return nil, errors.Wrap(err, "could not process registry updates")
	}
	state, err = e.ProcessRandaoMixesReset(state)
	if err != nil {
		return nil, errors.Wrap(err, "could not process randao mixes reset")
	}
	return state, nil
}
