package state

import (
	"fmt"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	pb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
)

// ErrNilInnerState returns when the inner state is nil.
var ErrNilInnerState = errors.New("nil inner state")

// SetSlot for the beacon state.
func (b *BeaconState) SetSlot(val types.Slot) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.Slot = val
	return nil
}

// SetLatestBlockHeader in the beacon state.
func (b *BeaconState) SetLatestBlockHeader(val *pb.BeaconBlockHeader) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	b.state.LatestBlockHeader = pb.CopyBeaconBlockHeader(val)
	return nil
}

// UpdateBlockRootAtIndex for the beacon state. Updates the block root
// at a specific index to a new value.
func (b *BeaconState) UpdateBlockRootAtIndex(idx uint64, blockRoot [32]byte) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.BlockRoots)) <= idx {
		return fmt.Errorf("invalid index provided %d", idx)
	}
	b.state.BlockRoots[idx] = blockRoot[:]
	return nil
}

// UpdateStateRootAtIndex for the beacon state. Updates the state root
// at a specific index to a new value.
func (b *BeaconState) UpdateStateRootAtIndex(idx uint64, stateRoot [32]byte) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.StateRoots)) <= idx {
		return fmt.Errorf("invalid index provided %d", idx)
	}
	b.state.StateRoots[idx] = stateRoot[:]
	return nil
}

// UpdateRandaoMixAtIndex for the beacon state. Updates the randao mix
// at a specific index to a new value.
func (b *BeaconState) UpdateRandaoMixAtIndex(idx uint64, val []byte) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.RandaoMixes)) <= idx {
		return fmt.Errorf("invalid index provided %d", idx)
	}
	b.state.RandaoMixes[idx] = bytesutil.SafeCopyBytes(val)
	return nil
}

// UpdateValidatorAtIndex for the beacon state. Updates the validator
// at a specific index to a new value.
func (b *BeaconState) UpdateValidatorAtIndex(idx types.ValidatorIndex, val *pb.Validator) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.Lock()
	defer b.lock.Unlock()

	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return fmt.Errorf("invalid index provided %d", idx)
	}
	b.state.Validators[idx] = pb.CopyValidator(val)
	return nil
}
