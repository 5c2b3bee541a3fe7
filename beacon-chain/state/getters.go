package state

import (
	"fmt"

	types "github.com/prysmaticlabs/eth2-types"
	pb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
)

// GenesisTime of the beacon state as a uint64.
func (b *BeaconState) GenesisTime() uint64 {
	if !b.HasInnerState() {
		return 0
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.GenesisTime
}

// GenesisValidatorsRoot of the beacon state.
func (b *BeaconState) GenesisValidatorsRoot() []byte {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return bytesutil.SafeCopyBytes(b.state.GenesisValidatorsRoot)
}

// Slot of the current beacon chain state.
func (b *BeaconState) Slot() types.Slot {
	if !b.HasInnerState() {
		return 0
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return b.state.Slot
}

// Fork version of the beacon chain.
func (b *BeaconState) Fork() *pb.Fork {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return pb.CopyFork(b.state.Fork)
}

// LatestBlockHeader stored within the beacon state.
func (b *BeaconState) LatestBlockHeader() *pb.BeaconBlockHeader {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return pb.CopyBeaconBlockHeader(b.state.LatestBlockHeader)
}

// BlockRootAtIndex retrieves a specific block root based on an
// input index value.
func (b *BeaconState) BlockRootAtIndex(idx uint64) ([]byte, error) {
	if !b.HasInnerState() {
		return nil, ErrNilInnerState
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.BlockRoots)) <= idx {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.state.BlockRoots[idx]), nil
}

// StateRootAtIndex retrieves a specific state root based on an
// input index value.
func (b *BeaconState) StateRootAtIndex(idx uint64) ([]byte, error) {
	if !b.HasInnerState() {
		return nil, ErrNilInnerState
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.StateRoots)) <= idx {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.state.StateRoots[idx]), nil
}

// RandaoMixAtIndex retrieves a specific randao mix based on an
// input index value.
func (b *BeaconState) RandaoMixAtIndex(idx uint64) ([]byte, error) {
	if !b.HasInnerState() {
		return nil, ErrNilInnerState
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.RandaoMixes)) <= idx {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return bytesutil.SafeCopyBytes(b.state.RandaoMixes[idx]), nil
}

// RandaoMixesLength returns the length of the randao mixes slice.
func (b *BeaconState) RandaoMixesLength() int {
	if !b.HasInnerState() {
		return 0
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.state.RandaoMixes)
}

// Validators participating in consensus on the beacon chain.
func (b *BeaconState) Validators() []*pb.Validator {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	res := make([]*pb.Validator, len(b.state.Validators))
	for i := 0; i < len(res); i++ {
		res[i] = pb.CopyValidator(b.state.Validators[i])
	}
	return res
}

// NumValidators returns the size of the validator registry.
func (b *BeaconState) NumValidators() int {
	if !b.HasInnerState() {
		return 0
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return len(b.state.Validators)
}

// ValidatorAtIndex is the validator at the provided index.
func (b *BeaconState) ValidatorAtIndex(idx types.ValidatorIndex) (*pb.Validator, error) {
	if !b.HasInnerState() {
		return nil, ErrNilInnerState
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return nil, fmt.Errorf("index %d out of range", idx)
	}
	return pb.CopyValidator(b.state.Validators[idx]), nil
}

// PubkeyAtIndex returns the pubkey at the given validator index. It takes
// the read lock on BeaconState itself.
func (b *BeaconState) PubkeyAtIndex(idx types.ValidatorIndex) [48]byte {
	if !b.HasInnerState() {
		return [48]byte{}
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if uint64(len(b.state.Validators)) <= uint64(idx) {
		return [48]byte{}
	}
	return bytesutil.ToBytes48(b.state.Validators[idx].PublicKey)
}

// ReadFromEveryValidator reads values from every validator and applies it to
// the provided function. Warning: this function is for read access only and
// the validator must not be mutated.
func (b *BeaconState) ReadFromEveryValidator(f func(idx int, val *pb.Validator) error) error {
	if !b.HasInnerState() {
		return ErrNilInnerState
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	for i, v := range b.state.Validators {
		if err := f(i, v); err != nil {
			return err
		}
	}
	return nil
}

// FinalizedCheckpoint denoting an epoch and block root.
func (b *BeaconState) FinalizedCheckpoint() *pb.Checkpoint {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return pb.CopyCheckpoint(b.state.FinalizedCheckpoint)
}

// FinalizedCheckpointEpoch returns the epoch value of the finalized checkpoint.
func (b *BeaconState) FinalizedCheckpointEpoch() types.Epoch {
	if !b.HasInnerState() {
		return 0
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	if b.state.FinalizedCheckpoint == nil {
		return 0
	}
	return b.state.FinalizedCheckpoint.Epoch
}
