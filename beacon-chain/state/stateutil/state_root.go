package stateutil

import (
	"github.com/pkg/errors"
	pb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/params"
)

const beaconStateFieldCount = 10

// HashTreeRootState computes the hash tree root of the raw beacon state
// container. Per-slot vectors are merkleized at the length carried by the
// state itself so the same code serves mainnet and minimal configurations.
func HashTreeRootState(state *pb.BeaconState) ([32]byte, error) {
	if state == nil {
		return [32]byte{}, errors.New("nil state")
	}
	fieldRoots := make([][32]byte, beaconStateFieldCount)

	// Genesis time root.
	fieldRoots[0] = Uint64Root(state.GenesisTime)

	// Genesis validators root.
	fieldRoots[1] = BytesRoot(state.GenesisValidatorsRoot)

	// Slot root.
	fieldRoots[2] = Uint64Root(uint64(state.Slot))

	// Fork data structure root.
	if state.Fork != nil {
		forkRoot, err := state.Fork.HashTreeRoot()
		if err != nil {
			return [32]byte{}, errors.Wrap(err, "could not compute fork merkleization")
		}
		fieldRoots[3] = forkRoot
	}

	// BeaconBlockHeader data structure root.
	if state.LatestBlockHeader != nil {
		headerRoot, err := state.LatestBlockHeader.HashTreeRoot()
		if err != nil {
			return [32]byte{}, errors.Wrap(err, "could not compute block header merkleization")
		}
		fieldRoots[4] = headerRoot
	}

	// BlockRoots array root.
	fieldRoots[5] = rootsVectorRoot(state.BlockRoots)

	// StateRoots array root.
	fieldRoots[6] = rootsVectorRoot(state.StateRoots)

	// RandaoMixes array root.
	fieldRoots[7] = rootsVectorRoot(state.RandaoMixes)

	// Validators slice root.
	validatorsRoot, err := validatorRegistryRoot(state.Validators)
	if err != nil {
		return [32]byte{}, errors.Wrap(err, "could not compute validator registry merkleization")
	}
	fieldRoots[8] = validatorsRoot

	// FinalizedCheckpoint data structure root.
	if state.FinalizedCheckpoint != nil {
		checkpointRoot, err := state.FinalizedCheckpoint.HashTreeRoot()
		if err != nil {
			return [32]byte{}, errors.Wrap(err, "could not compute finalized checkpoint merkleization")
		}
		fieldRoots[9] = checkpointRoot
	}

	return Merkleize(fieldRoots, beaconStateFieldCount), nil
}

func rootsVectorRoot(roots [][]byte) [32]byte {
	chunks := make([][32]byte, len(roots))
	for i, r := range roots {
		copy(chunks[i][:], r)
	}
	return Merkleize(chunks, uint64(len(roots)))
}

func validatorRegistryRoot(validators []*pb.Validator) ([32]byte, error) {
	chunks := make([][32]byte, len(validators))
	for i, v := range validators {
		root, err := v.HashTreeRoot()
		if err != nil {
			return [32]byte{}, err
		}
		chunks[i] = root
	}
	root := Merkleize(chunks, params.BeaconConfig().ValidatorRegistryLimit)
	return MixInLength(root, uint64(len(validators))), nil
}
