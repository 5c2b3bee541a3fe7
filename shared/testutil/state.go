// Package testutil defines the testing utils such as building beacon states
// with deterministic genesis parameters and funded validator registries.
package testutil

import (
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// GenesisState builds a genesis beacon state with the requested number of
// active validators alongside their secret keys. Key i in the returned slice
// belongs to validator index i.
func GenesisState(t testing.TB, numValidators uint64) (*stateTrie.BeaconState, []bls.SecretKey) {
	secretKeys := make([]bls.SecretKey, numValidators)
	validators := make([]*ethpb.Validator, numValidators)
	for i := uint64(0); i < numValidators; i++ {
		key, err := bls.RandKey()
		if err != nil {
			t.Fatalf("Could not generate validator key: %v", err)
		}
		secretKeys[i] = key
		validators[i] = &ethpb.Validator{
			PublicKey:                  key.PublicKey().Marshal(),
			WithdrawalCredentials:      make([]byte, 32),
			EffectiveBalance:           params.BeaconConfig().MaxEffectiveBalance,
			ActivationEligibilityEpoch: 0,
			ActivationEpoch:            0,
			ExitEpoch:                  params.BeaconConfig().FarFutureEpoch,
			WithdrawableEpoch:          params.BeaconConfig().FarFutureEpoch,
		}
	}

	blockRoots := make([][]byte, params.BeaconConfig().SlotsPerHistoricalRoot)
	stateRoots := make([][]byte, params.BeaconConfig().SlotsPerHistoricalRoot)
	for i := range blockRoots {
		blockRoots[i] = make([]byte, 32)
		stateRoots[i] = make([]byte, 32)
	}
	randaoMixes := make([][]byte, params.BeaconConfig().EpochsPerHistoricalVector)
	for i := range randaoMixes {
		randaoMixes[i] = bytesutil.PadTo([]byte{byte(i)}, 32)
	}

	st, err := stateTrie.Initialize(&ethpb.BeaconState{
		GenesisValidatorsRoot: bytesutil.PadTo([]byte("genesisvalidatorsroot"), 32),
		Slot:                  0,
		Fork: &ethpb.Fork{
			PreviousVersion: params.BeaconConfig().GenesisForkVersion,
			CurrentVersion:  params.BeaconConfig().GenesisForkVersion,
			Epoch:           0,
		},
		LatestBlockHeader: &ethpb.BeaconBlockHeader{
			ParentRoot: make([]byte, 32),
			StateRoot:  make([]byte, 32),
			BodyRoot:   make([]byte, 32),
		},
		BlockRoots:          blockRoots,
		StateRoots:          stateRoots,
		RandaoMixes:         randaoMixes,
		Validators:          validators,
		FinalizedCheckpoint: &ethpb.Checkpoint{Root: make([]byte, 32)},
	})
	if err != nil {
		t.Fatalf("Could not initialize state: %v", err)
	}
	return st, secretKeys
}

// ActiveIndices returns the indices 0..n-1 as validator indices.
func ActiveIndices(n uint64) []types.ValidatorIndex {
	indices := make([]types.ValidatorIndex, n)
	for i := uint64(0); i < n; i++ {
		indices[i] = types.ValidatorIndex(i)
	}
	return indices
}
