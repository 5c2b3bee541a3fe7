package blockchain

import (
	"testing"
	"time"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/forkchoice"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/roughtime"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func testService() *Service {
	return NewService(&Config{
		GenesisTime:           roughtime.Now().Add(-13 * time.Second),
		GenesisValidatorsRoot: [32]byte{1},
		ForkChoiceStore:       forkchoice.NewStore(),
	})
}

func TestService_GenesisFork(t *testing.T) {
	s := testService()
	fork, err := s.HeadFork()
	require.NoError(t, err)
	assert.DeepEqual(t, params.BeaconConfig().GenesisForkVersion, fork.CurrentVersion)
	assert.DeepEqual(t, params.BeaconConfig().GenesisForkVersion, fork.PreviousVersion)
}

func TestService_UpdateHead(t *testing.T) {
	s := testService()
	fork := &ethpb.Fork{
		PreviousVersion: []byte{0, 0, 0, 0},
		CurrentVersion:  []byte{1, 0, 0, 0},
		Epoch:           5,
	}
	require.NoError(t, s.UpdateHead(42, [32]byte{9}, fork))

	slot, err := s.HeadSlot()
	require.NoError(t, err)
	assert.Equal(t, types.Slot(42), slot)

	root, err := s.HeadRoot()
	require.NoError(t, err)
	assert.Equal(t, [32]byte{9}, root)

	headFork, err := s.HeadFork()
	require.NoError(t, err)
	assert.DeepEqual(t, fork, headFork)
}

func TestService_CurrentSlot(t *testing.T) {
	params.SetupTestConfigCleanup(t)
	params.UseMainnetConfig()
	s := testService()
	slot, err := s.CurrentSlot()
	require.NoError(t, err)
	assert.Equal(t, types.Slot(1), slot, "13 seconds past genesis is slot 1 at 12 seconds per slot")
}

func TestService_GenesisValidatorsRoot(t *testing.T) {
	s := testService()
	assert.Equal(t, [32]byte{1}, s.GenesisValidatorsRoot())
}
