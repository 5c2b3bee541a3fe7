package blockchain

import (
	"time"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/forkchoice"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/slotutil"
)

// ChainInfoFetcher defines a common interface for methods in blockchain service which
// directly retrieves chain info related data.
type ChainInfoFetcher interface {
	HeadFetcher
	ForkFetcher
	GenesisFetcher
	TimeFetcher
}

// TimeFetcher retrieves the eth2 data that's related to time.
type TimeFetcher interface {
	GenesisTime() time.Time
	CurrentSlot() (types.Slot, error)
}

// GenesisFetcher retrieves the eth2 data related to its genesis.
type GenesisFetcher interface {
	GenesisValidatorsRoot() [32]byte
}

// HeadFetcher defines a common interface for methods in blockchain service
// which directly retrieve head related data.
type HeadFetcher interface {
	HeadSlot() (types.Slot, error)
	HeadRoot() ([32]byte, error)
}

// ForkFetcher retrieves the current fork information of the beacon chain.
type ForkFetcher interface {
	HeadFork() (*ethpb.Fork, error)
}

// GenesisTime returns the genesis time of the beacon chain.
func (s *Service) GenesisTime() time.Time {
	return s.clock.GenesisTime()
}

// Clock returns the slot clock anchored at the chain genesis time.
func (s *Service) Clock() *slotutil.Clock {
	return s.clock
}

// CurrentSlot returns the slot at the current wall time.
func (s *Service) CurrentSlot() (types.Slot, error) {
	return s.clock.CurrentSlot()
}

// GenesisValidatorsRoot returns the genesis validators root of the chain.
func (s *Service) GenesisValidatorsRoot() [32]byte {
	return s.genesisValidatorsRoot
}

// ForkChoiceStore returns the fork choice block index of the chain.
func (s *Service) ForkChoiceStore() *forkchoice.Store {
	return s.forkChoiceStore
}

// HeadSlot returns the slot of the head of the chain.
func (s *Service) HeadSlot() (types.Slot, error) {
	if !s.headLock.RLockFor(headLockTimeout) {
		return 0, ErrHeadLockTimeout
	}
	defer s.headLock.RUnlock()

	return s.head.slot, nil
}

// HeadRoot returns the root of the head of the chain.
func (s *Service) HeadRoot() ([32]byte, error) {
	if !s.headLock.RLockFor(headLockTimeout) {
		return [32]byte{}, ErrHeadLockTimeout
	}
	defer s.headLock.RUnlock()

	return s.head.root, nil
}

// HeadFork returns the fork active at the canonical head.
func (s *Service) HeadFork() (*ethpb.Fork, error) {
	if !s.headLock.RLockFor(headLockTimeout) {
		return nil, ErrHeadLockTimeout
	}
	defer s.headLock.RUnlock()

	return ethpb.CopyFork(s.head.fork), nil
}
