// Package blockchain defines a slim canonical head tracker supplying the
// chain context (fork schedule, genesis information, head summary) consumed
// by attestation verification.
package blockchain

import (
	"time"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/forkchoice"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/async"
	"github.com/prysmaticlabs/attestation/shared/bytesutil"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/slotutil"
)

// headLockTimeout bounds waits on the canonical head lock. A wait that
// elapses surfaces as ErrHeadLockTimeout instead of deadlocking the caller.
const headLockTimeout = time.Second

// ErrHeadLockTimeout is returned when the canonical head lock could not be
// acquired within its bounded wait.
var ErrHeadLockTimeout = errors.New("timeout acquiring canonical head lock")

// head tracks the canonical head summary of the chain.
type head struct {
	slot types.Slot
	root [32]byte
	fork *ethpb.Fork
}

// Service represents the canonical head tracker.
type Service struct {
	clock                 *slotutil.Clock
	genesisValidatorsRoot [32]byte
	forkChoiceStore       *forkchoice.Store
	head                  *head
	headLock              *async.TimeoutRWMutex
}

// Config options for the blockchain service.
type Config struct {
	GenesisTime           time.Time
	GenesisValidatorsRoot [32]byte
	ForkChoiceStore       *forkchoice.Store
}

// NewService instantiates a new head tracker anchored at genesis.
func NewService(cfg *Config) *Service {
	genesisFork := &ethpb.Fork{
		PreviousVersion: bytesutil.SafeCopyBytes(params.BeaconConfig().GenesisForkVersion),
		CurrentVersion:  bytesutil.SafeCopyBytes(params.BeaconConfig().GenesisForkVersion),
		Epoch:           params.BeaconConfig().GenesisEpoch,
	}
	return &Service{
		clock:                 slotutil.NewClock(cfg.GenesisTime),
		genesisValidatorsRoot: cfg.GenesisValidatorsRoot,
		forkChoiceStore:       cfg.ForkChoiceStore,
		head:                  &head{fork: genesisFork},
		headLock:              async.NewTimeoutRWMutex(),
	}
}

// UpdateHead records a new canonical head summary along with the fork active
// at its epoch.
func (s *Service) UpdateHead(slot types.Slot, root [32]byte, fork *ethpb.Fork) error {
	if !s.headLock.LockFor(headLockTimeout) {
		return ErrHeadLockTimeout
	}
	defer s.headLock.Unlock()

	s.head = &head{slot: slot, root: root, fork: ethpb.CopyFork(fork)}
	log.WithField("headSlot", slot).WithField("headRoot", bytesutil.Trunc(root[:])).Debug("Updated canonical head")
	return nil
}
