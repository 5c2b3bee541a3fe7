// Package verification decides whether inbound attestation gossip messages,
// unaggregated attestations and signed aggregate and proofs, are valid to be
// forwarded on the network and fed into fork choice and the operation pools.
//
// The two entry points, VerifyAggregate and VerifyUnaggregated, sequence
// cheap structural checks before committee resolution and committee
// resolution before the expensive BLS work, and return opaque verified
// wrappers proving pipeline completion:
//
//      *ethpb.Attestation            *ethpb.SignedAggregateAttestationAndProof
//             |                                       |
//             ▼                                       ▼
//      VerifiedUnaggregated                   VerifiedAggregate
//             |                                       |
//             ---------------------------------------
//                               |
//                               ▼
//              impl SignatureVerifiedAttestation
package verification

import (
	"context"
	"time"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/forkchoice"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// slotClock reads the current slot with symmetric tolerance windows applied.
type slotClock interface {
	NowWithFutureTolerance(tolerance time.Duration) (types.Slot, error)
	NowWithPastTolerance(tolerance time.Duration) (types.Slot, error)
}

// chainProvider supplies the chain context signature verification depends on.
type chainProvider interface {
	HeadFork() (*ethpb.Fork, error)
	GenesisValidatorsRoot() [32]byte
}

// stateByRooter loads stored beacon states for committee resolution.
type stateByRooter interface {
	StateByRootForAttestation(ctx context.Context, stateRoot [32]byte) (*stateTrie.BeaconState, error)
}

// slasherNotifier consumes indexed attestations rejected after indexing for
// slashing-evidence collection.
type slasherNotifier interface {
	AcceptAttestation(att *ethpb.IndexedAttestation)
}

// Config options for the verification service.
type Config struct {
	Clock       slotClock
	Chain       chainProvider
	ForkChoice  forkchoice.BlockProvider
	StateGen    stateByRooter
	PubkeyCache *cache.ValidatorPubkeyCache
	Slasher     slasherNotifier // optional
	// ImportMaxSkipSlots bounds the skip distance between an unaggregated
	// attestation and its head block. Zero disables the bound. Aggregates are
	// exempt, a well-connected aggregator may legitimately aggregate across
	// skips.
	ImportMaxSkipSlots uint64
}

// Service verifies attestation gossip messages against shared caches. The
// pipeline runs synchronously on the caller's goroutine, multiple pipelines
// may execute concurrently against the same service.
type Service struct {
	cfg                  *Config
	shufflingCache       *cache.CommitteeCache
	observedAttestations *cache.ObservedAttestations
	observedAttesters    *cache.ObservedAttesters
	observedAggregators  *cache.ObservedAttesters
}

// NewService instantiates the verification pipeline around its caches.
func NewService(cfg *Config) (*Service, error) {
	observedAttestations, err := cache.NewObservedAttestations()
	if err != nil {
		return nil, err
	}
	capacityFn := observedValidatorsCapacity(cfg.PubkeyCache)
	return &Service{
		cfg:                  cfg,
		shufflingCache:       cache.NewCommitteesCache(),
		observedAttestations: observedAttestations,
		observedAttesters:    cache.NewObservedAttesters(capacityFn),
		observedAggregators:  cache.NewObservedAttesters(capacityFn),
	}, nil
}

// observedValidatorsCapacity bounds observed validator indices by the pubkey
// cache length with headroom for registry growth between pubkey cache
// refreshes.
func observedValidatorsCapacity(pubkeyCache *cache.ValidatorPubkeyCache) func() uint64 {
	if pubkeyCache == nil {
		return nil
	}
	return func() uint64 {
		n, err := pubkeyCache.Len()
		if err != nil {
			// A wedged pubkey cache must not turn dedup checks into
			// validator-index rejections.
			return 1 << 40
		}
		capacity := 2 * n
		if capacity < 1024 {
			capacity = 1024
		}
		return capacity
	}
}

// PruneObserved drops observation entries for epochs below the lowest
// permissible epoch. Callers manage the retention policy, typically the
// current and previous epochs.
func (s *Service) PruneObserved(lowestPermissibleEpoch types.Epoch) {
	s.observedAttesters.Prune(lowestPermissibleEpoch)
	s.observedAggregators.Prune(lowestPermissibleEpoch)
}
