// Package kv includes a key-value store implementation of an attestation
// cache used to satisfy important use-cases such as aggregation in a
// beacon node runtime.
package kv

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// AttCaches defines the caches used to satisfy attestation pool interface.
// These caches are KV store for various attestations such are unaggregated,
// aggregated or fork-choice attestations.
type AttCaches struct {
	aggregatedAttLock   sync.RWMutex
	aggregatedAtt       map[[32]byte][]*ethpb.Attestation
	unAggregateAttLock  sync.RWMutex
	unAggregatedAtt     map[[32]byte]*ethpb.Attestation
	forkchoiceAttLock   sync.RWMutex
	forkchoiceAtt       map[[32]byte]*ethpb.Attestation
	seenAtt             *gocache.Cache
}

// NewAttCaches initializes a new attestation pool consists of multiple KV store in cache for
// various kind of attestations.
func NewAttCaches() *AttCaches {
	secsInEpoch := time.Duration(uint64(params.BeaconConfig().SlotsPerEpoch) * params.BeaconConfig().SecondsPerSlot)
	c := gocache.New(secsInEpoch*time.Second /* one epoch */, 2*secsInEpoch*time.Second /* two epochs */)
	pool := &AttCaches{
		unAggregatedAtt: make(map[[32]byte]*ethpb.Attestation),
		aggregatedAtt:   make(map[[32]byte][]*ethpb.Attestation),
		forkchoiceAtt:   make(map[[32]byte]*ethpb.Attestation),
		seenAtt:         c,
	}

	return pool
}
