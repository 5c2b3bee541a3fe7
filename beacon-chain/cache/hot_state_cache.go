package cache

import (
	"github.com/dgraph-io/ristretto"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
)

var (
	// hotStateCacheSize defines the max number of hot states the cache can hold.
	hotStateCacheSize = int64(32)
	// Metrics
	hotStateCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hot_state_cache_hit",
		Help: "The total number of cache hits on the hot state cache.",
	})
	hotStateCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hot_state_cache_miss",
		Help: "The total number of cache misses on the hot state cache.",
	})
)

// HotStateCache is used to store the processed beacon state after finalized
// check point, keyed by state root.
type HotStateCache struct {
	cache *ristretto.Cache
}

// NewHotStateCache initializes the map and underlying cache.
func NewHotStateCache() *HotStateCache {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: hotStateCacheSize * 10,
		MaxCost:     hotStateCacheSize,
		BufferItems: 64,
	})
	if err != nil {
		// The config above is static and valid, a failure here is a programming error.
		panic(err)
	}
	return &HotStateCache{cache: c}
}

// Get returns a cached copy of the state keyed by its root, if it exists.
func (c *HotStateCache) Get(root [32]byte) *stateTrie.BeaconState {
	item, exists := c.cache.Get(string(root[:]))
	if exists && item != nil {
		hotStateCacheHit.Inc()
		return item.(*stateTrie.BeaconState).Copy()
	}
	hotStateCacheMiss.Inc()
	return nil
}

// Put the state in the cache, keyed by root.
func (c *HotStateCache) Put(root [32]byte, state *stateTrie.BeaconState) {
	c.cache.Set(string(root[:]), state, 1)
}

// Has returns true if the key exists in the cache.
func (c *HotStateCache) Has(root [32]byte) bool {
	_, exists := c.cache.Get(string(root[:]))
	return exists
}

// Delete deletes the key exists in the cache.
func (c *HotStateCache) Delete(root [32]byte) {
	c.cache.Del(string(root[:]))
}
