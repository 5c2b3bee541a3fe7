package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// seenAttestationsCacheSize covers roughly two epochs of aggregate traffic on
// mainnet. Nothing prunes this cache explicitly; the LRU bound alone evicts the
// least recently used roots.
const seenAttestationsCacheSize = 16384

var observedAttestationCacheSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "observed_attestations_cache_size",
	Help: "The number of attestation roots in the observed attestations cache",
})

// ObservedAttestations dedups fully verified aggregate attestations by their
// tree hash root. Only attestations that passed every verification stage are
// observed here.
type ObservedAttestations struct {
	cache *lru.Cache
}

// NewObservedAttestations initializes the underlying lru cache.
func NewObservedAttestations() (*ObservedAttestations, error) {
	c, err := lru.New(seenAttestationsCacheSize)
	if err != nil {
		return nil, err
	}
	return &ObservedAttestations{cache: c}, nil
}

// IsKnown reports whether the attestation root has already been observed.
func (s *ObservedAttestations) IsKnown(attRoot [32]byte) bool {
	return s.cache.Contains(attRoot)
}

// Observe marks the attestation root as known and reports whether it was
// already known. The check and insert are a single atomic step so two
// concurrent observers cannot both win.
func (s *ObservedAttestations) Observe(attRoot [32]byte) bool {
	known, _ := s.cache.ContainsOrAdd(attRoot, true)
	if !known {
		observedAttestationCacheSize.Set(float64(s.cache.Len()))
	}
	return known
}
