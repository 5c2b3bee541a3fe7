package cache

import (
	"encoding/binary"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/async"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/sliceutil"
	"k8s.io/client-go/tools/cache"
)

var (
	// maxCommitteesCacheSize defines the max number of shufflings the cache
	// can hold, enough for the current and previous epochs across a handful
	// of forks.
	maxCommitteesCacheSize = uint64(32)

	// CommitteeCacheMiss tracks the number of committee requests that aren't present in the cache.
	CommitteeCacheMiss = promauto.NewCounter(prometheus.CounterOpts{
		Name: "committee_cache_miss",
		Help: "The number of committee requests that aren't present in the cache.",
	})
	// CommitteeCacheHit tracks the number of committee requests that are in the cache.
	CommitteeCacheHit = promauto.NewCounter(prometheus.CounterOpts{
		Name: "committee_cache_hit",
		Help: "The number of committee requests that are present in the cache.",
	})
)

// committeeCacheLockTimeout bounds how long a pipeline waits on the shuffling
// cache before surfacing an internal error instead of deadlocking.
const committeeCacheLockTimeout = time.Second

// Committees defines the shuffled committees per (epoch, target root) pair.
// Entries are immutable once inserted.
type Committees struct {
	CommitteeCount  uint64
	Epoch           types.Epoch
	TargetRoot      [32]byte
	Seed            [32]byte
	ShuffledIndices []types.ValidatorIndex
	SortedIndices   []types.ValidatorIndex
}

// CommitteesPerSlot returns the number of committees of every slot covered by
// this shuffling.
func (c *Committees) CommitteesPerSlot() uint64 {
	return c.CommitteeCount / uint64(params.BeaconConfig().SlotsPerEpoch)
}

// BeaconCommittee returns the committee for the requested slot and committee
// index, or nil when this shuffling holds no such committee.
func (c *Committees) BeaconCommittee(slot types.Slot, committeeIndex types.CommitteeIndex) []types.ValidatorIndex {
	if types.Epoch(slot/params.BeaconConfig().SlotsPerEpoch) != c.Epoch {
		return nil
	}
	committeesPerSlot := c.CommitteesPerSlot()
	if uint64(committeeIndex) >= committeesPerSlot {
		return nil
	}
	indexOffset := uint64(committeeIndex) + uint64(slot%params.BeaconConfig().SlotsPerEpoch)*committeesPerSlot
	validatorCount := uint64(len(c.ShuffledIndices))
	start := sliceutil.SplitOffset(validatorCount, c.CommitteeCount, indexOffset)
	end := sliceutil.SplitOffset(validatorCount, c.CommitteeCount, indexOffset+1)
	if start > validatorCount || end > validatorCount || start > end {
		return nil
	}
	return c.ShuffledIndices[start:end]
}

// committeeKeyFn takes the (epoch, target root) pair as the key to retrieve a shuffling.
func committeeKeyFn(obj interface{}) (string, error) {
	info, ok := obj.(*Committees)
	if !ok {
		return "", ErrNotCommittee
	}
	return committeeKey(info.Epoch, info.TargetRoot), nil
}

func committeeKey(epoch types.Epoch, targetRoot [32]byte) string {
	b := make([]byte, 8, 40)
	binary.LittleEndian.PutUint64(b, uint64(epoch))
	b = append(b, targetRoot[:]...)
	return string(b)
}

// CommitteeCache is a struct with 1 queue for looking up shuffled indices list
// by (epoch, target root).
type CommitteeCache struct {
	CommitteeCache *cache.FIFO
	lock           *async.TimeoutRWMutex
}

// NewCommitteesCache creates a new committee cache for storing/accessing shuffled indices of a committee.
func NewCommitteesCache() *CommitteeCache {
	return &CommitteeCache{
		CommitteeCache: cache.NewFIFO(committeeKeyFn),
		lock:           async.NewTimeoutRWMutex(),
	}
}

// Get returns the cached shuffling for the (epoch, target root) pair, or nil
// on a cache miss. A bounded wait on the cache lock that elapses surfaces as
// ErrCommitteeCacheLockTimeout.
func (c *CommitteeCache) Get(epoch types.Epoch, targetRoot [32]byte) (*Committees, error) {
	if !c.lock.RLockFor(committeeCacheLockTimeout) {
		return nil, ErrCommitteeCacheLockTimeout
	}
	defer c.lock.RUnlock()

	obj, exists, err := c.CommitteeCache.GetByKey(committeeKey(epoch, targetRoot))
	if err != nil {
		return nil, err
	}
	if !exists {
		CommitteeCacheMiss.Inc()
		return nil, nil
	}
	item, ok := obj.(*Committees)
	if !ok {
		return nil, ErrNotCommittee
	}
	CommitteeCacheHit.Inc()
	return item, nil
}

// AddCommitteeShuffledList adds Committee shuffled list object to the cache.
// The insert is idempotent on key collision, a concurrent inserter that won
// the race keeps its entry.
func (c *CommitteeCache) AddCommitteeShuffledList(committees *Committees) error {
	if !c.lock.LockFor(committeeCacheLockTimeout) {
		return ErrCommitteeCacheLockTimeout
	}
	defer c.lock.Unlock()

	if err := c.CommitteeCache.AddIfNotPresent(committees); err != nil {
		return err
	}
	trim(c.CommitteeCache, maxCommitteesCacheSize)
	return nil
}
