package cache

import (
	"sync"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/params"
)

// ObservedAttesters tracks which validator indices have already contributed a
// fully verified message per epoch. One instance serves the unaggregated
// attester sets and another the aggregator sets. Observations are strictly
// monotonic, once an (epoch, index) pair is observed it stays observed until
// the epoch is pruned.
type ObservedAttesters struct {
	lock                   sync.RWMutex
	capacityFn             func() uint64
	lowestPermissibleEpoch types.Epoch
	observed               map[types.Epoch]map[types.ValidatorIndex]bool
}

// NewObservedAttesters instantiates the per-epoch observation sets. The
// capacityFn bounds how high an observed validator index may be; a nil
// capacityFn falls back to the validator registry limit.
func NewObservedAttesters(capacityFn func() uint64) *ObservedAttesters {
	if capacityFn == nil {
		capacityFn = func() uint64 { return params.BeaconConfig().ValidatorRegistryLimit }
	}
	return &ObservedAttesters{
		capacityFn: capacityFn,
		observed:   make(map[types.Epoch]map[types.ValidatorIndex]bool),
	}
}

// HasObserved reports whether the (epoch, index) pair has been observed.
func (s *ObservedAttesters) HasObserved(epoch types.Epoch, index types.ValidatorIndex) (bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	if err := s.validate(epoch, index); err != nil {
		return false, err
	}
	return s.observed[epoch][index], nil
}

// Observe marks the (epoch, index) pair as observed and reports whether it was
// already observed. The check and insert run under one lock acquisition so two
// concurrent observers cannot both report an unobserved pair.
func (s *ObservedAttesters) Observe(epoch types.Epoch, index types.ValidatorIndex) (bool, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if err := s.validate(epoch, index); err != nil {
		return false, err
	}
	set, ok := s.observed[epoch]
	if !ok {
		set = make(map[types.ValidatorIndex]bool)
		s.observed[epoch] = set
	}
	if set[index] {
		return true, nil
	}
	set[index] = true
	return false, nil
}

// Prune drops every epoch below the given lowest permissible epoch. Callers
// manage the retention policy, typically two epochs.
func (s *ObservedAttesters) Prune(lowestPermissibleEpoch types.Epoch) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lowestPermissibleEpoch = lowestPermissibleEpoch
	for epoch := range s.observed {
		if epoch < lowestPermissibleEpoch {
			delete(s.observed, epoch)
		}
	}
}

func (s *ObservedAttesters) validate(epoch types.Epoch, index types.ValidatorIndex) error {
	if capacity := s.capacityFn(); uint64(index) >= capacity {
		return ValidatorIndexTooHighError{Index: index, Capacity: capacity}
	}
	if epoch < s.lowestPermissibleEpoch {
		return EpochTooLowError{Epoch: epoch, LowestPermissible: s.lowestPermissibleEpoch}
	}
	return nil
}
