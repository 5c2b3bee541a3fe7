package cache

import (
	"errors"
	"fmt"

	types "github.com/prysmaticlabs/eth2-types"
)

var (
	// ErrNotCommittee will be returned when a cache object is not a pointer to
	// a Committee struct.
	ErrNotCommittee = errors.New("object is not a committee struct")

	// ErrCommitteeCacheLockTimeout is returned when the shuffling cache lock
	// could not be acquired within its bounded wait.
	ErrCommitteeCacheLockTimeout = errors.New("timeout acquiring committee cache lock")

	// ErrValidatorPubkeyCacheLockTimeout is returned when the validator pubkey
	// cache lock could not be acquired within its bounded wait.
	ErrValidatorPubkeyCacheLockTimeout = errors.New("timeout acquiring validator pubkey cache lock")
)

// ValidatorIndexTooHighError is returned when an observation refers to a
// validator index beyond the permitted registry bound.
type ValidatorIndexTooHighError struct {
	Index    types.ValidatorIndex
	Capacity uint64
}

func (e ValidatorIndexTooHighError) Error() string {
	return fmt.Sprintf("validator index %d is higher than the cache capacity %d", e.Index, e.Capacity)
}

// EpochTooLowError is returned when an observation refers to an epoch below
// the lowest epoch still tracked by the cache.
type EpochTooLowError struct {
	Epoch             types.Epoch
	LowestPermissible types.Epoch
}

func (e EpochTooLowError) Error() string {
	return fmt.Sprintf("epoch %d is below the lowest permissible epoch %d", e.Epoch, e.LowestPermissible)
}
