package cache

import (
	"time"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/async"
	"github.com/prysmaticlabs/attestation/shared/bls"
)

// validatorPubkeyCacheLockTimeout bounds how long signature verification waits
// on the pubkey cache before surfacing an internal error.
const validatorPubkeyCacheLockTimeout = time.Second

// ValidatorPubkeyCache is a dense, append-only mapping from validator index to
// deserialized BLS public key. An index below the length always resolves to a
// stable entry.
type ValidatorPubkeyCache struct {
	lock    *async.TimeoutRWMutex
	pubkeys []bls.PublicKey
}

// NewValidatorPubkeyCache builds the cache from the validator registry of the
// provided state.
func NewValidatorPubkeyCache(state *stateTrie.BeaconState) (*ValidatorPubkeyCache, error) {
	c := &ValidatorPubkeyCache{
		lock:    async.NewTimeoutRWMutex(),
		pubkeys: make([]bls.PublicKey, 0, state.NumValidators()),
	}
	var importErr error
	if err := state.ReadFromEveryValidator(func(idx int, val *ethpb.Validator) error {
		pub, err := bls.PublicKeyFromBytes(val.PublicKey)
		if err != nil {
			importErr = errors.Wrapf(err, "could not deserialize pubkey of validator %d", idx)
			return importErr
		}
		c.pubkeys = append(c.pubkeys, pub)
		return nil
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// AddPubkeys appends newly activated validator keys. Existing entries are
// never mutated.
func (c *ValidatorPubkeyCache) AddPubkeys(pubkeys [][]byte) error {
	decoded := make([]bls.PublicKey, len(pubkeys))
	for i, pk := range pubkeys {
		pub, err := bls.PublicKeyFromBytes(pk)
		if err != nil {
			return errors.Wrap(err, "could not deserialize pubkey")
		}
		decoded[i] = pub
	}
	if !c.lock.LockFor(validatorPubkeyCacheLockTimeout) {
		return ErrValidatorPubkeyCacheLockTimeout
	}
	defer c.lock.Unlock()
	c.pubkeys = append(c.pubkeys, decoded...)
	return nil
}

// View returns a read-locked view of the cache, or an error when the bounded
// lock wait elapses. Callers must Release the view when done.
func (c *ValidatorPubkeyCache) View() (*PubkeyCacheView, error) {
	if !c.lock.RLockFor(validatorPubkeyCacheLockTimeout) {
		return nil, ErrValidatorPubkeyCacheLockTimeout
	}
	return &PubkeyCacheView{cache: c}, nil
}

// Len returns the number of keys in the cache.
func (c *ValidatorPubkeyCache) Len() (uint64, error) {
	v, err := c.View()
	if err != nil {
		return 0, err
	}
	defer v.Release()
	return v.Len(), nil
}

// PubkeyCacheView is a read-locked handle over the pubkey cache, allowing a
// signature verification pass to resolve many keys under one acquisition.
type PubkeyCacheView struct {
	cache *ValidatorPubkeyCache
}

// Get returns the public key at the given validator index, or nil when the
// index is unknown.
func (v *PubkeyCacheView) Get(i types.ValidatorIndex) bls.PublicKey {
	if uint64(i) >= uint64(len(v.cache.pubkeys)) {
		return nil
	}
	return v.cache.pubkeys[i]
}

// Len returns the number of keys visible through the view.
func (v *PubkeyCacheView) Len() uint64 {
	return uint64(len(v.cache.pubkeys))
}

// Release drops the read lock held by the view.
func (v *PubkeyCacheView) Release() {
	v.cache.lock.RUnlock()
}
