// Package state defines the beacon state wrapper used by a Prysm beacon
// node: a read-write locked BeaconState with getters, setters and deep copy.
package state

import (
	"sync"

	"github.com/pkg/errors"
	pb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// BeaconState defines a struct containing utilities for the eth2 chain state,
// guarding the raw container behind a readers/writer lock.
type BeaconState struct {
	state *pb.BeaconState
	lock  sync.RWMutex
}

// Initialize the beacon state from a raw state container. The container is
// referenced directly, not copied; callers that retain the container must not
// mutate it afterwards.
func Initialize(st *pb.BeaconState) (*BeaconState, error) {
	if st == nil {
		return nil, errors.New("received nil state")
	}
	return &BeaconState{state: st}, nil
}

// Copy returns a deep copy of the beacon state.
func (b *BeaconState) Copy() *BeaconState {
	if !b.HasInnerState() {
		return nil
	}
	b.lock.RLock()
	defer b.lock.RUnlock()

	return &BeaconState{state: pb.CopyBeaconState(b.state)}
}

// HasInnerState detects if the internal reference to the state data structure
// is populated correctly. Returns false if nil.
func (b *BeaconState) HasInnerState() bool {
	return b != nil && b.state != nil
}

// InnerStateUnsafe returns the pointer value of the underlying beacon state
// container. This can be dangerous because the value pointed to could be
// modified concurrently.
func (b *BeaconState) InnerStateUnsafe() *pb.BeaconState {
	if b == nil {
		return nil
	}
	return b.state
}
