// Package stategen defines functions to load beacon chain states by root,
// fronted by a hot state cache to reduce a beacon node's resource consumption.
package stategen

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	stateTrie "github.com/prysmaticlabs/attestation/beacon-chain/state"
	"go.opencensus.io/trace"
)

// ErrNoStateForRoot is returned when no state is known for the requested
// state root.
var ErrNoStateForRoot = errors.New("no state found for the requested state root")

// StateManager represents a management object that handles the internal
// logic of loading beacon states by root.
type StateManager interface {
	SaveState(ctx context.Context, stateRoot [32]byte, st *stateTrie.BeaconState) error
	StateByRootForAttestation(ctx context.Context, stateRoot [32]byte) (*stateTrie.BeaconState, error)
}

// StateProvider supplies states missing from the hot cache, typically backed
// by the on-disk database.
type StateProvider interface {
	State(ctx context.Context, stateRoot [32]byte) (*stateTrie.BeaconState, error)
}

// State is the state management object.
type State struct {
	stateProvider StateProvider
	hotStateCache *cache.HotStateCache
}

// New returns a new state management object.
func New(provider StateProvider) *State {
	return &State{
		stateProvider: provider,
		hotStateCache: cache.NewHotStateCache(),
	}
}

// SaveState stores the state in the hot cache, keyed by its state root.
func (s *State) SaveState(ctx context.Context, stateRoot [32]byte, st *stateTrie.BeaconState) error {
	_, span := trace.StartSpan(ctx, "stateGen.SaveState")
	defer span.End()

	if st == nil || !st.HasInnerState() {
		return errors.New("nil state")
	}
	s.hotStateCache.Put(stateRoot, st.Copy())
	return nil
}

// StateByRootForAttestation retrieves the state keyed by its state root for
// attestation verification only. The returned state may carry stale interior
// per-slot hashes, its randao mixes and validator registry are correct, which
// is all committee shuffling consumes.
func (s *State) StateByRootForAttestation(ctx context.Context, stateRoot [32]byte) (*stateTrie.BeaconState, error) {
	ctx, span := trace.StartSpan(ctx, "stateGen.StateByRootForAttestation")
	defer span.End()

	if cached := s.hotStateCache.Get(stateRoot); cached != nil {
		return cached, nil
	}

	st, err := s.stateProvider.State(ctx, stateRoot)
	if err != nil {
		return nil, errors.Wrap(err, "could not read state from provider")
	}
	if st == nil || !st.HasInnerState() {
		return nil, ErrNoStateForRoot
	}
	s.hotStateCache.Put(stateRoot, st.Copy())
	return st, nil
}
