package state

import (
	"context"

	"github.com/prysmaticlabs/attestation/beacon-chain/state/stateutil"
	"go.opencensus.io/trace"
)

// HashTreeRoot of the beacon state retrieves the merkle root of the beacon
// state based on the eth2 Simple Serialize specification.
func (b *BeaconState) HashTreeRoot(ctx context.Context) ([32]byte, error) {
	_, span := trace.StartSpan(ctx, "beaconState.HashTreeRoot")
	defer span.End()

	b.lock.RLock()
	defer b.lock.RUnlock()

	return stateutil.HashTreeRootState(b.state)
}
