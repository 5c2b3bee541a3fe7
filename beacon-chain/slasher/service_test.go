package slasher

import (
	"context"
	"testing"
	"time"

	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

type recordingDetector struct {
	received chan *ethpb.IndexedAttestation
}

func (d *recordingDetector) DetectSlashableAttestation(_ context.Context, att *ethpb.IndexedAttestation) {
	d.received <- att
}

func TestService_AcceptAttestation(t *testing.T) {
	detector := &recordingDetector{received: make(chan *ethpb.IndexedAttestation, 1)}
	s := NewService(context.Background(), &Config{Detector: detector})
	s.Start()
	defer func() {
		require.NoError(t, s.Stop())
	}()

	att := &ethpb.IndexedAttestation{AttestingIndices: []uint64{42}}
	s.AcceptAttestation(att)

	select {
	case got := <-detector.received:
		assert.DeepEqual(t, att, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Detector did not receive the attestation")
	}
}

func TestService_AcceptNilAttestation(t *testing.T) {
	s := NewService(context.Background(), &Config{})
	s.AcceptAttestation(nil) // must not panic or block
	require.NoError(t, s.Stop())
}
