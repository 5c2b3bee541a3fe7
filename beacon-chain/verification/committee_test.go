package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestObtainIndexedAttestation_Idempotent(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, _, _ := h.unaggregatedAtt(t, 1, 0, 1)

	missesBefore := metricValue(t, cache.CommitteeCacheMiss)

	first, committeesPerSlot, err := h.service.obtainIndexedAttestationAndCommitteesPerSlot(context.Background(), att)
	require.NoError(t, err)
	second, committeesPerSlot2, err := h.service.obtainIndexedAttestationAndCommitteesPerSlot(context.Background(), att)
	require.NoError(t, err)

	assert.DeepEqual(t, first.AttestingIndices, second.AttestingIndices, "Repeated committee resolution differs")
	assert.Equal(t, committeesPerSlot, committeesPerSlot2)
	// The shuffling cache is only built once.
	assert.Equal(t, missesBefore+1, metricValue(t, cache.CommitteeCacheMiss))
}

func TestMapAttestationCommittee_NoCommitteeForSlotAndIndex(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, _, _ := h.unaggregatedAtt(t, 1, 0, 1)
	// Committee index beyond the committees of the slot.
	att.Data.CommitteeIndex = 64

	_, _, err := h.service.obtainIndexedAttestationAndCommitteesPerSlot(context.Background(), att)
	var noCommittee NoCommitteeForSlotAndIndexError
	require.Equal(t, true, errors.As(err, &noCommittee), "Expected NoCommitteeForSlotAndIndexError, got %v", err)
	assert.Equal(t, ClassifyInvalid, Classify(err))
}
