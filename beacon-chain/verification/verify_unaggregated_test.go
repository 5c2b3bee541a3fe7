package verification

import (
	"context"
	"errors"
	"sync"
	"testing"

	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestVerifyUnaggregated_OkThenPriorAttestationKnown(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, validatorIndex := h.unaggregatedAtt(t, 1, 0, 3)

	verified, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, att, verified.Attestation())
	require.NotNil(t, verified.IndexedAttestation())
	assert.Equal(t, uint64(validatorIndex), verified.IndexedAttestation().AttestingIndices[0])

	// A second, identical message must be refused without corrupting state.
	_, err = h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var prior PriorAttestationKnownError
	require.Equal(t, true, errors.As(err, &prior), "Expected PriorAttestationKnownError, got %v", err)
	assert.Equal(t, validatorIndex, prior.ValidatorIndex)
	assert.Equal(t, att.Data.Target.Epoch, prior.Epoch)
	assert.Equal(t, ClassifyAmbiguous, Classify(err))
}

func TestVerifyUnaggregated_UnknownHeadBlock(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 3)
	att.Data.BeaconBlockRoot = make([]byte, 32)
	att.Data.BeaconBlockRoot[0] = 0xde

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var unknown UnknownHeadBlockError
	require.Equal(t, true, errors.As(err, &unknown), "Expected UnknownHeadBlockError, got %v", err)
	assert.Equal(t, ClassifyAmbiguous, Classify(err))

	// No cache was mutated, the same validator still verifies cleanly.
	goodAtt, goodSubnet, _ := h.unaggregatedAtt(t, 1, 0, 3)
	_, err = h.service.VerifyUnaggregated(context.Background(), goodAtt, goodSubnet)
	require.NoError(t, err)
}

func TestVerifyUnaggregated_UnknownTargetRoot(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 3)
	att.Data.Target.Root = make([]byte, 32)
	att.Data.Target.Root[0] = 0xbe

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var unknown UnknownTargetRootError
	require.Equal(t, true, errors.As(err, &unknown), "Expected UnknownTargetRootError, got %v", err)
	assert.Equal(t, ClassifyInvalid, Classify(err))
}

func TestVerifyUnaggregated_TooManySkippedSlots(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 4, importMaxSkipSlots: 2})
	att, subnet, _ := h.unaggregatedAtt(t, 4, 0, 0)

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var skipped TooManySkippedSlotsError
	require.Equal(t, true, errors.As(err, &skipped), "Expected TooManySkippedSlotsError, got %v", err)
	assert.Equal(t, types.Slot(0), skipped.HeadBlockSlot)
	assert.Equal(t, types.Slot(4), skipped.AttestationSlot)

	// The identical aggregate form is accepted, aggregates bypass the guard.
	signed := h.signedAggregate(t, 4, 0, []uint64{0, 1})
	_, aggErr := h.service.VerifyAggregate(context.Background(), signed)
	require.NoError(t, aggErr)
}

func TestVerifyUnaggregated_NotExactlyOneAggregationBitSet(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 0)
	att.AggregationBits.SetBitAt(1, true)

	before := metricValue(t, singleSignatureVerifications)
	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var notOne NotExactlyOneAggregationBitSetError
	require.Equal(t, true, errors.As(err, &notOne), "Expected NotExactlyOneAggregationBitSetError, got %v", err)
	assert.Equal(t, uint64(2), notOne.Count)
	assert.Equal(t, before, metricValue(t, singleSignatureVerifications),
		"Signature verification ran for a malformed attestation")
}

func TestVerifyUnaggregated_InvalidSubnet(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 2)

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet+1)
	var invalidSubnet InvalidSubnetError
	require.Equal(t, true, errors.As(err, &invalidSubnet), "Expected InvalidSubnetError, got %v", err)
	assert.Equal(t, subnet+1, invalidSubnet.Received)
	assert.Equal(t, subnet, invalidSubnet.Expected)
}

func TestVerifyUnaggregated_InvalidSignature(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 1)
	att.Signature[10] ^= 0xff

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, ClassifyInvalid, Classify(err))

	// Observation caches are untouched by signature failures, the honest
	// form of the same message still verifies.
	goodAtt, goodSubnet, _ := h.unaggregatedAtt(t, 1, 0, 1)
	_, err = h.service.VerifyUnaggregated(context.Background(), goodAtt, goodSubnet)
	require.NoError(t, err)
}

func TestVerifyUnaggregated_SlotBoundaries(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 10})

	// One slot beyond the future tolerance window.
	att, subnet, _ := h.unaggregatedAtt(t, 11, 0, 0)
	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var future FutureSlotError
	require.Equal(t, true, errors.As(err, &future), "Expected FutureSlotError, got %v", err)
	assert.Equal(t, types.Slot(11), future.AttestationSlot)

	// earliest permissible slot = 10 - slots_per_epoch(8) = 2. Slot 2 passes
	// the range check, slot 1 does not.
	att, subnet, _ = h.unaggregatedAtt(t, 1, 0, 0)
	_, err = h.service.VerifyUnaggregated(context.Background(), att, subnet)
	var past PastSlotError
	require.Equal(t, true, errors.As(err, &past), "Expected PastSlotError, got %v", err)
	assert.Equal(t, types.Slot(2), past.EarliestPermissibleSlot)

	att, subnet, _ = h.unaggregatedAtt(t, 2, 0, 0)
	_, err = h.service.VerifyUnaggregated(context.Background(), att, subnet)
	require.NoError(t, err, "Attestation at the earliest permissible slot was rejected")
}

func TestVerifyUnaggregated_BadTargetEpoch(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 0)
	att.Data.Target.Epoch = 1

	_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
	require.ErrorIs(t, err, ErrBadTargetEpoch)
}

func TestVerifyUnaggregated_ConcurrentDuplicates(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	att, subnet, _ := h.unaggregatedAtt(t, 1, 0, 2)

	workers := 4
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.service.VerifyUnaggregated(context.Background(), att, subnet)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	oks := 0
	for err := range results {
		if err == nil {
			oks++
			continue
		}
		var prior PriorAttestationKnownError
		require.Equal(t, true, errors.As(err, &prior), "Unexpected failure: %v", err)
	}
	assert.Equal(t, 1, oks, "Expected exactly one concurrent verification to win")
}
