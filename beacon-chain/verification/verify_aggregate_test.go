package verification

import (
	"context"
	"errors"
	"testing"

	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/testutil/assert"
	"github.com/prysmaticlabs/attestation/shared/testutil/require"
)

func TestVerifyAggregate_OkThenAlreadyKnown(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	signed := h.signedAggregate(t, 1, 0, []uint64{0, 1, 2})

	verified, err := h.service.VerifyAggregate(context.Background(), signed)
	require.NoError(t, err)
	require.NotNil(t, verified)
	assert.Equal(t, signed.Message.Aggregate, verified.Attestation())
	assert.Equal(t, 3, len(verified.IndexedAttestation().AttestingIndices))

	// The same aggregate replayed is refused as already known.
	_, err = h.service.VerifyAggregate(context.Background(), signed)
	var known AttestationAlreadyKnownError
	require.Equal(t, true, errors.As(err, &known), "Expected AttestationAlreadyKnownError, got %v", err)
	assert.Equal(t, ClassifyAmbiguous, Classify(err))
}

func TestVerifyAggregate_EmptyAggregationBitfield(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	signed := h.signedAggregate(t, 1, 0, []uint64{0})
	committee, _ := h.committeeAt(t, 1, 0)
	signed.Message.Aggregate.AggregationBits = bitfield.NewBitlist(uint64(len(committee)))

	_, err := h.service.VerifyAggregate(context.Background(), signed)
	require.ErrorIs(t, err, ErrEmptyAggregationBitfield)
	assert.Equal(t, ClassifyInvalid, Classify(err))
}

func TestVerifyAggregate_InvalidSelectionProof(t *testing.T) {
	useMinimal(t)
	params.BeaconConfig().TargetAggregatorsPerCommittee = 1
	// 256 validators put 8 members in each committee, giving an aggregator
	// modulo of 8 under the lowered target.
	h := setupHarness(t, setupOpts{currentSlot: 1, numValidators: 256})
	att := h.aggregateAttestation(t, 1, 0, []uint64{0, 1})

	committee, _ := h.committeeAt(t, 1, 0)
	var rejected *ethpb.SignedAggregateAttestationAndProof
	for _, member := range committee {
		proof := h.selectionProof(t, 1, member)
		elected, err := helpers.IsAggregator(uint64(len(committee)), proof)
		require.NoError(t, err)
		if !elected {
			message := &ethpb.AggregateAttestationAndProof{
				AggregatorIndex: member,
				Aggregate:       att,
				SelectionProof:  proof,
			}
			rejected = &ethpb.SignedAggregateAttestationAndProof{
				Message:   message,
				Signature: h.signEnvelope(t, message),
			}
			break
		}
	}
	require.NotNil(t, rejected, "Every committee member was elected, cannot exercise rejection")

	before := metricValue(t, batchSignatureVerifications)
	_, err := h.service.VerifyAggregate(context.Background(), rejected)
	var invalidProof InvalidSelectionProofError
	require.Equal(t, true, errors.As(err, &invalidProof), "Expected InvalidSelectionProofError, got %v", err)
	assert.Equal(t, rejected.Message.AggregatorIndex, invalidProof.AggregatorIndex)
	assert.Equal(t, before, metricValue(t, batchSignatureVerifications),
		"BLS batch verification ran despite the rejected selection proof")
}

func TestVerifyAggregate_AggregatorNotInCommittee(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	signed := h.signedAggregate(t, 1, 0, []uint64{0, 1})

	// Replace the aggregator with a member of another committee. The
	// aggregator modulo is one here, so the selection proof still elects.
	otherCommittee, _ := h.committeeAt(t, 1, 1)
	outsider := otherCommittee[0]
	message := &ethpb.AggregateAttestationAndProof{
		AggregatorIndex: outsider,
		Aggregate:       signed.Message.Aggregate,
		SelectionProof:  h.selectionProof(t, 1, outsider),
	}
	outsiderSigned := &ethpb.SignedAggregateAttestationAndProof{
		Message:   message,
		Signature: h.signEnvelope(t, message),
	}

	_, err := h.service.VerifyAggregate(context.Background(), outsiderSigned)
	var notInCommittee AggregatorNotInCommitteeError
	require.Equal(t, true, errors.As(err, &notInCommittee), "Expected AggregatorNotInCommitteeError, got %v", err)
	assert.Equal(t, outsider, notInCommittee.AggregatorIndex)
}

func TestVerifyAggregate_DuplicateAggregator(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1, withSlasher: true})

	first := h.signedAggregate(t, 1, 0, []uint64{0, 1})
	second := h.signedAggregate(t, 1, 0, []uint64{0, 1, 2})
	// Both aggregates carry the same elected aggregator for the slot.
	require.Equal(t, first.Message.AggregatorIndex, second.Message.AggregatorIndex)

	_, err := h.service.VerifyAggregate(context.Background(), first)
	require.NoError(t, err)

	_, err = h.service.VerifyAggregate(context.Background(), second)
	var already AggregatorAlreadyKnownError
	require.Equal(t, true, errors.As(err, &already), "Expected AggregatorAlreadyKnownError, got %v", err)
	assert.Equal(t, second.Message.AggregatorIndex, already.AggregatorIndex)
	assert.Equal(t, second.Message.Aggregate.Data.Target.Epoch, already.Epoch)
	assert.Equal(t, ClassifyAmbiguous, Classify(err))

	// The rejected attestation is still indexable, it reaches the slasher
	// exactly once.
	require.Equal(t, 1, h.slasher.count())
	assert.Equal(t, 3, len(h.slasher.received[0].AttestingIndices))
}

func TestVerifyAggregate_InvalidSignatureDoesNotFeedSlasher(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1, withSlasher: true})
	signed := h.signedAggregate(t, 1, 0, []uint64{0, 1})
	signed.Signature[5] ^= 0xff

	_, err := h.service.VerifyAggregate(context.Background(), signed)
	require.ErrorIs(t, err, ErrInvalidSignature)
	assert.Equal(t, 0, h.slasher.count(), "Signature-invalid attestation must never reach the slasher")

	// No observation cache changed, the honest form still verifies.
	honest := h.signedAggregate(t, 1, 0, []uint64{0, 1})
	_, err = h.service.VerifyAggregate(context.Background(), honest)
	require.NoError(t, err)
}

func TestVerifyAggregate_ShufflingCacheMissThenHit(t *testing.T) {
	useMinimal(t)
	// Slot 16 is epoch 2, while the stored target state sits at slot 0. The
	// first resolution must load the state and walk it forward, the second
	// must hit the shuffling cache.
	h := setupHarness(t, setupOpts{currentSlot: 16})

	missesBefore := metricValue(t, cache.CommitteeCacheMiss)
	hitsBefore := metricValue(t, cache.CommitteeCacheHit)

	first := h.signedAggregate(t, 16, 0, []uint64{0, 1})
	_, err := h.service.VerifyAggregate(context.Background(), first)
	require.NoError(t, err)
	assert.Equal(t, missesBefore+1, metricValue(t, cache.CommitteeCacheMiss), "Expected a shuffling cache miss")

	second := h.signedAggregate(t, 16, 1, []uint64{0, 1})
	_, err = h.service.VerifyAggregate(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, true, metricValue(t, cache.CommitteeCacheHit) > hitsBefore, "Expected a shuffling cache hit")
}

func TestVerifyAggregate_ValidatorIndexTooHigh(t *testing.T) {
	useMinimal(t)
	h := setupHarness(t, setupOpts{currentSlot: 1})
	signed := h.signedAggregate(t, 1, 0, []uint64{0, 1})
	signed.Message.AggregatorIndex = 1 << 30

	_, err := h.service.VerifyAggregate(context.Background(), signed)
	var tooHigh ValidatorIndexTooHighError
	require.Equal(t, true, errors.As(err, &tooHigh), "Expected ValidatorIndexTooHighError, got %v", err)
	assert.Equal(t, ClassifyInvalid, Classify(err))
}

func TestClassify_Internal(t *testing.T) {
	err := internalError(errors.New("boom"))
	assert.Equal(t, ClassifyInternal, Classify(err))
}
