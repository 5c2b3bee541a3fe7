package verification

import (
	"context"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/beacon-chain/cache"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
	"github.com/prysmaticlabs/attestation/shared/bls"
	"github.com/prysmaticlabs/attestation/shared/featureconfig"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/roughtime"
)

// signatureSet pairs one signature with the aggregated public key it must
// verify against and the signing root it covers.
type signatureSet struct {
	signature []byte
	publicKey bls.PublicKey
	message   [32]byte
}

// verifySignedAggregateSignatures verifies all three signatures carried by a
// signed aggregate and proof in one batched BLS call, or one by one when
// featureconfig DisableBatchSignatureVerification is set:
//
//   - the outer envelope signature by the aggregator,
//   - the inner selection proof by the aggregator,
//   - the attestation's aggregate signature under the attesting indices.
//
// All three share the fork version and the genesis validators root. Any
// failure surfaces as ErrInvalidSignature.
func (s *Service) verifySignedAggregateSignatures(
	ctx context.Context,
	signedAggregate *ethpb.SignedAggregateAttestationAndProof,
	indexedAtt *ethpb.IndexedAttestation,
) error {
	setupStart := roughtime.Now()

	view, err := s.cfg.PubkeyCache.View()
	if err != nil {
		return internalError(err)
	}
	defer view.Release()

	aggregatorIndex := signedAggregate.Message.AggregatorIndex
	if uint64(aggregatorIndex) >= view.Len() {
		return AggregatorPubkeyUnknownError{AggregatorIndex: aggregatorIndex}
	}

	fork, err := s.cfg.Chain.HeadFork()
	if err != nil {
		return internalError(err)
	}
	genesisValidatorsRoot := s.cfg.Chain.GenesisValidatorsRoot()

	selectionSet, err := selectionProofSignatureSet(view, signedAggregate, fork, genesisValidatorsRoot)
	if err != nil {
		return err
	}
	envelopeSet, err := aggregateAndProofSignatureSet(view, signedAggregate, fork, genesisValidatorsRoot)
	if err != nil {
		return err
	}
	attestationSet, err := indexedAttestationSignatureSet(view, indexedAtt, fork, genesisValidatorsRoot)
	if err != nil {
		return err
	}
	sets := []*signatureSet{selectionSet, envelopeSet, attestationSet}
	signatureSetupTimes.Observe(roughtime.Since(setupStart).Seconds())

	if featureconfig.Get().DisableBatchSignatureVerification {
		for _, set := range sets {
			sig, err := bls.SignatureFromBytes(set.signature)
			if err != nil {
				return ErrInvalidSignature
			}
			singleSignatureVerifications.Inc()
			if !sig.Verify(set.publicKey, set.message[:]) {
				return ErrInvalidSignature
			}
		}
		return nil
	}

	sigs := make([][]byte, len(sets))
	msgs := make([][32]byte, len(sets))
	pubKeys := make([]bls.PublicKey, len(sets))
	for i, set := range sets {
		sigs[i] = set.signature
		msgs[i] = set.message
		pubKeys[i] = set.publicKey
	}
	batchSignatureVerifications.Inc()
	valid, err := bls.VerifyMultipleSignatures(sigs, msgs, pubKeys)
	if err != nil || !valid {
		return ErrInvalidSignature
	}
	return nil
}

// verifyIndexedAttestationSignature verifies the aggregate signature of an
// indexed attestation, the single-signature path used for unaggregated
// attestations.
func (s *Service) verifyIndexedAttestationSignature(ctx context.Context, indexedAtt *ethpb.IndexedAttestation) error {
	setupStart := roughtime.Now()

	view, err := s.cfg.PubkeyCache.View()
	if err != nil {
		return internalError(err)
	}
	defer view.Release()

	fork, err := s.cfg.Chain.HeadFork()
	if err != nil {
		return internalError(err)
	}
	set, err := indexedAttestationSignatureSet(view, indexedAtt, fork, s.cfg.Chain.GenesisValidatorsRoot())
	if err != nil {
		return err
	}
	signatureSetupTimes.Observe(roughtime.Since(setupStart).Seconds())

	sig, err := bls.SignatureFromBytes(set.signature)
	if err != nil {
		return ErrInvalidSignature
	}
	singleSignatureVerifications.Inc()
	if !sig.Verify(set.publicKey, set.message[:]) {
		return ErrInvalidSignature
	}
	return nil
}

// selectionProofSignatureSet covers the aggregator signing the attestation
// slot under the selection proof domain.
func selectionProofSignatureSet(
	view *cache.PubkeyCacheView,
	signedAggregate *ethpb.SignedAggregateAttestationAndProof,
	fork *ethpb.Fork,
	genesisValidatorsRoot [32]byte,
) (*signatureSet, error) {
	slot := signedAggregate.Message.Aggregate.Data.Slot
	epoch := helpers.SlotToEpoch(slot)
	domain, err := helpers.Domain(fork, epoch, params.BeaconConfig().DomainSelectionProof, genesisValidatorsRoot[:])
	if err != nil {
		return nil, internalError(err)
	}
	root, err := helpers.ComputeSigningRoot(slot, domain)
	if err != nil {
		return nil, internalError(errors.Wrap(err, "could not compute signing root of slot"))
	}
	pub := view.Get(signedAggregate.Message.AggregatorIndex)
	if pub == nil {
		return nil, AggregatorPubkeyUnknownError{AggregatorIndex: signedAggregate.Message.AggregatorIndex}
	}
	return &signatureSet{
		signature: signedAggregate.Message.SelectionProof,
		publicKey: pub,
		message:   root,
	}, nil
}

// aggregateAndProofSignatureSet covers the aggregator signing the full
// aggregate and proof message under the outer envelope domain.
func aggregateAndProofSignatureSet(
	view *cache.PubkeyCacheView,
	signedAggregate *ethpb.SignedAggregateAttestationAndProof,
	fork *ethpb.Fork,
	genesisValidatorsRoot [32]byte,
) (*signatureSet, error) {
	epoch := helpers.SlotToEpoch(signedAggregate.Message.Aggregate.Data.Slot)
	domain, err := helpers.Domain(fork, epoch, params.BeaconConfig().DomainAggregateAndProof, genesisValidatorsRoot[:])
	if err != nil {
		return nil, internalError(err)
	}
	root, err := helpers.ComputeSigningRoot(signedAggregate.Message, domain)
	if err != nil {
		return nil, internalError(errors.Wrap(err, "could not compute signing root of aggregate and proof"))
	}
	pub := view.Get(signedAggregate.Message.AggregatorIndex)
	if pub == nil {
		return nil, AggregatorPubkeyUnknownError{AggregatorIndex: signedAggregate.Message.AggregatorIndex}
	}
	return &signatureSet{
		signature: signedAggregate.Signature,
		publicKey: pub,
		message:   root,
	}, nil
}

// indexedAttestationSignatureSet covers the attesting indices signing the
// attestation data under the attester domain at the target epoch. The public
// keys of every attester are aggregated into a single key.
func indexedAttestationSignatureSet(
	view *cache.PubkeyCacheView,
	indexedAtt *ethpb.IndexedAttestation,
	fork *ethpb.Fork,
	genesisValidatorsRoot [32]byte,
) (*signatureSet, error) {
	domain, err := helpers.Domain(fork, indexedAtt.Data.Target.Epoch, params.BeaconConfig().DomainBeaconAttester, genesisValidatorsRoot[:])
	if err != nil {
		return nil, internalError(err)
	}
	root, err := helpers.ComputeSigningRoot(indexedAtt.Data, domain)
	if err != nil {
		return nil, internalError(errors.Wrap(err, "could not compute signing root of attestation data"))
	}
	pubKeys := make([]bls.PublicKey, 0, len(indexedAtt.AttestingIndices))
	for _, i := range indexedAtt.AttestingIndices {
		pub := view.Get(types.ValidatorIndex(i))
		if pub == nil {
			return nil, internalError(errors.Errorf("unknown public key for validator %d", i))
		}
		pubKeys = append(pubKeys, pub.Copy())
	}
	if len(pubKeys) == 0 {
		return nil, ErrEmptyAggregationBitfield
	}
	return &signatureSet{
		signature: indexedAtt.Signature,
		publicKey: bls.AggregateMultiplePubkeys(pubKeys),
		message:   root,
	}, nil
}
