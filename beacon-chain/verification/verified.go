package verification

import (
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	"github.com/prysmaticlabs/attestation/beacon-chain/operations/attestations"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// SignatureVerifiedAttestation is implemented by the wrapper types returned
// from the pipeline. Downstream components, fork choice application and the
// slasher among them, consume the precomputed indexed form through it without
// re-verifying.
type SignatureVerifiedAttestation interface {
	IndexedAttestation() *ethpb.IndexedAttestation
}

// VerifiedAggregate wraps a signed aggregate and proof that has been verified
// for propagation on the gossip network.
type VerifiedAggregate struct {
	signedAggregate    *ethpb.SignedAggregateAttestationAndProof
	indexedAttestation *ethpb.IndexedAttestation
}

// Attestation returns the underlying attestation of the signed aggregate.
func (v *VerifiedAggregate) Attestation() *ethpb.Attestation {
	return v.signedAggregate.Message.Aggregate
}

// SignedAggregate returns the wrapped signed aggregate and proof.
func (v *VerifiedAggregate) SignedAggregate() *ethpb.SignedAggregateAttestationAndProof {
	return v.signedAggregate
}

// IndexedAttestation returns the indexed form computed during verification.
func (v *VerifiedAggregate) IndexedAttestation() *ethpb.IndexedAttestation {
	return v.indexedAttestation
}

// AddToPool saves the verified aggregate in the operations pool for block
// inclusion. An unaggregated attestation can make it here, it's valid, the
// aggregator is just itself, although it means poor performance for the
// subnet.
func (v *VerifiedAggregate) AddToPool(pool attestations.Pool) error {
	att := v.Attestation()
	if !helpers.IsAggregated(att) {
		return pool.SaveUnaggregatedAttestation(att)
	}
	return pool.SaveAggregatedAttestation(att)
}

// VerifiedUnaggregated wraps an attestation that has been verified for
// propagation on the gossip network.
type VerifiedUnaggregated struct {
	attestation        *ethpb.Attestation
	indexedAttestation *ethpb.IndexedAttestation
}

// Attestation returns the wrapped attestation.
func (v *VerifiedUnaggregated) Attestation() *ethpb.Attestation {
	return v.attestation
}

// IndexedAttestation returns the indexed form computed during verification.
func (v *VerifiedUnaggregated) IndexedAttestation() *ethpb.IndexedAttestation {
	return v.indexedAttestation
}

// AddToPool saves the verified attestation in the operations pool for
// aggregation.
func (v *VerifiedUnaggregated) AddToPool(pool attestations.Pool) error {
	return pool.SaveUnaggregatedAttestation(v.attestation)
}
