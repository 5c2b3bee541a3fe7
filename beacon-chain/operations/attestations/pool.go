// Package attestations defines an attestations pool service implementation
// which is used to manage the lifecycle of aggregated, unaggregated and
// fork-choice attestations.
package attestations

import (
	"github.com/prysmaticlabs/attestation/beacon-chain/operations/attestations/kv"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// Pool defines the necessary methods for the attestations pool to serve fork
// choice and validators. In the current design, aggregated attestations are
// used by the proposer actor. Unaggregated attestations are used by the
// aggregator actor.
type Pool interface {
	// For aggregated attestations
	HasAggregatedAttestation(att *ethpb.Attestation) (bool, error)
	SaveAggregatedAttestation(att *ethpb.Attestation) error
	AggregatedAttestations() []*ethpb.Attestation
	DeleteAggregatedAttestation(att *ethpb.Attestation) error
	// For unaggregated attestations
	SaveUnaggregatedAttestation(att *ethpb.Attestation) error
	UnaggregatedAttestations() []*ethpb.Attestation
	DeleteUnaggregatedAttestation(att *ethpb.Attestation) error
	// For attestations to be passed to fork choice
	SaveForkchoiceAttestation(att *ethpb.Attestation) error
	ForkchoiceAttestations() []*ethpb.Attestation
	DeleteForkchoiceAttestation(att *ethpb.Attestation) error
}

// NewPool initializes a new attestation pool.
func NewPool() *kv.AttCaches {
	return kv.NewAttCaches()
}
