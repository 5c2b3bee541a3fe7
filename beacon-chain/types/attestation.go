// Package types defines the consensus containers handled by the attestation
// verification core. The rest of the repository imports this package as
// ethpb, matching the field layouts of the upstream eth2 API definitions.
package types

import (
	eth2types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/go-bitfield"
)

// Checkpoint is a (epoch, root) pair an attestation commits to.
type Checkpoint struct {
	Epoch eth2types.Epoch `json:"epoch"`
	Root  []byte          `json:"root" ssz-size:"32"`
}

// AttestationData is the data every attester in a committee signs over.
type AttestationData struct {
	Slot            eth2types.Slot           `json:"slot"`
	CommitteeIndex  eth2types.CommitteeIndex `json:"committee_index"`
	BeaconBlockRoot []byte                   `json:"beacon_block_root" ssz-size:"32"`
	Source          *Checkpoint              `json:"source"`
	Target          *Checkpoint              `json:"target"`
}

// Attestation is the aggregatable vote broadcast on the gossip network.
type Attestation struct {
	AggregationBits bitfield.Bitlist `json:"aggregation_bits" ssz-max:"2048"`
	Data            *AttestationData `json:"data"`
	Signature       []byte           `json:"signature" ssz-size:"96"`
}

// AggregateAttestationAndProof couples an aggregate attestation with the
// aggregator's slot-lottery selection proof.
type AggregateAttestationAndProof struct {
	AggregatorIndex eth2types.ValidatorIndex `json:"aggregator_index"`
	Aggregate       *Attestation             `json:"aggregate"`
	SelectionProof  []byte                   `json:"selection_proof" ssz-size:"96"`
}

// SignedAggregateAttestationAndProof is the outer gossip envelope signed by
// the aggregator.
type SignedAggregateAttestationAndProof struct {
	Message   *AggregateAttestationAndProof `json:"message"`
	Signature []byte                        `json:"signature" ssz-size:"96"`
}

// IndexedAttestation is the canonical form of an attestation resolved against
// its committee: sorted attesting validator indices alongside the data and
// aggregate signature. It is the stable identity used for signature
// verification and slasher ingestion.
type IndexedAttestation struct {
	AttestingIndices []uint64         `json:"attesting_indices" ssz-max:"2048"`
	Data             *AttestationData `json:"data"`
	Signature        []byte           `json:"signature" ssz-size:"96"`
}
