package kv

import (
	"github.com/pkg/errors"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// SaveForkchoiceAttestation saves a forkchoice attestation in cache.
func (p *AttCaches) SaveForkchoiceAttestation(att *ethpb.Attestation) error {
	r, err := att.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash attestation")
	}

	att = ethpb.CopyAttestation(att) // Copied.
	p.forkchoiceAttLock.Lock()
	defer p.forkchoiceAttLock.Unlock()
	p.forkchoiceAtt[r] = att

	return nil
}

// ForkchoiceAttestations returns the forkchoice attestations in cache.
func (p *AttCaches) ForkchoiceAttestations() []*ethpb.Attestation {
	atts := make([]*ethpb.Attestation, 0)

	p.forkchoiceAttLock.RLock()
	defer p.forkchoiceAttLock.RUnlock()
	for _, att := range p.forkchoiceAtt {
		atts = append(atts, ethpb.CopyAttestation(att) /* Copied */)
	}

	return atts
}

// DeleteForkchoiceAttestation deletes a forkchoice attestation in cache.
func (p *AttCaches) DeleteForkchoiceAttestation(att *ethpb.Attestation) error {
	r, err := att.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash attestation")
	}

	p.forkchoiceAttLock.Lock()
	defer p.forkchoiceAttLock.Unlock()
	delete(p.forkchoiceAtt, r)

	return nil
}
