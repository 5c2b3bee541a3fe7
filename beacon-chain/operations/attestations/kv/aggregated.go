package kv

import (
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/attestation/beacon-chain/core/helpers"
	ethpb "github.com/prysmaticlabs/attestation/beacon-chain/types"
)

// SaveAggregatedAttestation saves an aggregated attestation in cache.
func (p *AttCaches) SaveAggregatedAttestation(att *ethpb.Attestation) error {
	if err := helpers.ValidateNilAttestation(att); err != nil {
		return err
	}
	if !helpers.IsAggregated(att) {
		return errors.New("attestation is not aggregated")
	}
	seen, err := p.hasSeenBit(att)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	r, err := att.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash attestation data")
	}

	copiedAtt := ethpb.CopyAttestation(att)
	p.aggregatedAttLock.Lock()
	defer p.aggregatedAttLock.Unlock()
	atts, ok := p.aggregatedAtt[r]
	if !ok {
		p.aggregatedAtt[r] = []*ethpb.Attestation{copiedAtt}
		return nil
	}
	p.aggregatedAtt[r] = append(atts, copiedAtt)

	return nil
}

// AggregatedAttestations returns the aggregated attestations in cache.
func (p *AttCaches) AggregatedAttestations() []*ethpb.Attestation {
	p.aggregatedAttLock.RLock()
	defer p.aggregatedAttLock.RUnlock()

	atts := make([]*ethpb.Attestation, 0)
	for _, a := range p.aggregatedAtt {
		for _, att := range a {
			atts = append(atts, ethpb.CopyAttestation(att) /* Copied */)
		}
	}

	return atts
}

// DeleteAggregatedAttestation deletes the aggregated attestations in cache.
func (p *AttCaches) DeleteAggregatedAttestation(att *ethpb.Attestation) error {
	if err := helpers.ValidateNilAttestation(att); err != nil {
		return err
	}
	if !helpers.IsAggregated(att) {
		return errors.New("attestation is not aggregated")
	}
	r, err := att.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash attestation data")
	}

	if err := p.insertSeenBit(att); err != nil {
		return err
	}

	p.aggregatedAttLock.Lock()
	defer p.aggregatedAttLock.Unlock()
	attList, ok := p.aggregatedAtt[r]
	if !ok {
		return nil
	}

	filtered := make([]*ethpb.Attestation, 0)
	for _, a := range attList {
		if !containsBits(att.AggregationBits, a.AggregationBits) {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == 0 {
		delete(p.aggregatedAtt, r)
	} else {
		p.aggregatedAtt[r] = filtered
	}

	return nil
}

// HasAggregatedAttestation checks if the input attestations has already existed in cache.
func (p *AttCaches) HasAggregatedAttestation(att *ethpb.Attestation) (bool, error) {
	if err := helpers.ValidateNilAttestation(att); err != nil {
		return false, err
	}
	r, err := att.Data.HashTreeRoot()
	if err != nil {
		return false, errors.Wrap(err, "could not tree hash attestation")
	}

	p.aggregatedAttLock.RLock()
	defer p.aggregatedAttLock.RUnlock()
	if atts, ok := p.aggregatedAtt[r]; ok {
		for _, a := range atts {
			if containsBits(a.AggregationBits, att.AggregationBits) {
				return true, nil
			}
		}
	}

	return false, nil
}

// AggregatedAttestationCount returns the number of aggregated attestations key in the pool.
func (p *AttCaches) AggregatedAttestationCount() int {
	p.aggregatedAttLock.RLock()
	defer p.aggregatedAttLock.RUnlock()
	return len(p.aggregatedAtt)
}

func (p *AttCaches) hasSeenBit(att *ethpb.Attestation) (bool, error) {
	r, err := att.Data.HashTreeRoot()
	if err != nil {
		return false, errors.Wrap(err, "could not tree hash attestation data")
	}

	v, ok := p.seenAtt.Get(string(r[:]))
	if ok {
		seenBits, ok := v.([]*ethpb.Attestation)
		if !ok {
			return false, errors.New("could not convert to attestations")
		}
		for _, seen := range seenBits {
			if containsBits(seen.AggregationBits, att.AggregationBits) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (p *AttCaches) insertSeenBit(att *ethpb.Attestation) error {
	r, err := att.Data.HashTreeRoot()
	if err != nil {
		return errors.Wrap(err, "could not tree hash attestation data")
	}

	v, ok := p.seenAtt.Get(string(r[:]))
	if ok {
		seenBits, ok := v.([]*ethpb.Attestation)
		if !ok {
			return errors.New("could not convert to attestations")
		}
		alreadyExists := false
		for _, bit := range seenBits {
			if containsBits(bit.AggregationBits, att.AggregationBits) {
				alreadyExists = true
				break
			}
		}
		if !alreadyExists {
			seenBits = append(seenBits, ethpb.CopyAttestation(att))
		}
		p.seenAtt.SetDefault(string(r[:]), seenBits)
		return nil
	}

	p.seenAtt.SetDefault(string(r[:]), []*ethpb.Attestation{ethpb.CopyAttestation(att)})
	return nil
}

// containsBits reports whether a carries every set bit of b.
func containsBits(a, b bitfield.Bitlist) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, idx := range b.BitIndices() {
		if !a.BitAt(uint64(idx)) {
			return false
		}
	}
	return true
}
