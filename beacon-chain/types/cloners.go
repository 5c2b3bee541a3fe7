package types

// CopyCheckpoint copies the provided checkpoint.
func CopyCheckpoint(c *Checkpoint) *Checkpoint {
	if c == nil {
		return nil
	}
	return &Checkpoint{
		Epoch: c.Epoch,
		Root:  safeCopyBytes(c.Root),
	}
}

// CopyAttestationData copies the provided attestation data.
func CopyAttestationData(attData *AttestationData) *AttestationData {
	if attData == nil {
		return nil
	}
	return &AttestationData{
		Slot:            attData.Slot,
		CommitteeIndex:  attData.CommitteeIndex,
		BeaconBlockRoot: safeCopyBytes(attData.BeaconBlockRoot),
		Source:          CopyCheckpoint(attData.Source),
		Target:          CopyCheckpoint(attData.Target),
	}
}

// CopyAttestation copies the provided attestation.
func CopyAttestation(att *Attestation) *Attestation {
	if att == nil {
		return nil
	}
	return &Attestation{
		AggregationBits: safeCopyBytes(att.AggregationBits),
		Data:            CopyAttestationData(att.Data),
		Signature:       safeCopyBytes(att.Signature),
	}
}

// CopyIndexedAttestation copies the provided indexed attestation.
func CopyIndexedAttestation(indexedAtt *IndexedAttestation) *IndexedAttestation {
	if indexedAtt == nil {
		return nil
	}
	var indices []uint64
	if indexedAtt.AttestingIndices != nil {
		indices = make([]uint64, len(indexedAtt.AttestingIndices))
		copy(indices, indexedAtt.AttestingIndices)
	}
	return &IndexedAttestation{
		AttestingIndices: indices,
		Data:             CopyAttestationData(indexedAtt.Data),
		Signature:        safeCopyBytes(indexedAtt.Signature),
	}
}

// CopyAggregateAttestationAndProof copies the provided aggregate attestation and proof.
func CopyAggregateAttestationAndProof(a *AggregateAttestationAndProof) *AggregateAttestationAndProof {
	if a == nil {
		return nil
	}
	return &AggregateAttestationAndProof{
		AggregatorIndex: a.AggregatorIndex,
		Aggregate:       CopyAttestation(a.Aggregate),
		SelectionProof:  safeCopyBytes(a.SelectionProof),
	}
}

// CopySignedAggregateAttestationAndProof copies the provided signed aggregate attestation and proof.
func CopySignedAggregateAttestationAndProof(a *SignedAggregateAttestationAndProof) *SignedAggregateAttestationAndProof {
	if a == nil {
		return nil
	}
	return &SignedAggregateAttestationAndProof{
		Message:   CopyAggregateAttestationAndProof(a.Message),
		Signature: safeCopyBytes(a.Signature),
	}
}

// CopyFork copies the provided fork.
func CopyFork(f *Fork) *Fork {
	if f == nil {
		return nil
	}
	return &Fork{
		PreviousVersion: safeCopyBytes(f.PreviousVersion),
		CurrentVersion:  safeCopyBytes(f.CurrentVersion),
		Epoch:           f.Epoch,
	}
}

// CopyValidator copies the provided validator.
func CopyValidator(v *Validator) *Validator {
	if v == nil {
		return nil
	}
	return &Validator{
		PublicKey:                  safeCopyBytes(v.PublicKey),
		WithdrawalCredentials:      safeCopyBytes(v.WithdrawalCredentials),
		EffectiveBalance:           v.EffectiveBalance,
		Slashed:                    v.Slashed,
		ActivationEligibilityEpoch: v.ActivationEligibilityEpoch,
		ActivationEpoch:            v.ActivationEpoch,
		ExitEpoch:                  v.ExitEpoch,
		WithdrawableEpoch:          v.WithdrawableEpoch,
	}
}

// CopyBeaconBlockHeader copies the provided beacon block header.
func CopyBeaconBlockHeader(h *BeaconBlockHeader) *BeaconBlockHeader {
	if h == nil {
		return nil
	}
	return &BeaconBlockHeader{
		Slot:          h.Slot,
		ProposerIndex: h.ProposerIndex,
		ParentRoot:    safeCopyBytes(h.ParentRoot),
		StateRoot:     safeCopyBytes(h.StateRoot),
		BodyRoot:      safeCopyBytes(h.BodyRoot),
	}
}

// CopyBeaconState copies the provided beacon state container.
func CopyBeaconState(s *BeaconState) *BeaconState {
	if s == nil {
		return nil
	}
	var validators []*Validator
	if s.Validators != nil {
		validators = make([]*Validator, len(s.Validators))
		for i, v := range s.Validators {
			validators[i] = CopyValidator(v)
		}
	}
	return &BeaconState{
		GenesisTime:           s.GenesisTime,
		GenesisValidatorsRoot: safeCopyBytes(s.GenesisValidatorsRoot),
		Slot:                  s.Slot,
		Fork:                  CopyFork(s.Fork),
		LatestBlockHeader:     CopyBeaconBlockHeader(s.LatestBlockHeader),
		BlockRoots:            safeCopy2dBytes(s.BlockRoots),
		StateRoots:            safeCopy2dBytes(s.StateRoots),
		RandaoMixes:           safeCopy2dBytes(s.RandaoMixes),
		Validators:            validators,
		FinalizedCheckpoint:   CopyCheckpoint(s.FinalizedCheckpoint),
	}
}

func safeCopyBytes(cp []byte) []byte {
	if cp != nil {
		copied := make([]byte, len(cp))
		copy(copied, cp)
		return copied
	}
	return nil
}

func safeCopy2dBytes(ary [][]byte) [][]byte {
	if ary != nil {
		copied := make([][]byte, len(ary))
		for i, a := range ary {
			copied[i] = safeCopyBytes(a)
		}
		return copied
	}
	return nil
}
