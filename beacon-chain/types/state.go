package types

import (
	eth2types "github.com/prysmaticlabs/eth2-types"
)

// Fork tracks the fork version schedule of the chain.
type Fork struct {
	PreviousVersion []byte          `json:"previous_version" ssz-size:"4"`
	CurrentVersion  []byte          `json:"current_version" ssz-size:"4"`
	Epoch           eth2types.Epoch `json:"epoch"`
}

// ForkData is the container hashed into signature domains.
type ForkData struct {
	CurrentVersion        []byte `json:"current_version" ssz-size:"4"`
	GenesisValidatorsRoot []byte `json:"genesis_validators_root" ssz-size:"32"`
}

// SigningData is the container whose hash tree root is the message actually
// signed: the object root mixed with the signature domain.
type SigningData struct {
	ObjectRoot []byte `json:"object_root" ssz-size:"32"`
	Domain     []byte `json:"domain" ssz-size:"32"`
}

// Validator is a registry entry in the beacon state.
type Validator struct {
	PublicKey                  []byte          `json:"public_key" ssz-size:"48"`
	WithdrawalCredentials      []byte          `json:"withdrawal_credentials" ssz-size:"32"`
	EffectiveBalance           uint64          `json:"effective_balance"`
	Slashed                    bool            `json:"slashed"`
	ActivationEligibilityEpoch eth2types.Epoch `json:"activation_eligibility_epoch"`
	ActivationEpoch            eth2types.Epoch `json:"activation_epoch"`
	ExitEpoch                  eth2types.Epoch `json:"exit_epoch"`
	WithdrawableEpoch          eth2types.Epoch `json:"withdrawable_epoch"`
}

// BeaconBlockHeader is the slim header form of a beacon block.
type BeaconBlockHeader struct {
	Slot          eth2types.Slot           `json:"slot"`
	ProposerIndex eth2types.ValidatorIndex `json:"proposer_index"`
	ParentRoot    []byte                   `json:"parent_root" ssz-size:"32"`
	StateRoot     []byte                   `json:"state_root" ssz-size:"32"`
	BodyRoot      []byte                   `json:"body_root" ssz-size:"32"`
}

// BeaconState holds the subset of the consensus state that committee
// shuffling and attestation verification depend on. Interior per-slot hashes
// (BlockRoots, StateRoots) may be stale on states loaded through the
// attestation-only read path; shuffling only consumes RandaoMixes and the
// validator registry at epoch boundaries.
type BeaconState struct {
	GenesisTime           uint64             `json:"genesis_time"`
	GenesisValidatorsRoot []byte             `json:"genesis_validators_root" ssz-size:"32"`
	Slot                  eth2types.Slot     `json:"slot"`
	Fork                  *Fork              `json:"fork"`
	LatestBlockHeader     *BeaconBlockHeader `json:"latest_block_header"`
	BlockRoots            [][]byte           `json:"block_roots" ssz-size:"?,32"`
	StateRoots            [][]byte           `json:"state_roots" ssz-size:"?,32"`
	RandaoMixes           [][]byte           `json:"randao_mixes" ssz-size:"?,32"`
	Validators            []*Validator       `json:"validators"`
	FinalizedCheckpoint   *Checkpoint        `json:"finalized_checkpoint"`
}
