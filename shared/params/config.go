// Package params defines important constants that are essential to the
// beacon chain attestation verification core.
package params

import (
	types "github.com/prysmaticlabs/eth2-types"
)

// BeaconChainConfig contains constant configs for node to participate in beacon chain.
type BeaconChainConfig struct {
	// Constants (non-configurable).
	FarFutureEpoch         types.Epoch `yaml:"FAR_FUTURE_EPOCH"`          // FarFutureEpoch represents a epoch extremely far away in the future used as the default penalization epoch for validators.
	ZeroHash               [32]byte    // ZeroHash is used to represent a zeroed out 32 byte array.
	GenesisEpoch           types.Epoch // GenesisEpoch is the first epoch after genesis.
	ValidatorRegistryLimit uint64      `yaml:"VALIDATOR_REGISTRY_LIMIT"` // ValidatorRegistryLimit defines the upper bound of validators can participate in eth2.

	// Time parameters.
	SecondsPerSlot                   uint64      `yaml:"SECONDS_PER_SLOT"`                     // SecondsPerSlot is how many seconds are in a single slot.
	SlotsPerEpoch                    types.Slot  `yaml:"SLOTS_PER_EPOCH"`                      // SlotsPerEpoch is the number of slots in an epoch.
	MinSeedLookahead                 types.Epoch `yaml:"MIN_SEED_LOOKAHEAD"`                   // MinSeedLookahead is the duration of randao look ahead seed.
	MaxSeedLookahead                 types.Epoch `yaml:"MAX_SEED_LOOKAHEAD"`                   // MaxSeedLookahead is the duration a validator has to wait for entry and exit in epoch.
	MinValidatorWithdrawabilityDelay types.Epoch `yaml:"MIN_VALIDATOR_WITHDRAWABILITY_DELAY"` // MinValidatorWithdrawabilityDelay is the shortest amount of time a validator has to wait to withdraw.

	// Misc.
	TargetCommitteeSize       uint64 `yaml:"TARGET_COMMITTEE_SIZE"`        // TargetCommitteeSize is the number of validators in a committee when the chain is healthy.
	MaxCommitteesPerSlot      uint64 `yaml:"MAX_COMMITTEES_PER_SLOT"`      // MaxCommitteesPerSlot defines the max amount of committee in a single slot.
	MaxValidatorsPerCommittee uint64 `yaml:"MAX_VALIDATORS_PER_COMMITTEE"` // MaxValidatorsPerCommittee defines the upper bound of validators in a committee.
	ShuffleRoundCount         uint64 `yaml:"SHUFFLE_ROUND_COUNT"`          // ShuffleRoundCount is used for retrieving the permuted index.
	MinPerEpochChurnLimit     uint64 `yaml:"MIN_PER_EPOCH_CHURN_LIMIT"`    // MinPerEpochChurnLimit is the minimum amount of churn allotted for validator rotations.
	ChurnLimitQuotient        uint64 `yaml:"CHURN_LIMIT_QUOTIENT"`         // ChurnLimitQuotient is used to determine the limit of how many validators can rotate per epoch.

	// Gwei values.
	MaxEffectiveBalance uint64 `yaml:"MAX_EFFECTIVE_BALANCE"` // MaxEffectiveBalance is the maximal amount of Gwei that is effective for staking.
	EjectionBalance     uint64 `yaml:"EJECTION_BALANCE"`      // EjectionBalance is the minimal Gwei a validator needs to have before ejected.

	// State list lengths.
	EpochsPerHistoricalVector uint64     `yaml:"EPOCHS_PER_HISTORICAL_VECTOR"` // EpochsPerHistoricalVector defines max length in epoch to store old historical stats in beacon state.
	SlotsPerHistoricalRoot    types.Slot `yaml:"SLOTS_PER_HISTORICAL_ROOT"`    // SlotsPerHistoricalRoot defines how often the historical root is saved.

	// Fork choice algorithm constants.
	TargetAggregatorsPerCommittee uint64 `yaml:"TARGET_AGGREGATORS_PER_COMMITTEE"` // TargetAggregatorsPerCommittee defines the number of aggregators inside one committee.

	// Signature domains.
	DomainBeaconProposer    [4]byte `yaml:"DOMAIN_BEACON_PROPOSER"`    // DomainBeaconProposer defines the BLS signature domain for beacon proposal verification.
	DomainBeaconAttester    [4]byte `yaml:"DOMAIN_BEACON_ATTESTER"`    // DomainBeaconAttester defines the BLS signature domain for attestation verification.
	DomainRandao            [4]byte `yaml:"DOMAIN_RANDAO"`             // DomainRandao defines the BLS signature domain for randao verification.
	DomainSelectionProof    [4]byte `yaml:"DOMAIN_SELECTION_PROOF"`    // DomainSelectionProof defines the BLS signature domain for selection proof.
	DomainAggregateAndProof [4]byte `yaml:"DOMAIN_AGGREGATE_AND_PROOF"` // DomainAggregateAndProof defines the BLS signature domain for aggregate and proof.

	// Fork related values.
	GenesisForkVersion []byte `yaml:"GENESIS_FORK_VERSION"` // GenesisForkVersion is used to track fork version between state transitions.

	// BLS domain values.
	BLSSecretKeyLength int // BLSSecretKeyLength defines the expected length of BLS secret keys in bytes.
	BLSPubkeyLength    int // BLSPubkeyLength defines the expected length of BLS public keys in bytes.
	BLSSignatureLength int // BLSSignatureLength defines the expected length of BLS signatures in bytes.
}

var beaconConfig = MainnetConfig()

// BeaconConfig retrieves beacon chain config.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig by replacing the config. The preferred pattern is to
// call BeaconConfig(), change the specific parameters, and then call
// OverrideBeaconConfig(c). Any subsequent calls to params.BeaconConfig() will
// return this new configuration.
func OverrideBeaconConfig(c *BeaconChainConfig) {
	beaconConfig = c
}

// Copy returns a copy of the config object.
func (c *BeaconChainConfig) Copy() *BeaconChainConfig {
	config := *c
	return &config
}

var mainnetBeaconConfig = &BeaconChainConfig{
	// Constants (non-configurable).
	FarFutureEpoch:         1<<64 - 1,
	ZeroHash:               [32]byte{},
	GenesisEpoch:           0,
	ValidatorRegistryLimit: 1099511627776,

	// Time parameters.
	SecondsPerSlot:                   12,
	SlotsPerEpoch:                    32,
	MinSeedLookahead:                 1,
	MaxSeedLookahead:                 4,
	MinValidatorWithdrawabilityDelay: 256,

	// Misc.
	TargetCommitteeSize:       128,
	MaxCommitteesPerSlot:      64,
	MaxValidatorsPerCommittee: 2048,
	ShuffleRoundCount:         90,
	MinPerEpochChurnLimit:     4,
	ChurnLimitQuotient:        1 << 16,

	// Gwei values.
	MaxEffectiveBalance: 32 * 1e9,
	EjectionBalance:     16 * 1e9,

	// State list lengths.
	EpochsPerHistoricalVector: 65536,
	SlotsPerHistoricalRoot:    8192,

	// Fork choice algorithm constants.
	TargetAggregatorsPerCommittee: 16,

	// Signature domains.
	DomainBeaconProposer:    [4]byte{0x00, 0x00, 0x00, 0x00},
	DomainBeaconAttester:    [4]byte{0x01, 0x00, 0x00, 0x00},
	DomainRandao:            [4]byte{0x02, 0x00, 0x00, 0x00},
	DomainSelectionProof:    [4]byte{0x05, 0x00, 0x00, 0x00},
	DomainAggregateAndProof: [4]byte{0x06, 0x00, 0x00, 0x00},

	// Fork related values.
	GenesisForkVersion: []byte{0, 0, 0, 0},

	// BLS domain values.
	BLSSecretKeyLength: 32,
	BLSPubkeyLength:    48,
	BLSSignatureLength: 96,
}

// MainnetConfig returns the configuration to be used in the main network.
func MainnetConfig() *BeaconChainConfig {
	return mainnetBeaconConfig
}

// MinimalSpecConfig retrieves the minimal config used in spec tests.
func MinimalSpecConfig() *BeaconChainConfig {
	minimalConfig := mainnetBeaconConfig.Copy()

	// Time parameters.
	minimalConfig.SecondsPerSlot = 6
	minimalConfig.SlotsPerEpoch = 8
	minimalConfig.MinSeedLookahead = 1
	minimalConfig.MaxSeedLookahead = 4

	// Misc.
	minimalConfig.TargetCommitteeSize = 4
	minimalConfig.MaxCommitteesPerSlot = 4
	minimalConfig.MaxValidatorsPerCommittee = 2048
	minimalConfig.ShuffleRoundCount = 10
	minimalConfig.MinPerEpochChurnLimit = 4
	minimalConfig.ChurnLimitQuotient = 32

	// State list lengths.
	minimalConfig.EpochsPerHistoricalVector = 64
	minimalConfig.SlotsPerHistoricalRoot = 64

	return minimalConfig
}

// UseMinimalConfig for beacon chain services.
func UseMinimalConfig() {
	beaconConfig = MinimalSpecConfig()
}

// UseMainnetConfig for beacon chain services.
func UseMainnetConfig() {
	beaconConfig = MainnetConfig()
}

// SetupTestConfigCleanup preserves configurations allowing to modify them
// within tests without any undesired side effects.
func SetupTestConfigCleanup(t interface{ Cleanup(func()) }) {
	prevConfig := beaconConfig.Copy()
	t.Cleanup(func() {
		beaconConfig = prevConfig
	})
}
