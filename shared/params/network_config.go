package params

import "time"

// NetworkConfig defines the spec based network parameters.
type NetworkConfig struct {
	AttestationSubnetCount          uint64        `yaml:"ATTESTATION_SUBNET_COUNT"`           // AttestationSubnetCount is the number of attestation subnets used in the gossipsub protocol.
	AttestationPropagationSlotRange uint64        `yaml:"ATTESTATION_PROPAGATION_SLOT_RANGE"` // AttestationPropagationSlotRange is the maximum number of slots during which an attestation can be propagated.
	MaximumGossipClockDisparity     time.Duration `yaml:"MAXIMUM_GOSSIP_CLOCK_DISPARITY"`     // MaximumGossipClockDisparity is the maximum milliseconds of clock disparity assumed between honest nodes.
}

var defaultNetworkConfig = &NetworkConfig{
	AttestationSubnetCount:          64,
	AttestationPropagationSlotRange: 32,
	MaximumGossipClockDisparity:     500 * time.Millisecond,
}

// BeaconNetworkConfig returns the current network config for
// the beacon chain.
func BeaconNetworkConfig() *NetworkConfig {
	return defaultNetworkConfig
}
