// Package flags defines beacon-node specific runtime flags: the skip-slot
// bound for unaggregated attestations and the slasher feed toggle.
package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	// MaxSkipSlots defines the maximum number of skip slots between the head
	// block and an unaggregated attestation's slot for the attestation to be
	// imported.
	MaxSkipSlots = &cli.Uint64Flag{
		Name:  "max-skip-slots",
		Usage: "The maximum number of skip slots tolerated between the head block and an attestation for it to be imported",
		Value: 10,
	}
	// SlasherFeed is the command-line toggle for the slashing-evidence feed,
	// recorded in GlobalFlags.SlasherFeed. The verification service does not
	// read it: it forwards rejected, indexable attestations whenever its
	// configured Slasher is set.
	SlasherFeed = &cli.BoolFlag{
		Name:  "slasher",
		Usage: "Enables the slashing-evidence feed from attestation verification",
	}
)

// GlobalFlags specifies all the global flags for the beacon node.
type GlobalFlags struct {
	MaxSkipSlots uint64
	SlasherFeed  bool
}

var globalConfig *GlobalFlags

// Get retrieves the global config.
func Get() *GlobalFlags {
	if globalConfig == nil {
		return &GlobalFlags{MaxSkipSlots: MaxSkipSlots.Value}
	}
	return globalConfig
}

// Init sets the global config equal to the config that is passed in.
func Init(c *GlobalFlags) {
	globalConfig = c
}

// ConfigureGlobalFlags initializes the global config
// based on the provided cli context.
func ConfigureGlobalFlags(ctx *cli.Context) {
	cfg := &GlobalFlags{}
	cfg.MaxSkipSlots = ctx.Uint64(MaxSkipSlots.Name)
	cfg.SlasherFeed = ctx.Bool(SlasherFeed.Name)
	Init(cfg)
}
