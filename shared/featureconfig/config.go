/*
Package featureconfig defines which features are enabled for runtime
in order to selectively enable certain features to maintain a stable runtime.

The process for implementing new features using this package is as follows:
	1. Add a new CMD flag in flags.go, and place it in the proper list(s) var for its client.
	2. Add a condition for the flag in the proper Configure function(s) below.
	3. Place any "new" behavior in the `if flagEnabled` statement.
	4. Place any "previous" behavior in the `else` statement.
	5. Ensure any tests using the new feature fail if the flag isn't enabled.
	5a. Use the following to enable your flag for tests:
	cfg := &featureconfig.Flags{
		DisableBatchSignatureVerification: true,
	}
	resetCfg := featureconfig.InitWithReset(cfg)
	defer resetCfg()
*/
package featureconfig

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "flags")

// Flags is a struct to represent which features the client will perform on runtime.
type Flags struct {
	// DisableUncheckedSlasherFeed stops forwarding rejected attestations whose
	// signatures were never checked to the slasher. The default behavior is to
	// forward them whenever their indexed form can still be computed.
	DisableUncheckedSlasherFeed bool
	// DisableBatchSignatureVerification verifies the three aggregate signature
	// sets one by one instead of in a single batched BLS call.
	DisableBatchSignatureVerification bool
}

var featureConfig *Flags
var featureConfigLock sync.RWMutex

// Get retrieves feature config.
func Get() *Flags {
	featureConfigLock.RLock()
	defer featureConfigLock.RUnlock()

	if featureConfig == nil {
		return &Flags{}
	}
	return featureConfig
}

// Init sets the global config equal to the config that is passed in.
func Init(c *Flags) {
	featureConfigLock.Lock()
	defer featureConfigLock.Unlock()

	featureConfig = c
}

// InitWithReset sets the global config and returns a function that is used to reset the configuration.
func InitWithReset(c *Flags) func() {
	var prevConfig Flags
	if featureConfig != nil {
		prevConfig = *featureConfig
	} else {
		prevConfig = Flags{}
	}
	resetFunc := func() {
		Init(&prevConfig)
	}
	Init(c)
	return resetFunc
}

// ConfigureBeaconChain sets the global config based
// on what flags are enabled for the beacon-chain client.
func ConfigureBeaconChain(ctx *cli.Context) {
	cfg := &Flags{}
	if ctx.Bool(disableUncheckedSlasherFeed.Name) {
		log.WithField(disableUncheckedSlasherFeed.Name, true).Warn("Disabling slasher feed for unchecked attestations")
		cfg.DisableUncheckedSlasherFeed = true
	}
	if ctx.Bool(disableBatchSignatureVerification.Name) {
		log.WithField(disableBatchSignatureVerification.Name, true).Warn("Disabling batch signature verification")
		cfg.DisableBatchSignatureVerification = true
	}
	Init(cfg)
}
