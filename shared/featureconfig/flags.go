package featureconfig

import (
	"github.com/urfave/cli/v2"
)

var (
	disableUncheckedSlasherFeed = &cli.BoolFlag{
		Name:  "disable-unchecked-slasher-feed",
		Usage: "Do not forward rejected attestations with unchecked signatures to the slasher",
	}
	disableBatchSignatureVerification = &cli.BoolFlag{
		Name:  "disable-batch-signature-verification",
		Usage: "Verify aggregate signature sets individually instead of batching them into one BLS call",
	}
)

// BeaconChainFlags contains a list of all the feature flags that apply to the beacon-chain client.
var BeaconChainFlags = []cli.Flag{
	disableUncheckedSlasherFeed,
	disableBatchSignatureVerification,
}
