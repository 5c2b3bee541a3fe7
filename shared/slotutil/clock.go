// Package slotutil includes ticker and timer-related functionality for the
// beacon chain slot schedule.
package slotutil

import (
	"time"

	"github.com/pkg/errors"
	types "github.com/prysmaticlabs/eth2-types"
	"github.com/prysmaticlabs/attestation/shared/params"
	"github.com/prysmaticlabs/attestation/shared/roughtime"
)

// ErrUnableToReadSlot is returned when the clock reads before the genesis
// time, where no slot is defined.
var ErrUnableToReadSlot = errors.New("could not read current slot, clock is before genesis")

// Clock converts wall time into beacon chain slots, anchored at the chain
// genesis time.
type Clock struct {
	genesisTime time.Time
}

// NewClock anchors a slot clock at the given genesis time.
func NewClock(genesisTime time.Time) *Clock {
	return &Clock{genesisTime: genesisTime}
}

// GenesisTime returns the anchor of the clock.
func (c *Clock) GenesisTime() time.Time {
	return c.genesisTime
}

// CurrentSlot returns the slot at the current wall time.
func (c *Clock) CurrentSlot() (types.Slot, error) {
	return c.slotAt(roughtime.Now())
}

// NowWithFutureTolerance returns the current slot as if the local clock were
// running ahead by tolerance. Used to accept messages from peers whose clocks
// are slightly ahead of ours.
func (c *Clock) NowWithFutureTolerance(tolerance time.Duration) (types.Slot, error) {
	return c.slotAt(roughtime.Now().Add(tolerance))
}

// NowWithPastTolerance returns the current slot as if the local clock were
// running behind by tolerance. Used to accept messages from peers whose
// clocks are slightly behind ours.
func (c *Clock) NowWithPastTolerance(tolerance time.Duration) (types.Slot, error) {
	return c.slotAt(roughtime.Now().Add(-tolerance))
}

func (c *Clock) slotAt(t time.Time) (types.Slot, error) {
	if t.Before(c.genesisTime) {
		return 0, ErrUnableToReadSlot
	}
	elapsed := t.Sub(c.genesisTime)
	return types.Slot(uint64(elapsed.Seconds()) / params.BeaconConfig().SecondsPerSlot), nil
}
