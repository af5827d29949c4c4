//go:build !avr && !sam3x8e

package ledstrip

import (
	"ledstrip-go/drivers/ledstrip/pinmap"
	"ledstrip-go/drivers/ledstrip/sim"
	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
)

// Open returns a strip backed by a simulated AVR at the build's clock.
// The simulator is reachable through Strip.Line.
func Open(pin pinmap.Binding, cfg Config) (*Strip, error) {
	if !pin.Valid() {
		return nil, errcode.Wrap(errcode.UnknownPin, "ledstrip.Open", "", nil)
	}
	cfg = cfg.withDefaults()
	prof, err := timing.ProfileFor(timing.ArchAVR, cpuHz, cfg.Protocol.Timing)
	if err != nil {
		return nil, err
	}
	m := sim.New(prof)
	return New(m, m, cfg)
}
