//go:build !avr && !sam3x8e

package ledstrip

import "ledstrip-go/drivers/ledstrip/pinmap"

// Pins is the virtual board of the host simulator.
var Pins = pinmap.Sim
