//go:build sam3x8e

package ledstrip

import "ledstrip-go/drivers/ledstrip/pinmap"

// Pins maps Arduino Due pin numbers to PIO lines.
var Pins = pinmap.SAM3X8E
