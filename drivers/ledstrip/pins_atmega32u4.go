//go:build atmega32u4

package ledstrip

import "ledstrip-go/drivers/ledstrip/pinmap"

// Pins maps Arduino Leonardo / A-Star 32U4 pin numbers to PORT bits.
var Pins = pinmap.ATmega32U4
