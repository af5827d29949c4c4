//go:build atmega2560

package ledstrip

import "ledstrip-go/drivers/ledstrip/pinmap"

// Pins maps Arduino Mega 2560 pin numbers to PORT bits.
var Pins = pinmap.ATmega2560
