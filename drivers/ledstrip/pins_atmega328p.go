//go:build atmega328p

package ledstrip

import "ledstrip-go/drivers/ledstrip/pinmap"

// Pins maps Arduino Uno pin numbers to PORT bits.
var Pins = pinmap.ATmega328P
