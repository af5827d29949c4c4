//go:build !sam3x8e && !ledstrip_8mhz && !ledstrip_20mhz

package ledstrip

import "ledstrip-go/drivers/ledstrip/timing"

// cpuHz is the clock the encoder was generated for.
const cpuHz = timing.Clock16MHz
