//go:build !sam3x8e && ledstrip_8mhz && !ledstrip_20mhz

package ledstrip

import "ledstrip-go/drivers/ledstrip/timing"

const cpuHz = timing.Clock8MHz
