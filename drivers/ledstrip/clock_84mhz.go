//go:build sam3x8e

package ledstrip

import "ledstrip-go/drivers/ledstrip/timing"

const cpuHz = timing.Clock84MHz
