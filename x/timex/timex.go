package timex

import (
	"math/bits"
	"time"

	"ledstrip-go/x/mathx"
)

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// CyclesToDuration converts CPU cycles at hz to a duration, rounded to
// the nearest nanosecond.
func CyclesToDuration(cycles uint64, hz uint32) time.Duration {
	return time.Duration(mulDivRound(cycles, 1_000_000_000, hz))
}

// CyclesToPicos is CyclesToDuration at picosecond resolution.
func CyclesToPicos(cycles uint64, hz uint32) uint64 {
	return mulDivRound(cycles, 1_000_000_000_000, hz)
}

// DurationToCycles returns the number of whole cycles at hz that cover d.
func DurationToCycles(d time.Duration, hz uint32) uint64 {
	if d <= 0 {
		return 0
	}
	return mathx.CeilDiv(uint64(d)*uint64(hz), 1_000_000_000)
}

// mulDivRound returns round(a*b/d) with a 128-bit intermediate.
func mulDivRound(a, b uint64, d uint32) uint64 {
	if d == 0 {
		return 0
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= uint64(d) {
		return ^uint64(0)
	}
	q, r := bits.Div64(hi, lo, uint64(d))
	if r >= uint64(d)-r {
		q++
	}
	return q
}
