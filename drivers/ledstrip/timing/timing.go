// Package timing models the cycle-exact bit encoders used to drive
// one-wire pulse-width LED strips.
//
// An encoder is described as a Program: the ordered instruction steps
// that emit one bit, with the cycle cost of every step. The same
// Program feeds the offline analysis (Analyze, Validate), the host
// simulator and the generator that renders native assembly, so the
// numbers checked here are the numbers that run on the device.
//
// The package is TinyGo-safe: no fmt, no reflection, static tables.
package timing

import "ledstrip-go/x/strconvx"

// Arch identifies the instruction set a Program is written for.
type Arch uint8

const (
	ArchAVR Arch = iota + 1
	ArchCortexM3
)

func (a Arch) String() string {
	switch a {
	case ArchAVR:
		return "avr"
	case ArchCortexM3:
		return "cortex-m3"
	}
	return "unknown"
}

// Family is the nominal pulse-width timing a strip chip expects.
type Family uint8

const (
	// Fast is the WS2812 family: 0.4 us / 0.8 us high times.
	Fast Family = iota + 1
	// Slow is the TM1804 family: 0.7 us / 1.3 us high times.
	Slow
)

func (f Family) String() string {
	switch f {
	case Fast:
		return "fast"
	case Slow:
		return "slow"
	}
	return "unknown"
}

// Op is what a Step does to the data line.
type Op uint8

const (
	// OpHigh drives the line high.
	OpHigh Op = iota + 1
	// OpShift moves the next data bit (MSB first) into the carry flag.
	OpShift
	// OpLowIfZero drives the line low when the current bit is 0.
	OpLowIfZero
	// OpLowIfOne drives the line low when the current bit is 1.
	OpLowIfOne
	// OpDelay burns Cycles cycles; rendered as Cycles copies of Asm.
	OpDelay
	// OpLoop ends a bit. Cycles is the cost when another bit follows in
	// the same loop, Skipped the cost on the loop's final bit.
	OpLoop
)

// Step is one instruction group of a bit encoder.
//
// A store lands on the line at the end of the step's cycles. For the
// conditional ops Cycles is the cost when the store executes and
// Skipped the cost when it is branched over.
type Step struct {
	Op      Op
	Cycles  uint8
	Skipped uint8
	Asm     string
}

// Program is a complete bit encoder.
type Program struct {
	Bit []Step
	// BitsPerLoop is 8 when the encoder loops once per channel byte and
	// 24 when it loops once per pixel.
	BitsPerLoop uint8
	// LoopGap is the cost of reloading the counter between the loops of
	// one pixel.
	LoopGap uint8
	// PixelOverhead is the estimated cost of the caller's loop between
	// two pixels: loading the next colour, arranging channels and
	// entering the encoder.
	PixelOverhead uint16
	// WindowCycles is the cost of one interrupt-friendly window.
	WindowCycles uint8
}

// Walk runs one bit through the program. store, when non-nil, is called
// for every line store with its cycle offset from the start of the bit.
// last selects the cost of a loop's final bit. Walk returns the cycles
// the bit consumed, not counting LoopGap.
func (p *Program) Walk(one, last bool, store func(at uint16, high bool)) uint16 {
	var t uint16
	for i := range p.Bit {
		s := &p.Bit[i]
		switch s.Op {
		case OpHigh:
			t += uint16(s.Cycles)
			if store != nil {
				store(t, true)
			}
		case OpLowIfZero, OpLowIfOne:
			if one == (s.Op == OpLowIfOne) {
				t += uint16(s.Cycles)
				if store != nil {
					store(t, false)
				}
			} else {
				t += uint16(s.Skipped)
			}
		case OpLoop:
			if last {
				t += uint16(s.Skipped)
			} else {
				t += uint16(s.Cycles)
			}
		default:
			t += uint16(s.Cycles)
		}
	}
	return t
}

// Profile binds a Program to an architecture, clock and timing family.
type Profile struct {
	Arch    Arch
	Clock   uint32 // Hz
	Timing  Family
	Program Program
}

// MHz is the profile clock in whole megahertz.
func (p Profile) MHz() uint32 { return p.Clock / 1_000_000 }

// Name is a stable identifier such as "avr-fast-16mhz".
func (p Profile) Name() string {
	return p.Arch.String() + "-" + p.Timing.String() + "-" + strconvx.FormatUint(uint64(p.MHz()), 10) + "mhz"
}
