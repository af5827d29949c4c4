package timing

import "ledstrip-go/errcode"

// Supported clocks.
const (
	Clock8MHz  uint32 = 8_000_000
	Clock16MHz uint32 = 16_000_000
	Clock20MHz uint32 = 20_000_000
	Clock84MHz uint32 = 84_000_000
)

// Assembly operands used by the step text. ledgen renders {x} as the
// inline asm operand %[x]:
//
//	{value}  shift register holding the byte (AVR) or pixel (ARM), "+r"
//	{port}   AVR PORT register as a memory operand, {high}/{low} its two values
//	{i}      AVR bit counter, "+d" so ldi can reload it
//	{set}    SAM3X SODR and {clr} CODR memory operands, {mask} pin bit
//	{n}      SAM3X bit counter, "+r"

func delay(n uint8) Step { return Step{Op: OpDelay, Cycles: n, Asm: "nop"} }

func avrProgram(steps ...Step) Program {
	return Program{
		Bit:           steps,
		BitsPerLoop:   8,
		LoopGap:       1, // ldi {i}, 8
		PixelOverhead: 32,
		WindowCycles:  3, // sei; nop; cli
	}
}

var (
	avrHigh      = Step{Op: OpHigh, Cycles: 2, Asm: "st {port}, {high}"}
	avrShift     = Step{Op: OpShift, Cycles: 1, Asm: "lsl {value}"}
	avrLowIfZero = Step{Op: OpLowIfZero, Cycles: 3, Skipped: 2, Asm: "brcs 1f\n\tst {port}, {low}\n1:"}
	avrLowIfOne  = Step{Op: OpLowIfOne, Cycles: 3, Skipped: 2, Asm: "brcc 1f\n\tst {port}, {low}\n1:"}
	avrLoop      = Step{Op: OpLoop, Cycles: 3, Skipped: 2, Asm: "dec {i}\n\tbrne 0b"}

	cm3High      = Step{Op: OpHigh, Cycles: 2, Asm: "str {mask}, {set}"}
	cm3Shift     = Step{Op: OpShift, Cycles: 1, Asm: "lsls {value}, {value}, #1"}
	cm3LowIfZero = Step{Op: OpLowIfZero, Cycles: 3, Skipped: 2, Asm: "it cc\n\tstrcc {mask}, {clr}"}
	cm3LowIfOne  = Step{Op: OpLowIfOne, Cycles: 3, Skipped: 2, Asm: "it cs\n\tstrcs {mask}, {clr}"}
	cm3Loop      = Step{Op: OpLoop, Cycles: 4, Skipped: 2, Asm: "subs {n}, {n}, #1\n\tbne 0b"}
)

// Profiles lists every supported (arch, clock, family) combination.
// There is no slow profile at 8 MHz: a 2.5 us bit leaves too few
// cycles between stores to hit both high times on AVR, and the
// Cortex-M3 encoder only targets the fast family.
var Profiles = []Profile{
	{
		Arch: ArchAVR, Clock: Clock8MHz, Timing: Fast,
		Program: avrProgram(avrShift, avrHigh, avrLowIfZero, delay(2), avrLowIfOne, avrLoop),
	},
	{
		Arch: ArchAVR, Clock: Clock16MHz, Timing: Fast,
		Program: avrProgram(avrHigh, avrShift, delay(2), avrLowIfZero, delay(5), avrLowIfOne, delay(2), avrLoop),
	},
	{
		Arch: ArchAVR, Clock: Clock20MHz, Timing: Fast,
		Program: avrProgram(avrHigh, avrShift, delay(4), avrLowIfZero, delay(7), avrLowIfOne, delay(4), avrLoop),
	},
	{
		Arch: ArchAVR, Clock: Clock16MHz, Timing: Slow,
		Program: avrProgram(avrHigh, avrShift, delay(7), avrLowIfZero, delay(8), avrLowIfOne, delay(14), avrLoop),
	},
	{
		Arch: ArchAVR, Clock: Clock20MHz, Timing: Slow,
		Program: avrProgram(avrHigh, avrShift, delay(10), avrLowIfZero, delay(10), avrLowIfOne, delay(19), avrLoop),
	},
	{
		Arch: ArchCortexM3, Clock: Clock84MHz, Timing: Fast,
		Program: Program{
			Bit:           []Step{cm3High, cm3Shift, delay(27), cm3LowIfZero, delay(36), cm3LowIfOne, delay(24), cm3Loop},
			BitsPerLoop:   24,
			PixelOverhead: 48,
			WindowCycles:  3, // cpsie i; nop; cpsid i
		},
	},
}

// ProfileFor returns the profile for a combination, or UnsupportedClock.
func ProfileFor(a Arch, hz uint32, f Family) (Profile, error) {
	for _, p := range Profiles {
		if p.Arch == a && p.Clock == hz && p.Timing == f {
			return p, nil
		}
	}
	return Profile{}, errcode.Wrap(errcode.UnsupportedClock, "timing.ProfileFor",
		a.String()+" "+f.String()+" has no encoder at this clock", nil)
}
