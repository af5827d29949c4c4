//go:build sam3x8e

package ledstrip

import (
	"device"
	"runtime/interrupt"
	"runtime/volatile"
	"time"
	"unsafe"

	"ledstrip-go/drivers/ledstrip/pinmap"
	"ledstrip-go/errcode"
)

type pioLine struct {
	enable *volatile.Register32
	output *volatile.Register32
	set    *volatile.Register32
	clear  *volatile.Register32
	mask   uint32
}

func reg(base, off uintptr) *volatile.Register32 {
	return (*volatile.Register32)(unsafe.Pointer(base + off))
}

func (l *pioLine) ConfigureOutputLow() {
	l.clear.Set(l.mask)
	l.enable.Set(l.mask)
	l.output.Set(l.mask)
}

func (l *pioLine) EncodePixel(c0, c1, c2 byte) {
	encodePixel(l.set, l.clear, l.mask, uint32(c0)<<24|uint32(c1)<<16|uint32(c2)<<8)
}

func (l *pioLine) HoldLow(d time.Duration) { time.Sleep(d) }

type armInterrupts struct{}

func (armInterrupts) Disable() uintptr      { return uintptr(interrupt.Disable()) }
func (armInterrupts) Restore(state uintptr) { interrupt.Restore(interrupt.State(state)) }
func (armInterrupts) Window()               { device.Asm("cpsie i\n\tnop\n\tcpsid i") }

// Open binds a strip to a SAM3X pin, normally ledstrip.Pins[N].
//
// TinyGo has no SAM3X machine package, so this file only needs device
// and the runtime packages; the clock is the board's fixed 84 MHz and is
// not queried.
func Open(pin pinmap.Binding, cfg Config) (*Strip, error) {
	const op = "ledstrip.Open"
	cfg = cfg.withDefaults()
	if cfg.Protocol.Timing != activeProtocol.Timing {
		return nil, errcode.Wrap(errcode.ProtocolMismatch, op, "encoder built for "+activeProtocol.Name, nil)
	}
	l := &pioLine{
		enable: reg(pin.Addr, pinmap.PIOEnable),
		output: reg(pin.Addr, pinmap.PIOOutputEn),
		set:    reg(pin.Addr, pinmap.PIOSetOutput),
		clear:  reg(pin.Addr, pinmap.PIOClearOutput),
		mask:   pin.Mask(),
	}
	return New(l, armInterrupts{}, cfg)
}
