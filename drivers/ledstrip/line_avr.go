//go:build avr

package ledstrip

import (
	"device"
	"machine"
	"runtime/interrupt"
	"runtime/volatile"
	"time"
	"unsafe"

	"ledstrip-go/drivers/ledstrip/pinmap"
	"ledstrip-go/errcode"
)

type avrLine struct {
	port *volatile.Register8
	ddr  *volatile.Register8
	mask uint8
}

func (l *avrLine) ConfigureOutputLow() {
	l.port.ClearBits(l.mask)
	l.ddr.SetBits(l.mask)
}

// EncodePixel stores whole PORT values, so the other bits are sampled
// once per pixel. An interrupt window may change them between pixels.
func (l *avrLine) EncodePixel(c0, c1, c2 byte) {
	cur := l.port.Get()
	encodePixel(l.port, cur|l.mask, cur&^l.mask, c0, c1, c2)
}

func (l *avrLine) HoldLow(d time.Duration) { time.Sleep(d) }

type avrInterrupts struct{}

func (avrInterrupts) Disable() uintptr      { return uintptr(interrupt.Disable()) }
func (avrInterrupts) Restore(state uintptr) { interrupt.Restore(interrupt.State(state)) }

// Window needs the nop: sei takes effect after the next instruction.
func (avrInterrupts) Window() { device.Asm("sei\n\tnop\n\tcli") }

// Open binds a strip to an AVR pin, normally ledstrip.Pins[N].
func Open(pin pinmap.Binding, cfg Config) (*Strip, error) {
	const op = "ledstrip.Open"
	if machine.CPUFrequency() != cpuHz {
		return nil, errcode.Wrap(errcode.ClockMismatch, op, "encoder built for another clock", nil)
	}
	cfg = cfg.withDefaults()
	if cfg.Protocol.Timing != activeProtocol.Timing {
		return nil, errcode.Wrap(errcode.ProtocolMismatch, op, "encoder built for "+activeProtocol.Name, nil)
	}
	l := &avrLine{
		port: (*volatile.Register8)(unsafe.Pointer(pin.Addr)),
		ddr:  (*volatile.Register8)(unsafe.Pointer(pin.Addr - 1)),
		mask: uint8(pin.Mask()),
	}
	return New(l, avrInterrupts{}, cfg)
}
