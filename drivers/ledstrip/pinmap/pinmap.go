// Package pinmap maps board pin numbers to the output register and bit
// that drive them.
//
// Each family is a fixed-size array so that indexing the selected
// family with a constant pin number beyond the board is rejected by the
// compiler. Families() and ByName expose the same tables to host tools.
package pinmap

import (
	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
	"ledstrip-go/x/strconvx"
)

// Binding is the register that drives one pin and the pin's bit in it.
// On AVR Addr is the PORTx data-space address (DDRx is Addr-1); on
// SAM3X it is the base of the PIO controller.
type Binding struct {
	Addr uintptr
	Bit  uint8
}

// Mask is the register mask of the pin.
func (b Binding) Mask() uint32 { return 1 << b.Bit }

// Valid reports whether b names a real register.
func (b Binding) Valid() bool { return b.Addr != 0 }

// Family is the pin table of one MCU family.
type Family struct {
	Name string
	Arch timing.Arch
	Pins []Binding
}

// Lookup returns the binding of a board pin number.
func (f Family) Lookup(pin int) (Binding, error) {
	if pin < 0 || pin >= len(f.Pins) {
		return Binding{}, errcode.Wrap(errcode.UnknownPin, "pinmap.Lookup",
			f.Name+" has no pin "+strconvx.Itoa(pin), nil)
	}
	return f.Pins[pin], nil
}

// Families lists every known pin table.
func Families() []Family {
	return []Family{
		{Name: "atmega328p", Arch: timing.ArchAVR, Pins: ATmega328P[:]},
		{Name: "atmega32u4", Arch: timing.ArchAVR, Pins: ATmega32U4[:]},
		{Name: "atmega2560", Arch: timing.ArchAVR, Pins: ATmega2560[:]},
		{Name: "sam3x8e", Arch: timing.ArchCortexM3, Pins: SAM3X8E[:]},
		{Name: "sim", Arch: timing.ArchAVR, Pins: Sim[:]},
	}
}

// ByName returns a family by name (as listed by Families).
func ByName(name string) (Family, error) {
	for _, f := range Families() {
		if f.Name == name {
			return f, nil
		}
	}
	return Family{}, errcode.Wrap(errcode.UnknownFamily, "pinmap.ByName", name, nil)
}

// Sim is a virtual 32-pin board used by the host build. It has four
// fake ports so that bindings stay distinct and valid.
var Sim = func() (pins [32]Binding) {
	for i := range pins {
		pins[i] = Binding{Addr: uintptr(0x1000 + i/8), Bit: uint8(i % 8)}
	}
	return pins
}()
