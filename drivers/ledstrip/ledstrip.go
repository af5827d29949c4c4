// Package ledstrip drives addressable RGB LED strips that use a
// self-clocked, one-wire pulse-width protocol (WS2812, WS2812B, TM1804).
//
// The bit encoder is cycle-exact assembly generated from the profiles in
// package timing, selected at build time by the CPU family, the
// ledstrip_8mhz / ledstrip_20mhz clock tags and the ledstrip_ws2812 /
// ledstrip_tm1804 protocol tags. An unsupported combination has no
// encoder and fails to link; an out-of-range constant index into Pins
// fails to compile.
//
// Example:
//
//	strip, err := ledstrip.Open(ledstrip.Pins[6], ledstrip.Config{})
//	if err != nil { ... }
//	strip.Write(colors)
//
// A Strip is not safe for concurrent use.
package ledstrip

//go:generate go run ../../cmd/ledgen -dir .

import (
	"time"

	"ledstrip-go/errcode"
	"ledstrip-go/x/strconvx"
)

// Line is a data output able to emit pulse-width encoded pixels.
type Line interface {
	// ConfigureOutputLow drives the pin low, then makes it an output.
	ConfigureOutputLow()
	// EncodePixel sends three channel bytes, MSB first, in wire order.
	// Interrupts are disabled by the caller.
	EncodePixel(c0, c1, c2 byte)
	// HoldLow keeps the line low for at least d.
	HoldLow(d time.Duration)
}

// Interrupts masks the interrupts that would stretch a bit.
type Interrupts interface {
	Disable() (state uintptr)
	Restore(state uintptr)
	// Window enables interrupts for a bounded few cycles, then masks
	// them again.
	Window()
}

// Config of a strip. The zero value selects the build's protocol with
// its native channel order.
type Config struct {
	Protocol Protocol
	// Order overrides Protocol.Order when set.
	Order Order
	// InterruptFriendly opens a short interrupt window between pixels.
	// Interrupt handlers that run longer than the strip's latch time
	// cause the strip to latch early; the rest of the frame then starts
	// a new one.
	InterruptFriendly bool
}

func (c Config) withDefaults() Config {
	if c.Protocol.Name == "" {
		c.Protocol = activeProtocol
	}
	if c.Order == OrderDefault {
		c.Order = c.Protocol.Order
	}
	return c
}

// Strip is one strip on one data line.
type Strip struct {
	line     Line
	irq      Interrupts
	proto    Protocol
	order    Order
	friendly bool
}

// New binds a strip to a line and an interrupt controller.
func New(line Line, irq Interrupts, cfg Config) (*Strip, error) {
	if line == nil || irq == nil {
		return nil, errcode.Wrap(errcode.InvalidParams, "ledstrip.New", "nil line or interrupts", nil)
	}
	cfg = cfg.withDefaults()
	if !cfg.Order.Valid() {
		return nil, errcode.Wrap(errcode.InvalidOrder, "ledstrip.New", "", nil)
	}
	return &Strip{
		line:     line,
		irq:      irq,
		proto:    cfg.Protocol,
		order:    cfg.Order,
		friendly: cfg.InterruptFriendly,
	}, nil
}

// Protocol is the wire protocol in use.
func (s *Strip) Protocol() Protocol { return s.proto }

// Order is the channel order in use.
func (s *Strip) Order() Order { return s.order }

// Line is the backend the strip writes through.
func (s *Strip) Line() Line { return s.line }

// InterruptFriendly reports whether pixel windows are enabled.
func (s *Strip) InterruptFriendly() bool { return s.friendly }

// SetInterruptFriendly toggles the inter-pixel interrupt window. Only
// call it between writes.
func (s *Strip) SetInterruptFriendly(on bool) { s.friendly = on }

// Write sends every colour, then holds the line low to latch them.
func (s *Strip) Write(colors []Color) error {
	return s.WriteN(colors, len(colors))
}

// WriteN sends the first count colours. It fails with ShortBuffer, and
// leaves the pin untouched, if colors holds fewer than count entries.
func (s *Strip) WriteN(colors []Color, count int) error {
	if count < 0 || count > len(colors) {
		return errcode.Wrap(errcode.ShortBuffer, "ledstrip.WriteN",
			strconvx.Itoa(count)+" > "+strconvx.Itoa(len(colors)), nil)
	}
	s.line.ConfigureOutputLow()
	s.send(colors[:count])
	s.line.HoldLow(s.proto.Reset)
	return nil
}

// send runs with interrupts masked; the deferred restore also covers a
// panicking Line.
func (s *Strip) send(colors []Color) {
	state := s.irq.Disable()
	defer s.irq.Restore(state)

	idx := orderIndex[s.order]
	for i := range colors {
		c := [3]byte{colors[i].R, colors[i].G, colors[i].B}
		s.line.EncodePixel(c[idx[0]], c[idx[1]], c[idx[2]])
		if s.friendly {
			s.irq.Window()
		}
	}
}
