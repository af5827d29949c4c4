// Package sim is a cycle-accurate host model of a strip data line and
// the interrupt controller that guards it.
//
// A Machine satisfies both the ledstrip Line and Interrupts method sets.
// It executes the same timing.Program the native encoders are generated
// from, so a trace taken here shows the waveform the device would emit.
package sim

import (
	"time"

	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/x/timex"
)

// Event is one externally visible step of a transmission.
type Event uint8

const (
	EvConfigure Event = iota + 1
	EvDisable
	EvPixel
	EvWindow
	EvRestore
	EvReset
)

func (e Event) String() string {
	switch e {
	case EvConfigure:
		return "configure"
	case EvDisable:
		return "disable"
	case EvPixel:
		return "pixel"
	case EvWindow:
		return "window"
	case EvRestore:
		return "restore"
	case EvReset:
		return "reset"
	}
	return "unknown"
}

// Edge is a level change on the data line at an absolute cycle.
type Edge struct {
	At   uint64
	High bool
}

// Span is a half-open cycle interval.
type Span struct {
	Start, End uint64
}

// Len is the span length in cycles.
func (s Span) Len() uint64 { return s.End - s.Start }

// Frame is one transmission, from configuring the line to the end of
// its reset hold.
type Frame struct {
	Start   uint64
	Edges   []Edge
	Windows []Span
	Pixels  int
	Reset   Span
	// IRQOnAtReset reports whether interrupts were enabled when the
	// reset hold began.
	IRQOnAtReset bool

	threshold uint64
}

// Machine simulates one data line at the profile's clock.
type Machine struct {
	prof  timing.Profile
	cyc   timing.Cycles
	now   uint64
	level bool
	out   bool
	irqOn bool

	frames     []Frame
	events     []Event
	violations []string
}

// New returns a Machine for p. Interrupts start enabled and the line
// starts as an input.
func New(p timing.Profile) *Machine {
	c, _ := timing.Analyze(p.Program)
	return &Machine{prof: p, cyc: c, irqOn: true}
}

// Profile is the profile the machine executes.
func (m *Machine) Profile() timing.Profile { return m.prof }

// Now is the current cycle count.
func (m *Machine) Now() uint64 { return m.now }

// Level is the current line level.
func (m *Machine) Level() bool { return m.level }

// InterruptsEnabled reports the simulated interrupt flag.
func (m *Machine) InterruptsEnabled() bool { return m.irqOn }

// Frames returns every recorded transmission.
func (m *Machine) Frames() []Frame { return m.frames }

// Last returns the most recent transmission.
func (m *Machine) Last() (Frame, bool) {
	if len(m.frames) == 0 {
		return Frame{}, false
	}
	return m.frames[len(m.frames)-1], true
}

// Events is the ordered log of transmission steps.
func (m *Machine) Events() []Event { return m.events }

// Violations lists protocol misuse seen so far, such as encoding with
// interrupts enabled.
func (m *Machine) Violations() []string { return m.violations }

// Clear drops recorded frames, events and violations. Time keeps
// running.
func (m *Machine) Clear() {
	m.frames = nil
	m.events = nil
	m.violations = nil
}

func (m *Machine) frame() *Frame {
	if len(m.frames) == 0 {
		m.violate("line used before configuration")
		m.frames = append(m.frames, Frame{Start: m.now, threshold: m.threshold()})
	}
	return &m.frames[len(m.frames)-1]
}

func (m *Machine) threshold() uint64 {
	return uint64(m.cyc.High0+m.cyc.High1) / 2
}

func (m *Machine) violate(msg string) { m.violations = append(m.violations, msg) }

func (m *Machine) store(at uint64, high bool) {
	if high == m.level {
		return
	}
	m.level = high
	f := m.frame()
	f.Edges = append(f.Edges, Edge{At: at, High: high})
}

// ConfigureOutputLow drives the line low, then makes it an output, and
// opens a new frame.
func (m *Machine) ConfigureOutputLow() {
	m.events = append(m.events, EvConfigure)
	m.level = false
	m.out = true
	m.frames = append(m.frames, Frame{Start: m.now, threshold: m.threshold()})
}

// EncodePixel runs the 24 bits of c0, c1, c2, MSB first.
func (m *Machine) EncodePixel(c0, c1, c2 byte) {
	m.events = append(m.events, EvPixel)
	if m.irqOn {
		m.violate("pixel encoded with interrupts enabled")
	}
	if !m.out {
		m.violate("pixel encoded on an input")
	}
	p := &m.prof.Program
	per := int(p.BitsPerLoop)
	if per == 0 {
		per = 24
	}
	word := uint32(c0)<<16 | uint32(c1)<<8 | uint32(c2)
	for i := 0; i < 24; i++ {
		one := word&(1<<(23-i)) != 0
		last := (i+1)%per == 0
		base := m.now
		m.now += uint64(p.Walk(one, last, func(at uint16, high bool) {
			m.store(base+uint64(at), high)
		}))
		if last && i != 23 {
			m.now += uint64(p.LoopGap)
		}
	}
	m.now += uint64(p.PixelOverhead)
	m.frame().Pixels++
}

// HoldLow keeps the line low for at least d.
func (m *Machine) HoldLow(d time.Duration) {
	m.events = append(m.events, EvReset)
	m.store(m.now, false)
	n := timex.DurationToCycles(d, m.prof.Clock)
	f := m.frame()
	f.Reset = Span{Start: m.now, End: m.now + n}
	f.IRQOnAtReset = m.irqOn
	m.now += n
}

// Disable masks interrupts and returns the previous state.
func (m *Machine) Disable() uintptr {
	m.events = append(m.events, EvDisable)
	prev := m.irqOn
	m.irqOn = false
	if prev {
		return 1
	}
	return 0
}

// Restore sets the interrupt flag back to a state returned by Disable.
func (m *Machine) Restore(state uintptr) {
	m.events = append(m.events, EvRestore)
	m.irqOn = state != 0
}

// Window briefly enables interrupts.
func (m *Machine) Window() {
	m.events = append(m.events, EvWindow)
	if m.irqOn {
		m.violate("window opened with interrupts enabled")
	}
	start := m.now
	m.now += uint64(m.prof.Program.WindowCycles)
	f := m.frame()
	f.Windows = append(f.Windows, Span{Start: start, End: m.now})
}
