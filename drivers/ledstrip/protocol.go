package ledstrip

import (
	"strings"
	"time"

	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
)

// Protocol describes a strip chip variant.
type Protocol struct {
	Name   string
	Timing timing.Family
	Order  Order
	// Reset is how long the line is held low after a frame.
	Reset time.Duration
	// MinReset is the shortest low time the chip treats as a latch.
	MinReset time.Duration
}

var (
	// WS2812B covers WS2812B and SK6812 style chips.
	WS2812B = Protocol{Name: "ws2812b", Timing: timing.Fast, Order: OrderGRB, Reset: 80 * time.Microsecond, MinReset: 50 * time.Microsecond}

	// WS2812 is the first-generation part, which latches after about 9 us.
	WS2812 = Protocol{Name: "ws2812", Timing: timing.Fast, Order: OrderGRB, Reset: 15 * time.Microsecond, MinReset: 9 * time.Microsecond}

	// TM1804 is the slow-timing TM1804 family.
	TM1804 = Protocol{Name: "tm1804", Timing: timing.Slow, Order: OrderRGB, Reset: 24 * time.Microsecond, MinReset: 20 * time.Microsecond}
)

// Protocols lists the known variants.
func Protocols() []Protocol { return []Protocol{WS2812B, WS2812, TM1804} }

// ProtocolByName finds a variant, ignoring case.
func ProtocolByName(name string) (Protocol, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Protocols() {
		if p.Name == n {
			return p, nil
		}
	}
	return Protocol{}, errcode.Wrap(errcode.UnknownProtocol, "ledstrip.ProtocolByName", name, nil)
}

// Check validates prof against the protocol: the timing window of its
// family, a reset hold that latches, and pixel gaps that do not.
func (p Protocol) Check(prof timing.Profile) (timing.Report, error) {
	const op = "ledstrip.Check"
	if prof.Timing != p.Timing {
		return timing.Report{Profile: prof.Name()}, errcode.Wrap(errcode.ProtocolMismatch, op,
			p.Name+" needs "+p.Timing.String()+" timing", nil)
	}
	r, err := timing.Validate(prof, timing.WindowFor(p.Timing))
	if err != nil {
		return r, err
	}
	if p.Reset < p.MinReset {
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "reset hold shorter than latch", nil)
	}
	if r.PixelGap >= p.MinReset {
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "pixel gap long enough to latch", nil)
	}
	return r, nil
}
