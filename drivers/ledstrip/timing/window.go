package timing

import (
	"time"

	"ledstrip-go/errcode"
	"ledstrip-go/x/mathx"
	"ledstrip-go/x/timex"
)

// Window is the tolerance a timing family allows.
type Window struct {
	T0H       time.Duration
	T1H       time.Duration
	Tolerance time.Duration
	// MinLow is the shortest low phase the chip still samples reliably.
	MinLow time.Duration
	// MaxLow is the longest low phase between bits that does not risk a
	// latch.
	MaxLow time.Duration
}

var windows = [...]Window{
	Fast: {
		T0H:       400 * time.Nanosecond,
		T1H:       800 * time.Nanosecond,
		Tolerance: 150 * time.Nanosecond,
		MinLow:    300 * time.Nanosecond,
		MaxLow:    6 * time.Microsecond,
	},
	Slow: {
		T0H:       700 * time.Nanosecond,
		T1H:       1300 * time.Nanosecond,
		Tolerance: 150 * time.Nanosecond,
		MinLow:    600 * time.Nanosecond,
		MaxLow:    10 * time.Microsecond,
	},
}

// WindowFor returns the tolerance window of a family.
func WindowFor(f Family) Window {
	if f != Fast && f != Slow {
		return Window{}
	}
	return windows[f]
}

// Report is the timing of a profile converted to wall-clock time.
type Report struct {
	Profile string
	Cycles  Cycles

	Period time.Duration
	High0  time.Duration
	High1  time.Duration
	Low0   time.Duration
	Low1   time.Duration
	// PixelGap is the longest low phase at a pixel boundary, including
	// one interrupt-friendly window.
	PixelGap time.Duration
	// IRQWindow is the length of one interrupt-friendly window.
	IRQWindow time.Duration
}

// Validate analyses p and checks the result against w. The Report is
// filled whenever analysis succeeds, even if a check fails.
func Validate(p Profile, w Window) (Report, error) {
	const op = "timing.Validate"
	c, err := Analyze(p.Program)
	if err != nil {
		return Report{Profile: p.Name()}, err
	}

	d := func(n int64) time.Duration {
		if n < 0 {
			n = 0
		}
		return timex.CyclesToDuration(uint64(n), p.Clock)
	}
	r := Report{
		Profile:   p.Name(),
		Cycles:    c,
		Period:    d(int64(c.Period)),
		High0:     d(int64(c.High0)),
		High1:     d(int64(c.High1)),
		Low0:      d(int64(c.Low0())),
		Low1:      d(int64(c.Low1())),
		PixelGap:  d(int64(c.Low0()) + int64(c.Boundary) + int64(p.Program.WindowCycles)),
		IRQWindow: d(int64(p.Program.WindowCycles)),
	}

	switch {
	case !mathx.Between(r.High0, w.T0H-w.Tolerance, w.T0H+w.Tolerance):
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "t0h "+r.High0.String(), nil)
	case !mathx.Between(r.High1, w.T1H-w.Tolerance, w.T1H+w.Tolerance):
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "t1h "+r.High1.String(), nil)
	case r.High1-r.High0 < w.Tolerance:
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "t0h and t1h too close", nil)
	case r.Low1 < w.MinLow:
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "low phase "+r.Low1.String(), nil)
	case r.PixelGap > w.MaxLow:
		return r, errcode.Wrap(errcode.OutOfTolerance, op, "pixel gap "+r.PixelGap.String(), nil)
	}
	return r, nil
}
