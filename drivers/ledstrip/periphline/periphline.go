// Package periphline renders strip frames on host hardware through
// periph.io: as a sampled bit stream on any gpiostream.PinOut, or as
// NRZ-encoded SPI through nrzled.
//
// Both lines buffer a whole frame and send it from HoldLow, so pixel
// gaps are those of the output device, not of the caller.
package periphline

import (
	"math"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"

	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
	"ledstrip-go/x/mathx"
	"ledstrip-go/x/timex"
)

// NoIRQ satisfies ledstrip.Interrupts for lines that do not depend on
// the host's interrupt latency.
type NoIRQ struct{}

func (NoIRQ) Disable() uintptr { return 0 }
func (NoIRQ) Restore(uintptr)  {}
func (NoIRQ) Window()          {}

// Stream encodes each bit as a fixed run of samples of a BitStream.
type Stream struct {
	mu   sync.Mutex
	pin  gpiostream.PinOut
	freq physic.Frequency
	hz   uint32

	high0, high1, period int

	bits []byte
	n    int
	err  error
}

// NewStream quantises prof's high times and period to the sample rate
// freq. It fails with StreamUnsupported when freq is too coarse to keep
// 0 and 1 bits apart.
func NewStream(pin gpiostream.PinOut, prof timing.Profile, freq physic.Frequency) (*Stream, error) {
	const op = "periphline.NewStream"
	c, err := timing.Analyze(prof.Program)
	if err != nil {
		return nil, err
	}
	hz := uint64(freq / physic.Hertz)
	if hz == 0 || prof.Clock == 0 {
		return nil, errcode.Wrap(errcode.StreamUnsupported, op, "zero sample rate", nil)
	}
	samples := func(cycles uint16) int {
		return int(mathx.RoundDiv(uint64(cycles)*hz, uint64(prof.Clock)))
	}
	s := &Stream{
		pin:    pin,
		freq:   freq,
		hz:     uint32(mathx.Min(hz, math.MaxUint32)),
		high0:  samples(c.High0),
		high1:  samples(c.High1),
		period: samples(c.Period),
	}
	if s.high0 < 1 || s.high1 <= s.high0 || s.period <= s.high1 {
		return nil, errcode.Wrap(errcode.StreamUnsupported, op, "sample rate "+freq.String()+" too low", nil)
	}
	return s, nil
}

// SamplesPerBit returns the quantised high0, high1 and period.
func (s *Stream) SamplesPerBit() (high0, high1, period int) {
	return s.high0, s.high1, s.period
}

// Err returns the error of the last stream, if any.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) ConfigureOutputLow() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bits = s.bits[:0]
	s.n = 0
	s.err = nil
	if p, ok := s.pin.(gpio.PinOut); ok {
		s.err = p.Out(gpio.Low)
	}
}

func (s *Stream) EncodePixel(c0, c1, c2 byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	word := uint32(c0)<<16 | uint32(c1)<<8 | uint32(c2)
	for i := 23; i >= 0; i-- {
		h := s.high0
		if word&(1<<uint(i)) != 0 {
			h = s.high1
		}
		s.push(true, h)
		s.push(false, s.period-h)
	}
}

// HoldLow appends the reset and streams the frame.
func (s *Stream) HoldLow(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	per := time.Duration(mathx.Max(timex.PeriodFromHz(s.hz), 1))
	s.push(false, int((d+per-1)/per))
	if s.err != nil {
		return
	}
	s.err = s.pin.StreamOut(&gpiostream.BitStream{Bits: s.bits, Freq: s.freq, LSBF: false})
}

// Bits returns the packed samples of the last frame, MSB first, and
// their count.
func (s *Stream) Bits() ([]byte, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bits, s.n
}

func (s *Stream) push(high bool, count int) {
	for ; count > 0; count-- {
		if s.n%8 == 0 {
			s.bits = append(s.bits, 0)
		}
		if high {
			s.bits[s.n/8] |= 0x80 >> uint(s.n%8)
		}
		s.n++
	}
}
