package periphline

import (
	"sync"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/nrzled"

	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
)

// SPI sends frames through an nrzled device on an SPI port. The nrzled
// encoder fixes the bit timing and emits its own latch, so HoldLow only
// flushes.
//
// nrzled takes RGB input and puts G first on the wire. The line feeds it
// the strip's wire order with the first two channels swapped back, so
// the bytes on the wire are exactly those passed to EncodePixel and the
// strip's Order applies unchanged.
type SPI struct {
	mu  sync.Mutex
	dev *nrzled.Dev
	buf []byte
	err error
}

// NewSPI opens an nrzled device for up to pixels pixels at the 800 kHz
// data rate. nrzled has no slow timing, so fam must be timing.Fast.
func NewSPI(port spi.Port, pixels int, fam timing.Family) (*SPI, error) {
	if fam != timing.Fast {
		return nil, errcode.Wrap(errcode.StreamUnsupported, "periphline.NewSPI", "nrzled only drives "+timing.Fast.String()+" timing", nil)
	}
	d, err := nrzled.NewSPI(port, &nrzled.Opts{
		NumPixels: pixels,
		Channels:  3,
		Freq:      2500 * physic.KiloHertz,
	})
	if err != nil {
		return nil, err
	}
	return &SPI{dev: d, buf: make([]byte, 0, pixels*3)}, nil
}

func (s *SPI) ConfigureOutputLow() {
	s.mu.Lock()
	s.buf = s.buf[:0]
	s.err = nil
	s.mu.Unlock()
}

func (s *SPI) EncodePixel(c0, c1, c2 byte) {
	s.mu.Lock()
	s.buf = append(s.buf, c1, c0, c2)
	s.mu.Unlock()
}

func (s *SPI) HoldLow(time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, s.err = s.dev.Write(s.buf)
}

// Err returns the error of the last frame, if any.
func (s *SPI) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Halt turns all pixels off.
func (s *SPI) Halt() error { return s.dev.Halt() }

func (s *SPI) String() string { return s.dev.String() }
