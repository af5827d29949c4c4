package ledstrip

import (
	"errors"
	"strings"
	"testing"
	"time"

	"ledstrip-go/errcode"
)

// recorder implements Line and Interrupts and logs every call.
type recorder struct {
	calls   []string
	pixels  [][3]byte
	irqOn   bool
	resets  []time.Duration
	panicAt int
}

func newRecorder() *recorder { return &recorder{irqOn: true, panicAt: -1} }

func (r *recorder) ConfigureOutputLow() { r.calls = append(r.calls, "configure") }
func (r *recorder) EncodePixel(c0, c1, c2 byte) {
	if r.panicAt == len(r.pixels) {
		panic("line fault")
	}
	r.calls = append(r.calls, "pixel")
	r.pixels = append(r.pixels, [3]byte{c0, c1, c2})
}
func (r *recorder) HoldLow(d time.Duration) {
	r.calls = append(r.calls, "reset")
	r.resets = append(r.resets, d)
}
func (r *recorder) Disable() uintptr {
	r.calls = append(r.calls, "disable")
	r.irqOn = false
	return 7
}
func (r *recorder) Restore(state uintptr) {
	r.calls = append(r.calls, "restore")
	r.irqOn = state == 7
}
func (r *recorder) Window() { r.calls = append(r.calls, "window") }

func (r *recorder) log() string { return strings.Join(r.calls, ",") }

func newStrip(t *testing.T, r *recorder, cfg Config) *Strip {
	t.Helper()
	s, err := New(r, r, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestWriteSequence(t *testing.T) {
	r := newRecorder()
	s := newStrip(t, r, Config{Protocol: WS2812B})
	if err := s.Write([]Color{{255, 0, 0}, {1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	if got, want := r.log(), "configure,disable,pixel,pixel,restore,reset"; got != want {
		t.Fatalf("calls: got %s want %s", got, want)
	}
	if r.pixels[0] != [3]byte{0, 255, 0} || r.pixels[1] != [3]byte{2, 1, 3} {
		t.Fatalf("GRB order not applied: %v", r.pixels)
	}
	if r.resets[0] != 80*time.Microsecond || !r.irqOn {
		t.Fatalf("reset %v irq %v", r.resets, r.irqOn)
	}
}

func TestWriteInterruptFriendly(t *testing.T) {
	r := newRecorder()
	s := newStrip(t, r, Config{Protocol: TM1804, InterruptFriendly: true})
	if err := s.Write(make([]Color, 3)); err != nil {
		t.Fatal(err)
	}
	if got, want := r.log(), "configure,disable,pixel,window,pixel,window,pixel,window,restore,reset"; got != want {
		t.Fatalf("calls: got %s want %s", got, want)
	}
	s.SetInterruptFriendly(false)
	r.calls = nil
	_ = s.Write(make([]Color, 3))
	if strings.Contains(r.log(), "window") {
		t.Fatalf("window after disabling: %s", r.log())
	}
}

func TestWriteZero(t *testing.T) {
	r := newRecorder()
	s := newStrip(t, r, Config{})
	if err := s.Write(nil); err != nil {
		t.Fatal(err)
	}
	if got, want := r.log(), "configure,disable,restore,reset"; got != want {
		t.Fatalf("calls: got %s want %s", got, want)
	}
}

func TestWriteNBounds(t *testing.T) {
	r := newRecorder()
	s := newStrip(t, r, Config{})
	colors := []Color{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}

	for _, n := range []int{4, -1} {
		err := s.WriteN(colors, n)
		if !errors.Is(err, errcode.ShortBuffer) {
			t.Fatalf("count %d: got %v", n, err)
		}
	}
	if len(r.calls) != 0 {
		t.Fatalf("rejected write touched the line: %s", r.log())
	}

	if err := s.WriteN(colors, 2); err != nil {
		t.Fatal(err)
	}
	if len(r.pixels) != 2 || r.pixels[1] != [3]byte{2, 2, 2} {
		t.Fatalf("pixels: %v", r.pixels)
	}
}

func TestRestoreOnPanic(t *testing.T) {
	r := newRecorder()
	r.panicAt = 1
	s := newStrip(t, r, Config{})
	func() {
		defer func() { _ = recover() }()
		_ = s.Write(make([]Color, 3))
	}()
	if !r.irqOn || !strings.HasSuffix(r.log(), "restore") {
		t.Fatalf("interrupts not restored: %s", r.log())
	}
}

func TestNewDefaultsAndErrors(t *testing.T) {
	r := newRecorder()
	s := newStrip(t, r, Config{})
	if s.Protocol().Name != activeProtocol.Name || s.Order() != activeProtocol.Order {
		t.Fatalf("defaults: %+v %v", s.Protocol(), s.Order())
	}
	s = newStrip(t, r, Config{Protocol: WS2812, Order: OrderBGR})
	if s.Order() != OrderBGR {
		t.Fatalf("order override ignored")
	}
	if _, err := New(r, r, Config{Order: Order(42)}); errcode.Of(err) != errcode.InvalidOrder {
		t.Fatalf("invalid order: %v", err)
	}
	if _, err := New(nil, r, Config{}); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("nil line: %v", err)
	}
}
