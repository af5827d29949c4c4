package sim_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/drivers/ledstrip/sim"
	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/x/timex"
)

func machine(t *testing.T, hz uint32, f timing.Family) *sim.Machine {
	t.Helper()
	p, err := timing.ProfileFor(timing.ArchAVR, hz, f)
	require.NoError(t, err)
	return sim.New(p)
}

func TestSingleRedPixelOnPin6(t *testing.T) {
	s, err := ledstrip.Open(ledstrip.Pins[6], ledstrip.Config{})
	require.NoError(t, err)
	m, ok := s.Line().(*sim.Machine)
	require.True(t, ok)

	require.NoError(t, s.WriteN([]ledstrip.Color{{R: 255}}, 1))

	f, ok := m.Last()
	require.True(t, ok)
	assert.Len(t, f.Pulses(), 24)
	assert.Equal(t, []byte{0x00, 0xFF, 0x00}, f.Bytes())
	assert.GreaterOrEqual(t, timex.CyclesToDuration(f.Reset.Len(), m.Profile().Clock), ledstrip.WS2812B.MinReset)
	assert.True(t, f.IRQOnAtReset)
	assert.True(t, m.InterruptsEnabled())
	assert.False(t, m.Level())
	assert.Empty(t, m.Violations())
}

func TestPulseWidthsMatchProfile(t *testing.T) {
	for _, p := range timing.Profiles {
		if p.Arch != timing.ArchAVR {
			continue
		}
		c, err := timing.Analyze(p.Program)
		require.NoError(t, err)
		m := sim.New(p)
		s, err := ledstrip.New(m, m, ledstrip.Config{Protocol: protocolFor(p.Timing), Order: ledstrip.OrderRGB})
		require.NoError(t, err)
		require.NoError(t, s.Write([]ledstrip.Color{{R: 0xA5, G: 0x0F, B: 0xF0}, {R: 0x3C}}))

		f, _ := m.Last()
		ps := f.Pulses()
		require.Len(t, ps, 48, p.Name())
		assert.Equal(t, []byte{0xA5, 0x0F, 0xF0, 0x3C, 0x00, 0x00}, f.Bytes(), p.Name())
		for i, pl := range ps {
			want := uint64(c.High0)
			if f.Bits()[i] {
				want = uint64(c.High1)
			}
			assert.Equal(t, want, pl.High, "%s bit %d", p.Name(), i)
			if i%24 != 23 {
				// rise to rise is constant inside a pixel, including byte boundaries
				assert.Equal(t, uint64(c.Period), pl.Period(), "%s bit %d", p.Name(), i)
			}
		}
		assert.Equal(t, uint64(int32(c.Low0())+c.Boundary), ps[23].Low, p.Name())
	}
}

func TestIdempotentFrames(t *testing.T) {
	m := machine(t, timing.Clock16MHz, timing.Fast)
	s, err := ledstrip.New(m, m, ledstrip.Config{Protocol: ledstrip.WS2812B})
	require.NoError(t, err)
	colors := []ledstrip.Color{{R: 1, G: 2, B: 3}, {R: 200, G: 100, B: 50}}
	require.NoError(t, s.Write(colors))
	require.NoError(t, s.Write(colors))

	fs := m.Frames()
	require.Len(t, fs, 2)
	assert.Equal(t, fs[0].Relative(), fs[1].Relative())
	assert.Equal(t, fs[0].Reset.Len(), fs[1].Reset.Len())
}

func TestZeroCount(t *testing.T) {
	m := machine(t, timing.Clock16MHz, timing.Fast)
	s, err := ledstrip.New(m, m, ledstrip.Config{})
	require.NoError(t, err)
	require.NoError(t, s.WriteN([]ledstrip.Color{{R: 9}}, 0))

	assert.Equal(t, []sim.Event{sim.EvConfigure, sim.EvDisable, sim.EvRestore, sim.EvReset}, m.Events())
	f, _ := m.Last()
	assert.Empty(t, f.Pulses())
	assert.NotZero(t, f.Reset.Len())
	assert.True(t, m.InterruptsEnabled())
}

func TestInterruptWindows(t *testing.T) {
	m := machine(t, timing.Clock20MHz, timing.Slow)
	s, err := ledstrip.New(m, m, ledstrip.Config{Protocol: ledstrip.TM1804, InterruptFriendly: true})
	require.NoError(t, err)
	require.NoError(t, s.Write(make([]ledstrip.Color, 5)))

	f, _ := m.Last()
	require.Len(t, f.Windows, 5)
	for _, w := range f.Windows {
		assert.Equal(t, uint64(m.Profile().Program.WindowCycles), w.Len())
	}
	assert.Equal(t, []sim.Event{
		sim.EvConfigure, sim.EvDisable,
		sim.EvPixel, sim.EvWindow, sim.EvPixel, sim.EvWindow, sim.EvPixel, sim.EvWindow,
		sim.EvPixel, sim.EvWindow, sim.EvPixel, sim.EvWindow,
		sim.EvRestore, sim.EvReset,
	}, m.Events())
	assert.Empty(t, m.Violations())
}

func TestViolations(t *testing.T) {
	m := machine(t, timing.Clock16MHz, timing.Fast)
	m.EncodePixel(1, 2, 3)
	m.Window()
	v := strings.Join(m.Violations(), ";")
	assert.Contains(t, v, "before configuration")
	assert.Contains(t, v, "interrupts enabled")
	assert.Contains(t, v, "on an input")

	m.Clear()
	assert.Empty(t, m.Violations())
	assert.Empty(t, m.Frames())
}

func TestHoldLowRoundsUp(t *testing.T) {
	m := machine(t, timing.Clock16MHz, timing.Fast)
	m.ConfigureOutputLow()
	m.HoldLow(80 * time.Microsecond)
	f, _ := m.Last()
	assert.Equal(t, uint64(1280), f.Reset.Len())
}

func TestWriteVCD(t *testing.T) {
	m := machine(t, timing.Clock16MHz, timing.Fast)
	s, err := ledstrip.New(m, m, ledstrip.Config{InterruptFriendly: true})
	require.NoError(t, err)
	require.NoError(t, s.Write([]ledstrip.Color{{G: 0x80}}))

	var buf bytes.Buffer
	require.NoError(t, m.WriteVCD(&buf))
	out := buf.String()
	assert.Contains(t, out, "$timescale 1ps $end")
	assert.Contains(t, out, "$var wire 1 d data $end")
	// first rise lands 2 cycles in: 125 ns
	assert.Contains(t, out, "#125000\n1d\n")
	assert.Equal(t, 24, strings.Count(out, "1d\n"))
	assert.Equal(t, 1, strings.Count(out, "1w\n"))
}

func protocolFor(f timing.Family) ledstrip.Protocol {
	if f == timing.Slow {
		return ledstrip.TM1804
	}
	return ledstrip.WS2812B
}
