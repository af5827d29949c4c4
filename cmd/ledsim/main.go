// Command ledsim runs a strip scenario through the cycle simulator,
// reports the derived timing and optionally dumps a VCD trace or
// replays the frame on real hardware through periph.io.
//
//	ledsim -scenario mega -vcd mega.vcd
//	ledsim -config strip.yaml -colors "#ff0000,#00ff00" -stream-pin GPIO18
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiostream"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/drivers/ledstrip/periphline"
	"ledstrip-go/drivers/ledstrip/sim"
	"ledstrip-go/errcode"
	"ledstrip-go/internal/config"
	"ledstrip-go/x/mathx"
	"ledstrip-go/x/timex"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Str("code", string(errcode.Of(err))).Msg("ledsim failed")
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ledsim", flag.ContinueOnError)
	fs.SetOutput(stdout)
	var (
		configPath = fs.String("config", "", "scenario YAML file")
		scenario   = fs.String("scenario", "uno", "built-in scenario (see -list)")
		list       = fs.Bool("list", false, "list built-in scenarios and exit")
		family     = fs.String("family", "", "MCU family: atmega328p | atmega32u4 | atmega2560 | sam3x8e | sim")
		pin        = fs.Int("pin", 6, "board pin number")
		clockHz    = fs.Uint64("clock", 0, "CPU clock in Hz")
		protocol   = fs.String("protocol", "", "ws2812b | ws2812 | tm1804")
		order      = fs.String("order", "", "channel order override, e.g. GRB")
		friendly   = fs.Bool("friendly", false, "open an interrupt window between pixels")
		colors     = fs.String("colors", "", "comma separated #rrggbb list")
		vcd        = fs.String("vcd", "", "write a VCD trace to this path")
		streamPin  = fs.String("stream-pin", "", "replay on this gpiostream pin (periph name)")
		streamHz   = fs.Int64("stream-freq", 8_000_000, "stream sample rate in Hz")
		spiPort    = fs.String("spi", "", "replay through nrzled on this SPI port (\"-\" for the first one)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *list {
		names := config.Names()
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintln(stdout, n)
		}
		return nil
	}

	var (
		sc  *config.Scenario
		err error
	)
	if *configPath != "" {
		sc, err = config.Load(*configPath)
	} else {
		sc, err = config.Named(*scenario)
	}
	if err != nil {
		return err
	}

	// Flags given explicitly override the scenario.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "family":
			sc.Family = *family
		case "pin":
			sc.Pin = *pin
		case "clock":
			if !mathx.Between(*clockHz, 1, math.MaxUint32) {
				flagErr = errcode.Wrap(errcode.InvalidParams, "ledsim", "-clock must be 1.."+strconv.FormatUint(math.MaxUint32, 10)+" Hz", nil)
				return
			}
			sc.ClockHz = uint32(*clockHz)
		case "protocol":
			sc.Protocol = *protocol
		case "order":
			sc.Order = *order
		case "friendly":
			sc.InterruptFriendly = *friendly
		case "colors":
			sc.Colors = sc.Colors[:0]
			for _, s := range strings.Split(*colors, ",") {
				c, err := config.ParseHex(s)
				if err != nil {
					flagErr = err
					return
				}
				sc.Colors = append(sc.Colors, config.Color(c))
			}
		case "vcd":
			sc.VCD = *vcd
		case "stream-pin", "stream-freq", "spi":
			if sc.Stream == nil {
				sc.Stream = &config.Stream{}
			}
			sc.Stream.Pin = *streamPin
			sc.Stream.FreqHz = *streamHz
			sc.Stream.SPI = *spiPort
		}
	})
	if flagErr != nil {
		return flagErr
	}

	r, err := sc.Resolve()
	if err != nil {
		return err
	}

	rep, err := r.Protocol.Check(r.Profile)
	ev := log.Info()
	if err != nil {
		ev = log.Warn().Err(err)
	}
	ev.Str("profile", rep.Profile).
		Str("protocol", r.Protocol.Name).
		Str("family", r.Family.Name).
		Int("pin", sc.Pin).
		Dur("t0h", rep.High0).
		Dur("t1h", rep.High1).
		Dur("period", rep.Period).
		Dur("pixel_gap", rep.PixelGap).
		Dur("irq_window", rep.IRQWindow).
		Msg("timing")
	if err != nil {
		return err
	}

	m := sim.New(r.Profile)
	strip, err := ledstrip.New(m, m, r.Config)
	if err != nil {
		return err
	}
	if err := strip.Write(r.Colors); err != nil {
		return err
	}
	f, _ := m.Last()
	log.Info().
		Int("pixels", f.Pixels).
		Int("pulses", len(f.Pulses())).
		Str("wire", hex.EncodeToString(f.Bytes())).
		Str("order", strip.Order().String()).
		Int("irq_windows", len(f.Windows)).
		Dur("reset", timex.CyclesToDuration(f.Reset.Len(), r.Profile.Clock)).
		Msg("frame")
	if v := m.Violations(); len(v) > 0 {
		return errors.New("simulator: " + strings.Join(v, "; "))
	}

	if sc.VCD != "" {
		if err := writeVCD(sc.VCD, m); err != nil {
			return err
		}
		log.Info().Str("path", sc.VCD).Msg("wrote trace")
	}

	if sc.Stream != nil && (sc.Stream.Pin != "" || sc.Stream.SPI != "") {
		return replay(sc.Stream, r)
	}
	return nil
}

func writeVCD(path string, m *sim.Machine) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.WriteVCD(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// replay sends the scenario's frame to real hardware.
func replay(st *config.Stream, r *config.Resolved) error {
	if _, err := host.Init(); err != nil {
		return err
	}

	if st.SPI != "" {
		name := st.SPI
		if name == "-" {
			name = ""
		}
		port, err := spireg.Open(name)
		if err != nil {
			return err
		}
		defer port.Close()
		line, err := periphline.NewSPI(port, len(r.Colors), r.Protocol.Timing)
		if err != nil {
			return err
		}
		if err := send(line, r); err != nil {
			return err
		}
		log.Info().Str("device", line.String()).Msg("replayed over spi")
		return line.Err()
	}

	p := gpioreg.ByName(st.Pin)
	if p == nil {
		return errcode.Wrap(errcode.UnknownPin, "ledsim", st.Pin, nil)
	}
	sp, ok := p.(gpiostream.PinOut)
	if !ok {
		return errcode.Wrap(errcode.StreamUnsupported, "ledsim", st.Pin+" cannot stream", nil)
	}
	line, err := periphline.NewStream(sp, r.Profile, physic.Frequency(st.FreqHz)*physic.Hertz)
	if err != nil {
		return err
	}
	if err := send(line, r); err != nil {
		return err
	}
	log.Info().Str("pin", st.Pin).Msg("replayed over gpiostream")
	return line.Err()
}

func send(line ledstrip.Line, r *config.Resolved) error {
	s, err := ledstrip.New(line, periphline.NoIRQ{}, r.Config)
	if err != nil {
		return err
	}
	return s.Write(r.Colors)
}
