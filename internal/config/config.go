// Package config loads ledsim scenarios from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/drivers/ledstrip/pinmap"
	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
	"ledstrip-go/x/mathx"
)

// Stream routes the frame to real hardware through periph.io.
type Stream struct {
	Pin    string `yaml:"pin,omitempty"`     // gpioreg name, e.g. GPIO18
	FreqHz int64  `yaml:"freq_hz,omitempty"` // sample rate, e.g. 8000000
	SPI    string `yaml:"spi,omitempty"`     // spireg name; "" picks the first port
}

// Scenario is one simulated transmission.
type Scenario struct {
	Family            string  `yaml:"family"`
	Pin               int     `yaml:"pin"`
	ClockHz           uint32  `yaml:"clock_hz"`
	Protocol          string  `yaml:"protocol"`
	Order             string  `yaml:"order,omitempty"`
	InterruptFriendly bool    `yaml:"interrupt_friendly"`
	Colors            []Color `yaml:"colors"`
	VCD               string  `yaml:"vcd,omitempty"`
	Stream            *Stream `yaml:"stream,omitempty"`
}

// Color is "#rrggbb" or [r, g, b] in YAML.
type Color ledstrip.Color

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := ParseHex(n.Value)
		if err != nil {
			return err
		}
		*c = Color(v)
		return nil
	case yaml.SequenceNode:
		var ch []int
		if err := n.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 3 {
			return fmt.Errorf("line %d: colour needs 3 channels, got %d", n.Line, len(ch))
		}
		for _, v := range ch {
			if !mathx.Between(v, 0, 255) {
				return fmt.Errorf("line %d: channel %d out of range", n.Line, v)
			}
		}
		*c = Color{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}
		return nil
	}
	return fmt.Errorf("line %d: colour must be \"#rrggbb\" or [r, g, b]", n.Line)
}

func (c Color) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// ParseHex parses "#rrggbb" (the # is optional).
func ParseHex(s string) (ledstrip.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return ledstrip.Color{}, fmt.Errorf("colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ledstrip.Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return ledstrip.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Default is the scenario every file is decoded over: the sim family,
// WS2812B on pin 6, one red pixel. The clock follows the family when
// left unset.
func Default() Scenario {
	return Scenario{
		Family:   "sim",
		Pin:      6,
		Protocol: ledstrip.WS2812B.Name,
		Colors:   []Color{{R: 255}},
	}
}

func (s *Scenario) fillClock() {
	if s.ClockHz != 0 {
		return
	}
	s.ClockHz = timing.Clock16MHz
	if f, err := pinmap.ByName(s.Family); err == nil && f.Arch == timing.ArchCortexM3 {
		s.ClockHz = timing.Clock84MHz
	}
}

// Resolved is a Scenario turned into driver values.
type Resolved struct {
	Family   pinmap.Family
	Binding  pinmap.Binding
	Profile  timing.Profile
	Protocol ledstrip.Protocol
	Config   ledstrip.Config
	Colors   []ledstrip.Color
}

// Resolve looks up the family, pin, protocol and profile.
func (s *Scenario) Resolve() (*Resolved, error) {
	fam, err := pinmap.ByName(s.Family)
	if err != nil {
		return nil, err
	}
	b, err := fam.Lookup(s.Pin)
	if err != nil {
		return nil, err
	}
	proto, err := ledstrip.ProtocolByName(s.Protocol)
	if err != nil {
		return nil, err
	}
	prof, err := timing.ProfileFor(fam.Arch, s.ClockHz, proto.Timing)
	if err != nil {
		return nil, err
	}
	cfg := ledstrip.Config{Protocol: proto, InterruptFriendly: s.InterruptFriendly}
	if s.Order != "" {
		if cfg.Order, err = ledstrip.ParseOrder(s.Order); err != nil {
			return nil, err
		}
	}
	colors := make([]ledstrip.Color, len(s.Colors))
	for i, c := range s.Colors {
		colors[i] = ledstrip.Color(c)
	}
	return &Resolved{Family: fam, Binding: b, Profile: prof, Protocol: proto, Config: cfg, Colors: colors}, nil
}

// Parse decodes a scenario over Default.
func Parse(b []byte) (*Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	s.fillClock()
	return &s, nil
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Save writes a scenario file.
func Save(path string, s *Scenario) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// EmbeddedLookup allows overriding how named scenarios are resolved.
var EmbeddedLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedScenarios[name]
	return b, ok
}

// Named returns a built-in scenario.
func Named(name string) (*Scenario, error) {
	raw, ok := EmbeddedLookup(name)
	if !ok || len(raw) == 0 {
		return nil, errcode.Wrap(errcode.UnknownScenario, "config.Named", "no embedded scenario "+name, nil)
	}
	return Parse(raw)
}
