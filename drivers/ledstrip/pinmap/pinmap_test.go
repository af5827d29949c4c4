package pinmap

import (
	"testing"

	"ledstrip-go/drivers/ledstrip/timing"
	"ledstrip-go/errcode"
)

func TestKnownBindings(t *testing.T) {
	cases := []struct {
		family string
		pin    int
		want   Binding
	}{
		{"atmega328p", 6, Binding{PortD, 6}},
		{"atmega328p", 13, Binding{PortB, 5}},
		{"atmega328p", 20, Binding{PortC, 6}},
		{"atmega32u4", 0, Binding{PortD, 2}},
		{"atmega32u4", 17, Binding{PortB, 0}},
		{"atmega32u4", 29, Binding{PortD, 6}},
		{"atmega2560", 6, Binding{PortH, 3}},
		{"atmega2560", 42, Binding{PortL, 7}},
		{"atmega2560", 69, Binding{PortK, 7}},
		{"sam3x8e", 2, Binding{PIOB, 25}},
		{"sam3x8e", 13, Binding{PIOB, 27}},
		{"sam3x8e", 65, Binding{PIOB, 20}},
	}
	for _, c := range cases {
		f, err := ByName(c.family)
		if err != nil {
			t.Fatalf("%s: %v", c.family, err)
		}
		got, err := f.Lookup(c.pin)
		if err != nil {
			t.Fatalf("%s pin %d: %v", c.family, c.pin, err)
		}
		if got != c.want {
			t.Fatalf("%s pin %d: got %+v want %+v", c.family, c.pin, got, c.want)
		}
	}
}

func TestLookupErrors(t *testing.T) {
	f, _ := ByName("atmega328p")
	for _, pin := range []int{-1, 21, 100} {
		if _, err := f.Lookup(pin); errcode.Of(err) != errcode.UnknownPin {
			t.Fatalf("pin %d: got %v", pin, err)
		}
	}
	if _, err := ByName("attiny85"); errcode.Of(err) != errcode.UnknownFamily {
		t.Fatalf("unknown family: got %v", err)
	}
}

func TestTablesAreSane(t *testing.T) {
	sizes := map[string]int{"atmega328p": 21, "atmega32u4": 30, "atmega2560": 70, "sam3x8e": 66, "sim": 32}
	for _, f := range Families() {
		if len(f.Pins) != sizes[f.Name] {
			t.Fatalf("%s: %d pins", f.Name, len(f.Pins))
		}
		for i, b := range f.Pins {
			if !b.Valid() {
				t.Fatalf("%s pin %d unbound", f.Name, i)
			}
			limit := uint8(8)
			if f.Arch == timing.ArchCortexM3 {
				limit = 32
			}
			if b.Bit >= limit {
				t.Fatalf("%s pin %d: bit %d", f.Name, i, b.Bit)
			}
		}
	}
}

func TestMask(t *testing.T) {
	if (Binding{PortD, 6}).Mask() != 0x40 || (Binding{PIOC, 28}).Mask() != 1<<28 {
		t.Fatalf("mask")
	}
}

func TestSimBindingsDistinct(t *testing.T) {
	seen := map[Binding]int{}
	for i, b := range Sim {
		if j, dup := seen[b]; dup {
			t.Fatalf("sim pins %d and %d share %+v", j, i, b)
		}
		seen[b] = i
	}
}
