package errcode

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[Code]string{
		UnsupportedClock:  "unsupported_clock",
		UnknownFamily:     "unknown_family",
		UnknownPin:        "unknown_pin",
		ClockMismatch:     "clock_mismatch",
		UnknownProtocol:   "unknown_protocol",
		ProtocolMismatch:  "protocol_mismatch",
		InvalidOrder:      "invalid_order",
		ShortBuffer:       "short_buffer",
		InvalidProfile:    "invalid_profile",
		Anisochronous:     "anisochronous",
		OutOfTolerance:    "out_of_tolerance",
		StreamUnsupported: "stream_unsupported",
		UnknownScenario:   "unknown_scenario",
	}
	for c, want := range cases {
		if c.Error() != want {
			t.Fatalf("code %q: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("nil should map to ok")
	}
	if Of(UnknownPin) != UnknownPin {
		t.Fatalf("bare code not preserved")
	}
	e := Wrap(OutOfTolerance, "timing.Validate", "t0h", nil)
	if Of(e) != OutOfTolerance {
		t.Fatalf("wrapped code not extracted")
	}
	if Of(fmt.Errorf("ctx: %w", e)) != OutOfTolerance {
		t.Fatalf("code lost through fmt wrapping")
	}
	if Of(errors.New("boom")) != Error {
		t.Fatalf("foreign error should map to generic code")
	}
}

func TestEMatchesCode(t *testing.T) {
	e := Wrap(ShortBuffer, "ledstrip.WriteN", "count 5 > 3", nil)
	if !errors.Is(e, ShortBuffer) {
		t.Fatalf("errors.Is should match the bare code")
	}
	if errors.Is(e, UnknownPin) {
		t.Fatalf("errors.Is matched the wrong code")
	}
	if got, want := e.Error(), "ledstrip.WriteN: short_buffer: count 5 > 3"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
