package errcode

// Code is a stable error identifier shared by the driver, the
// simulator and the host tools.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"

	// Build and board selection.
	UnsupportedClock Code = "unsupported_clock"
	UnknownFamily    Code = "unknown_family"
	UnknownPin       Code = "unknown_pin"
	ClockMismatch    Code = "clock_mismatch"

	// Protocol and colour handling.
	UnknownProtocol  Code = "unknown_protocol"
	ProtocolMismatch Code = "protocol_mismatch"
	InvalidOrder     Code = "invalid_order"
	ShortBuffer      Code = "short_buffer"

	// Timing analysis.
	InvalidProfile Code = "invalid_profile"
	Anisochronous  Code = "anisochronous"
	OutOfTolerance Code = "out_of_tolerance"

	// Host tooling.
	StreamUnsupported Code = "stream_unsupported"
	UnknownScenario   Code = "unknown_scenario"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Is lets errors.Is match an *E against its bare Code.
func (e *E) Is(target error) bool {
	c, ok := target.(Code)
	return ok && c == e.C
}

// Wrap builds an *E for op/code with an optional message and cause.
func Wrap(c Code, op, msg string, err error) *E {
	return &E{C: c, Op: op, Msg: msg, Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok && u.Unwrap() != nil {
		return Of(u.Unwrap())
	}
	return Error
}
