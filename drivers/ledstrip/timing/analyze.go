package timing

import "ledstrip-go/errcode"

// Cycles is the result of analysing a Program.
type Cycles struct {
	Period uint16 // rise to rise, identical for 0 and 1 bits
	High0  uint16
	High1  uint16
	// Boundary is the extra low time, in cycles, that a pixel boundary
	// adds to the last bit of a pixel (without interrupt windows).
	Boundary int32
}

// Low0 is the low phase of a 0 bit.
func (c Cycles) Low0() uint16 { return c.Period - c.High0 }

// Low1 is the low phase of a 1 bit.
func (c Cycles) Low1() uint16 { return c.Period - c.High1 }

// Analyze derives high times and the bit period from a Program by
// walking both bit values. It fails with InvalidProfile when the program
// is malformed and Anisochronous when 0 and 1 bits, or the bits at a
// loop boundary, take different times.
func Analyze(p Program) (Cycles, error) {
	const op = "timing.Analyze"
	if err := checkShape(p); err != nil {
		return Cycles{}, err
	}

	var high [2]uint16
	var period [2]uint16
	for v := 0; v < 2; v++ {
		var stores int
		var rise, fall uint16
		bad := false
		period[v] = p.Walk(v == 1, false, func(at uint16, h bool) {
			switch {
			case stores == 0 && h:
				rise = at
			case stores == 1 && !h:
				fall = at
			default:
				bad = true
			}
			stores++
		})
		if bad || stores != 2 || fall <= rise {
			return Cycles{}, errcode.Wrap(errcode.InvalidProfile, op, "bit must rise once then fall once", nil)
		}
		high[v] = fall - rise
	}

	if period[0] != period[1] {
		return Cycles{}, errcode.Wrap(errcode.Anisochronous, op, "0 and 1 bits differ in length", nil)
	}
	if high[1] <= high[0] {
		return Cycles{}, errcode.Wrap(errcode.InvalidProfile, op, "1 bit must stay high longer than 0 bit", nil)
	}
	last := p.Walk(false, true, nil)
	if p.BitsPerLoop < 24 && last+uint16(p.LoopGap) != period[0] {
		return Cycles{}, errcode.Wrap(errcode.Anisochronous, op, "loop boundary shifts the next bit", nil)
	}

	return Cycles{
		Period:   period[0],
		High0:    high[0],
		High1:    high[1],
		Boundary: int32(last) - int32(period[0]) + int32(p.PixelOverhead),
	}, nil
}

func checkShape(p Program) error {
	const op = "timing.Analyze"
	if p.BitsPerLoop == 0 || 24%p.BitsPerLoop != 0 {
		return errcode.Wrap(errcode.InvalidProfile, op, "bits per loop must divide 24", nil)
	}
	var seen [OpLoop + 1]int
	shifted := false
	for i, s := range p.Bit {
		if s.Op < OpHigh || s.Op > OpLoop {
			return errcode.Wrap(errcode.InvalidProfile, op, "unknown op", nil)
		}
		seen[s.Op]++
		switch s.Op {
		case OpShift:
			shifted = true
		case OpLowIfZero, OpLowIfOne:
			if !shifted {
				return errcode.Wrap(errcode.InvalidProfile, op, "conditional store before shift", nil)
			}
		case OpLoop:
			if i != len(p.Bit)-1 {
				return errcode.Wrap(errcode.InvalidProfile, op, "loop must be the last step", nil)
			}
		}
		if s.Cycles == 0 {
			return errcode.Wrap(errcode.InvalidProfile, op, "step without cycles", nil)
		}
	}
	for _, o := range []Op{OpHigh, OpShift, OpLowIfZero, OpLowIfOne, OpLoop} {
		if seen[o] != 1 {
			return errcode.Wrap(errcode.InvalidProfile, op, "required op missing or repeated", nil)
		}
	}
	return nil
}
