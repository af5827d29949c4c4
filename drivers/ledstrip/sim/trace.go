package sim

// Pulse is one high phase and the low phase that follows it, in cycles
// relative to the frame start.
type Pulse struct {
	Rise uint64
	High uint64
	// Low runs to the next rise, or to the end of the reset hold for
	// the last pulse.
	Low uint64
}

// Period is rise to next rise.
func (p Pulse) Period() uint64 { return p.High + p.Low }

// Pulses pairs the frame's edges into pulses.
func (f Frame) Pulses() []Pulse {
	var out []Pulse
	for i := 0; i+1 < len(f.Edges); i++ {
		r, fl := f.Edges[i], f.Edges[i+1]
		if !r.High || fl.High {
			continue
		}
		end := f.Reset.End
		if i+2 < len(f.Edges) {
			end = f.Edges[i+2].At
		}
		if end < fl.At {
			end = fl.At
		}
		out = append(out, Pulse{Rise: r.At - f.Start, High: fl.At - r.At, Low: end - fl.At})
		i++
	}
	return out
}

// Bits decodes every pulse as a 0 or 1 bit.
func (f Frame) Bits() []bool {
	ps := f.Pulses()
	out := make([]bool, len(ps))
	for i, p := range ps {
		out[i] = p.High > f.threshold
	}
	return out
}

// Bytes packs the decoded bits MSB first. A trailing partial byte is
// dropped.
func (f Frame) Bytes() []byte {
	bits := f.Bits()
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for _, one := range bits[i*8 : i*8+8] {
			b <<= 1
			if one {
				b |= 1
			}
		}
		out[i] = b
	}
	return out
}

// Relative returns the edges shifted to the frame start, which makes
// two frames comparable.
func (f Frame) Relative() []Edge {
	out := make([]Edge, len(f.Edges))
	for i, e := range f.Edges {
		out[i] = Edge{At: e.At - f.Start, High: e.High}
	}
	return out
}
