package sim

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"ledstrip-go/x/timex"
)

type vcdChange struct {
	at    uint64
	id    byte
	level bool
}

// WriteVCD dumps every recorded frame as a value change dump with a
// picosecond timescale. Signal d is the data line, w the
// interrupt-friendly windows.
func (m *Machine) WriteVCD(w io.Writer) error {
	var ch []vcdChange
	for _, f := range m.frames {
		for _, e := range f.Edges {
			ch = append(ch, vcdChange{at: e.At, id: 'd', level: e.High})
		}
		for _, s := range f.Windows {
			ch = append(ch, vcdChange{at: s.Start, id: 'w', level: true}, vcdChange{at: s.End, id: 'w'})
		}
	}
	sort.SliceStable(ch, func(i, j int) bool { return ch[i].at < ch[j].at })

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "$comment %s $end\n", m.prof.Name())
	fmt.Fprintf(bw, "$timescale 1ps $end\n")
	fmt.Fprintf(bw, "$scope module ledstrip $end\n")
	fmt.Fprintf(bw, "$var wire 1 d data $end\n")
	fmt.Fprintf(bw, "$var wire 1 w irq_window $end\n")
	fmt.Fprintf(bw, "$upscope $end\n$enddefinitions $end\n")
	fmt.Fprintf(bw, "#0\n$dumpvars\n0d\n0w\n$end\n")

	last := uint64(0)
	for _, c := range ch {
		if c.at != last {
			fmt.Fprintf(bw, "#%d\n", timex.CyclesToPicos(c.at, m.prof.Clock))
			last = c.at
		}
		v := byte('0')
		if c.level {
			v = '1'
		}
		fmt.Fprintf(bw, "%c%c\n", v, c.id)
	}
	if m.now != last {
		fmt.Fprintf(bw, "#%d\n", timex.CyclesToPicos(m.now, m.prof.Clock))
	}
	return bw.Flush()
}
