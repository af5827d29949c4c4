package main

import (
	"bytes"
	"go/format"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"ledstrip-go/drivers/ledstrip/timing"
)

// fileName is the generated file of a profile, e.g.
// zz_encode_avr_fast_16mhz.go.
func fileName(p timing.Profile) string {
	arch := "avr"
	if p.Arch == timing.ArchCortexM3 {
		arch = "sam3x"
	}
	return "zz_encode_" + arch + "_" + p.Timing.String() + "_" + strconv.FormatUint(uint64(p.MHz()), 10) + "mhz.go"
}

// buildTags selects exactly one profile per arch/clock/protocol choice.
func buildTags(p timing.Profile) string {
	var tags []string
	switch p.Arch {
	case timing.ArchAVR:
		tags = append(tags, "avr")
		switch p.Clock {
		case timing.Clock8MHz:
			tags = append(tags, "ledstrip_8mhz", "!ledstrip_20mhz")
		case timing.Clock20MHz:
			tags = append(tags, "ledstrip_20mhz")
		default:
			tags = append(tags, "!ledstrip_8mhz", "!ledstrip_20mhz")
		}
	case timing.ArchCortexM3:
		tags = append(tags, "sam3x8e")
	}
	if p.Timing == timing.Slow {
		tags = append(tags, "ledstrip_tm1804")
	} else {
		tags = append(tags, "!ledstrip_tm1804")
	}
	return strings.Join(tags, " && ")
}

// asmBody renders the instruction text with {x} placeholders. AVR runs
// one 8-bit loop per channel register; Cortex-M3 one 24-bit loop over
// the packed pixel.
func asmBody(p timing.Profile) string {
	var b strings.Builder
	loop := func(value string) {
		b.WriteString("0:\n")
		for _, s := range p.Program.Bit {
			if s.Op == timing.OpDelay {
				for i := uint8(0); i < s.Cycles; i++ {
					b.WriteString("\t" + s.Asm + "\n")
				}
				continue
			}
			b.WriteString("\t" + strings.ReplaceAll(s.Asm, "{value}", value) + "\n")
		}
	}
	if p.Arch == timing.ArchCortexM3 {
		loop("{pixel}")
		return b.String()
	}
	for i, reg := range []string{"{c0}", "{c1}", "{c2}"} {
		if i > 0 {
			b.WriteString("\tldi {i}, 8\n")
		}
		loop(reg)
	}
	return b.String()
}

var operand = regexp.MustCompile(`\{(\w+)\}`)

// asmLines turns the body into C string literal contents, one per
// instruction or label, with operands in %[name] form.
func asmLines(body string) []string {
	body = operand.ReplaceAllString(strings.TrimSuffix(body, "\n"), "%[$1]")
	lines := strings.Split(body, "\n")
	for i, l := range lines {
		lines[i] = strings.ReplaceAll(l, "\t", `\t`)
	}
	return lines
}

type view struct {
	Name              string
	Tags              string
	High0, High1, Per uint16
	Lines             []string
}

var avrTemplate = template.Must(template.New("avr").Parse(`// Code generated by ledgen. DO NOT EDIT.

//go:build {{.Tags}}

package ledstrip

import (
	"runtime/volatile"
	"unsafe"
)

/*
#include <stdint.h>

// {{.Name}}: T0H {{.High0}}, T1H {{.High1}}, period {{.Per}} cycles.
__attribute__((always_inline))
void ledstrip_encode_pixel(uint8_t *port, uint8_t high, uint8_t low, uint8_t c0, uint8_t c1, uint8_t c2) {
	uint8_t i = 8;
	__asm__ __volatile__(
{{- range .Lines}}
		"{{.}}\n"
{{- end}}
	: [c0]"+r"(c0),
	  [c1]"+r"(c1),
	  [c2]"+r"(c2),
	  [i]"+d"(i)
	: [high]"r"(high),
	  [low]"r"(low),
	  [port]"m"(*port));
}
*/
import "C"

// encodePixel sends c0, c1 and c2 MSB first by storing high or low to
// port.
func encodePixel(port *volatile.Register8, high, low, c0, c1, c2 byte) {
	C.ledstrip_encode_pixel((*C.uint8_t)(unsafe.Pointer(port)), C.uint8_t(high), C.uint8_t(low), C.uint8_t(c0), C.uint8_t(c1), C.uint8_t(c2))
}
`))

var cm3Template = template.Must(template.New("cm3").Parse(`// Code generated by ledgen. DO NOT EDIT.

//go:build {{.Tags}}

package ledstrip

import (
	"runtime/volatile"
	"unsafe"
)

/*
#include <stdint.h>

// {{.Name}}: T0H {{.High0}}, T1H {{.High1}}, period {{.Per}} cycles.
__attribute__((always_inline))
void ledstrip_encode_pixel(uint32_t *set, uint32_t *clr, uint32_t mask, uint32_t pixel) {
	uint32_t n = 24;
	__asm__ __volatile__(
{{- range .Lines}}
		"{{.}}\n"
{{- end}}
	: [pixel]"+r"(pixel),
	  [n]"+r"(n)
	: [mask]"r"(mask),
	  [set]"m"(*set),
	  [clr]"m"(*clr));
}
*/
import "C"

// encodePixel sends the top 24 bits of pixel MSB first by storing mask
// to set or clr.
func encodePixel(set, clr *volatile.Register32, mask, pixel uint32) {
	C.ledstrip_encode_pixel((*C.uint32_t)(unsafe.Pointer(set)), (*C.uint32_t)(unsafe.Pointer(clr)), C.uint32_t(mask), C.uint32_t(pixel))
}
`))

// render returns the gofmt'ed encoder source of p.
func render(p timing.Profile) ([]byte, error) {
	c, err := timing.Analyze(p.Program)
	if err != nil {
		return nil, err
	}
	v := view{
		Name:  p.Name(),
		Tags:  buildTags(p),
		High0: c.High0,
		High1: c.High1,
		Per:   c.Period,
		Lines: asmLines(asmBody(p)),
	}
	t := avrTemplate
	if p.Arch == timing.ArchCortexM3 {
		t = cm3Template
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, v); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
