package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ledstrip-go/drivers/ledstrip/timing"
)

func TestGeneratedFilesUpToDate(t *testing.T) {
	for _, p := range timing.Profiles {
		want, err := render(p)
		if err != nil {
			t.Fatalf("%s: %v", p.Name(), err)
		}
		got, err := os.ReadFile(filepath.Join("..", "..", "drivers", "ledstrip", fileName(p)))
		if err != nil {
			t.Fatalf("%s: %v", p.Name(), err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("%s is stale; run go generate ./drivers/ledstrip", fileName(p))
		}
	}
}

func TestBuildTagsAreExclusive(t *testing.T) {
	seen := map[string]string{}
	for _, p := range timing.Profiles {
		tags := buildTags(p)
		if prev, dup := seen[tags]; dup {
			t.Fatalf("%s and %s share tags %q", prev, p.Name(), tags)
		}
		seen[tags] = p.Name()
	}
	p, _ := timing.ProfileFor(timing.ArchAVR, timing.Clock16MHz, timing.Fast)
	if got := buildTags(p); got != "avr && !ledstrip_8mhz && !ledstrip_20mhz && !ledstrip_tm1804" {
		t.Fatalf("tags %q", got)
	}
}

func TestAsmBody(t *testing.T) {
	p, _ := timing.ProfileFor(timing.ArchAVR, timing.Clock8MHz, timing.Fast)
	body := asmBody(p)
	if strings.Count(body, "0:\n") != 3 || strings.Count(body, "ldi {i}, 8") != 2 {
		t.Fatalf("expected three byte loops:\n%s", body)
	}
	if strings.Contains(body, "{value}") {
		t.Fatalf("value placeholder left in body")
	}
	if n := strings.Count(body, "\tnop\n"); n != 6 {
		t.Fatalf("nops: %d", n)
	}

	arm, _ := timing.ProfileFor(timing.ArchCortexM3, timing.Clock84MHz, timing.Fast)
	body = asmBody(arm)
	if strings.Count(body, "0:\n") != 1 || !strings.Contains(body, "lsls {pixel}, {pixel}, #1") {
		t.Fatalf("unexpected arm body:\n%s", body)
	}
	if n := strings.Count(body, "\tnop\n"); n != 27+36+24 {
		t.Fatalf("nops: %d", n)
	}
}

func TestRenderOperands(t *testing.T) {
	for _, p := range timing.Profiles {
		src, err := render(p)
		if err != nil {
			t.Fatalf("%s: %v", p.Name(), err)
		}
		text := string(src)
		if strings.Contains(text, "AsmFull") || !strings.Contains(text, "%[") {
			t.Fatalf("%s: expected C inline asm operands", p.Name())
		}
		for _, l := range asmLines(asmBody(p)) {
			if strings.ContainsAny(l, "{}") {
				t.Fatalf("%s: unrendered operand in %q", p.Name(), l)
			}
		}
		var want []string
		if p.Arch == timing.ArchAVR {
			want = []string{`[c0]"+r"(c0)`, `[c1]"+r"(c1)`, `[c2]"+r"(c2)`, `[i]"+d"(i)`, `[port]"m"(*port)`, `import "C"`}
		} else {
			want = []string{`[pixel]"+r"(pixel)`, `[n]"+r"(n)`, `[set]"m"(*set)`, `[clr]"m"(*clr)`, `import "C"`}
		}
		for _, w := range want {
			if !strings.Contains(text, w) {
				t.Fatalf("%s: missing %s", p.Name(), w)
			}
		}
	}
}

func TestAsmLines(t *testing.T) {
	got := asmLines("0:\n\tst {port}, {high}\n\tbrne 0b\n")
	want := []string{"0:", `\tst %[port], %[high]`, `\tbrne 0b`}
	if len(got) != len(want) {
		t.Fatalf("lines %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRunCheckOnly(t *testing.T) {
	dir := t.TempDir()
	if err := run(dir, true); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("check mode wrote %d files", len(entries))
	}
	if err := run(dir, false); err != nil {
		t.Fatal(err)
	}
	entries, _ = os.ReadDir(dir)
	if len(entries) != len(timing.Profiles) {
		t.Fatalf("wrote %d files", len(entries))
	}
}
