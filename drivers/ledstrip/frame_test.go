package ledstrip

import (
	"image/color"
	"testing"
)

func TestFrameDisplayer(t *testing.T) {
	r := newRecorder()
	f := NewFrame(newStrip(t, r, Config{Protocol: TM1804}), 4)
	if x, y := f.Size(); x != 4 || y != 1 {
		t.Fatalf("size %d x %d", x, y)
	}
	f.SetPixel(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	f.SetPixel(4, 0, color.RGBA{R: 1})
	f.SetPixel(0, 1, color.RGBA{R: 1})
	f.SetPixel(-1, 0, color.RGBA{R: 1})
	if err := f.Display(); err != nil {
		t.Fatal(err)
	}
	if len(r.pixels) != 4 || r.pixels[1] != [3]byte{10, 20, 30} || r.pixels[0] != [3]byte{} {
		t.Fatalf("pixels %v", r.pixels)
	}

	f.Fill(Color{R: 5})
	for i, c := range f.Pixels() {
		if c != (Color{R: 5}) {
			t.Fatalf("pixel %d: %v", i, c)
		}
	}
}

func TestFrameLengthClamped(t *testing.T) {
	s := newStrip(t, newRecorder(), Config{})
	for n, want := range map[int]int{-3: 0, 0: 0, 60: 60, MaxFramePixels: MaxFramePixels, 40000: MaxFramePixels} {
		f := NewFrame(s, n)
		if len(f.Pixels()) != want {
			t.Fatalf("NewFrame(%d): %d pixels, want %d", n, len(f.Pixels()), want)
		}
		if x, _ := f.Size(); int(x) != want {
			t.Fatalf("NewFrame(%d): size %d, want %d", n, x, want)
		}
	}
}
