package ledstrip

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"

	"ledstrip-go/x/mathx"
)

var _ drivers.Displayer = (*Frame)(nil)

// Frame is a pixel buffer over a Strip that satisfies drivers.Displayer,
// so the tinygo drawing packages can render onto a strip one pixel
// high.
type Frame struct {
	strip  *Strip
	pixels []Color
}

// MaxFramePixels is the longest frame drivers.Displayer can address.
const MaxFramePixels = math.MaxInt16

// NewFrame returns a frame of n pixels, all off. n is clamped to
// [0, MaxFramePixels].
func NewFrame(s *Strip, n int) *Frame {
	return &Frame{strip: s, pixels: make([]Color, mathx.Clamp(n, 0, MaxFramePixels))}
}

// Size implements drivers.Displayer.
func (f *Frame) Size() (x, y int16) { return int16(len(f.pixels)), 1 }

// SetPixel implements drivers.Displayer. Out of range pixels are
// ignored; alpha is ignored.
func (f *Frame) SetPixel(x, y int16, c color.RGBA) {
	if y != 0 || x < 0 || int(x) >= len(f.pixels) {
		return
	}
	f.pixels[x] = Color{R: c.R, G: c.G, B: c.B}
}

// Display implements drivers.Displayer by writing the whole buffer.
func (f *Frame) Display() error { return f.strip.Write(f.pixels) }

// Fill sets every pixel to c.
func (f *Frame) Fill(c Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Pixels exposes the buffer for direct edits.
func (f *Frame) Pixels() []Color { return f.pixels }
