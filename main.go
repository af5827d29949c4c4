package main

import (
	"time"

	"ledstrip-go/drivers/ledstrip"
	"ledstrip-go/x/mathx"
)

const (
	ledCount   = 60
	brightness = 64
	speed      = 3
)

var colors [ledCount]ledstrip.Color

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	strip, err := ledstrip.Open(ledstrip.Pins[6], ledstrip.Config{})
	if err != nil {
		for {
			println("ledstrip:", err.Error())
			time.Sleep(time.Second)
		}
	}

	var hue uint8
	for {
		for i := range colors {
			colors[i] = wheel(hue + uint8(i*256/ledCount))
		}
		if err := strip.Write(colors[:]); err != nil {
			println("write:", err.Error())
		}
		hue += speed
		time.Sleep(20 * time.Millisecond)
	}
}

// wheel maps a hue to a fully saturated colour at the demo brightness.
func wheel(pos uint8) ledstrip.Color {
	var r, g, b uint8
	switch {
	case pos < 85:
		r, g = 255-pos*3, pos*3
	case pos < 170:
		pos -= 85
		g, b = 255-pos*3, pos*3
	default:
		pos -= 170
		b, r = 255-pos*3, pos*3
	}
	return ledstrip.Color{
		R: mathx.Scale8(r, brightness),
		G: mathx.Scale8(g, brightness),
		B: mathx.Scale8(b, brightness),
	}
}
