package config

// Built-in scenarios, one per supported board.
var embeddedScenarios = map[string][]byte{
	"uno": []byte(`
family: atmega328p
pin: 6
clock_hz: 16000000
protocol: ws2812b
colors: ["#ff0000"]
`),
	"uno-8mhz": []byte(`
family: atmega328p
pin: 6
clock_hz: 8000000
protocol: ws2812b
colors: ["#ff0000", "#00ff00", "#0000ff"]
`),
	"leonardo": []byte(`
family: atmega32u4
pin: 12
clock_hz: 16000000
protocol: ws2812
interrupt_friendly: true
colors: [[255, 0, 0], [0, 255, 0]]
`),
	"mega": []byte(`
family: atmega2560
pin: 42
clock_hz: 16000000
protocol: ws2812b
colors: ["#102030", "#405060"]
`),
	"mega-tm1804": []byte(`
family: atmega2560
pin: 6
clock_hz: 20000000
protocol: tm1804
colors: ["#ff8000"]
`),
	"due": []byte(`
family: sam3x8e
pin: 6
clock_hz: 84000000
protocol: ws2812b
interrupt_friendly: true
colors: ["#ffffff", "#000000"]
`),
}

// Names lists the built-in scenarios.
func Names() []string {
	out := make([]string, 0, len(embeddedScenarios))
	for k := range embeddedScenarios {
		out = append(out, k)
	}
	return out
}
