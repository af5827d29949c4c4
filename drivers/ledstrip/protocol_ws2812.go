//go:build ledstrip_ws2812 && !ledstrip_tm1804

package ledstrip

var activeProtocol = WS2812
