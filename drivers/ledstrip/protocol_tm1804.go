//go:build ledstrip_tm1804

package ledstrip

var activeProtocol = TM1804
