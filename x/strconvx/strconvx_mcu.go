//go:build avr || sam3x8e

package strconvx

import "ledstrip-go/x/conv"

// Keeps strconv's tables out of the AVR image.

func Itoa(i int) string {
	var buf [20]byte
	return string(conv.Itoa(buf[:], int64(i)))
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// FormatUint matches strconv.FormatUint, including the panic on a base
// outside [2, 36].
func FormatUint(u uint64, base int) string {
	if base == 10 {
		var buf [20]byte
		return string(conv.Utoa(buf[:], u))
	}
	if base < 2 || base > len(digits) {
		panic("strconvx: illegal AppendInt/FormatInt base")
	}
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u >= b {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	i--
	buf[i] = digits[u]
	return string(buf[i:])
}
