//go:build !avr && !sam3x8e

package strconvx

import "strconv"

// Host builds delegate straight to strconv.

func Itoa(i int) string                     { return strconv.Itoa(i) }
func FormatUint(u uint64, base int) string { return strconv.FormatUint(u, base) }
