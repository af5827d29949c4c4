package mathx

import "golang.org/x/exp/constraints"

// CeilDiv returns ceil(a/b) for positive integers; b==0 yields 0.
func CeilDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// RoundDiv returns floor((a + b/2)/b), classic rounding for positives.
func RoundDiv[T constraints.Unsigned](a, b T) T {
	if b == 0 {
		return 0
	}
	return (a + b/2) / b
}

// Scale8 scales v by level/255 with rounding, as used for brightness.
func Scale8(v, level uint8) uint8 {
	return uint8(RoundDiv(uint16(v)*uint16(level), 255))
}
