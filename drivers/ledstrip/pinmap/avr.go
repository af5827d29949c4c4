package pinmap

// AVR PORTx data-space addresses.
const (
	PortA uintptr = 0x22
	PortB uintptr = 0x25
	PortC uintptr = 0x28
	PortD uintptr = 0x2B
	PortE uintptr = 0x2E
	PortF uintptr = 0x31
	PortG uintptr = 0x34
	// Ports H to L sit above the I/O space and are only reachable
	// through data-space stores.
	PortH uintptr = 0x102
	PortJ uintptr = 0x105
	PortK uintptr = 0x108
	PortL uintptr = 0x10B
)

// ATmega328P is the Arduino Uno / Nano pin map (A0..A5 are 14..19,
// 20 is PC6, the reset pin).
var ATmega328P = [21]Binding{
	{PortD, 0}, {PortD, 1}, {PortD, 2}, {PortD, 3}, {PortD, 4}, {PortD, 5}, {PortD, 6}, {PortD, 7},
	{PortB, 0}, {PortB, 1}, {PortB, 2}, {PortB, 3}, {PortB, 4}, {PortB, 5},
	{PortC, 0}, {PortC, 1}, {PortC, 2}, {PortC, 3}, {PortC, 4}, {PortC, 5}, {PortC, 6},
}

// ATmega32U4 is the Arduino Leonardo / A-Star 32U4 pin map.
var ATmega32U4 = [30]Binding{
	{PortD, 2}, {PortD, 3}, {PortD, 1}, {PortD, 0}, {PortD, 4},
	{PortC, 6}, {PortD, 7}, {PortE, 6}, {PortB, 4}, {PortB, 5},
	{PortB, 6}, {PortB, 7}, {PortD, 6}, {PortC, 7}, {PortB, 3},
	{PortB, 1}, {PortB, 2}, {PortB, 0}, {PortF, 7}, {PortF, 6},
	{PortF, 5}, {PortF, 4}, {PortF, 1}, {PortF, 0}, {PortD, 4},
	{PortD, 7}, {PortB, 4}, {PortB, 5}, {PortB, 6}, {PortD, 6},
}

// ATmega2560 is the Arduino Mega 2560 pin map.
var ATmega2560 = [70]Binding{
	{PortE, 0}, {PortE, 1}, {PortE, 4}, {PortE, 5}, {PortG, 5},
	{PortE, 3}, {PortH, 3}, {PortH, 4}, {PortH, 5}, {PortH, 6},
	{PortB, 4}, {PortB, 5}, {PortB, 6}, {PortB, 7}, {PortJ, 1},
	{PortJ, 0}, {PortH, 1}, {PortH, 0}, {PortD, 3}, {PortD, 2},
	{PortD, 1}, {PortD, 0}, {PortA, 0}, {PortA, 1}, {PortA, 2},
	{PortA, 3}, {PortA, 4}, {PortA, 5}, {PortA, 6}, {PortA, 7},
	{PortC, 7}, {PortC, 6}, {PortC, 5}, {PortC, 4}, {PortC, 3},
	{PortC, 2}, {PortC, 1}, {PortC, 0}, {PortD, 7}, {PortG, 2},
	{PortG, 1}, {PortG, 0}, {PortL, 7}, {PortL, 6}, {PortL, 5},
	{PortL, 4}, {PortL, 3}, {PortL, 2}, {PortL, 1}, {PortL, 0},
	{PortB, 3}, {PortB, 2}, {PortB, 1}, {PortB, 0}, {PortF, 0},
	{PortF, 1}, {PortF, 2}, {PortF, 3}, {PortF, 4}, {PortF, 5},
	{PortF, 6}, {PortF, 7}, {PortK, 0}, {PortK, 1}, {PortK, 2},
	{PortK, 3}, {PortK, 4}, {PortK, 5}, {PortK, 6}, {PortK, 7},
}
