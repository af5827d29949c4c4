package pinmap

// SAM3X8E PIO controller bases.
const (
	PIOA uintptr = 0x400E0E00
	PIOB uintptr = 0x400E1000
	PIOC uintptr = 0x400E1200
	PIOD uintptr = 0x400E1400
)

// PIO register offsets from the controller base.
const (
	PIOEnable      uintptr = 0x00 // PIO_PER
	PIOOutputEn    uintptr = 0x10 // PIO_OER
	PIOSetOutput   uintptr = 0x30 // PIO_SODR
	PIOClearOutput uintptr = 0x34 // PIO_CODR
)

// SAM3X8E is the Arduino Due pin map, D0..D53 then A0..A11 as 54..65.
var SAM3X8E = [66]Binding{
	{PIOA, 8}, {PIOA, 9}, {PIOB, 25}, {PIOC, 28}, {PIOC, 26},
	{PIOC, 25}, {PIOC, 24}, {PIOC, 23}, {PIOC, 22}, {PIOC, 21},
	{PIOC, 29}, {PIOD, 7}, {PIOD, 8}, {PIOB, 27}, {PIOD, 4},
	{PIOD, 5}, {PIOA, 13}, {PIOA, 12}, {PIOA, 11}, {PIOA, 10},
	{PIOB, 12}, {PIOB, 13}, {PIOB, 26}, {PIOA, 14}, {PIOA, 15},
	{PIOD, 0}, {PIOD, 1}, {PIOD, 2}, {PIOD, 3}, {PIOD, 6},
	{PIOD, 9}, {PIOA, 7}, {PIOD, 10}, {PIOC, 1}, {PIOC, 2},
	{PIOC, 3}, {PIOC, 4}, {PIOC, 5}, {PIOC, 6}, {PIOC, 7},
	{PIOC, 8}, {PIOC, 9}, {PIOA, 19}, {PIOA, 20}, {PIOC, 19},
	{PIOC, 18}, {PIOC, 17}, {PIOC, 16}, {PIOC, 15}, {PIOC, 14},
	{PIOC, 13}, {PIOC, 12}, {PIOB, 21}, {PIOB, 14},
	// A0..A11
	{PIOA, 16}, {PIOA, 24}, {PIOA, 23}, {PIOA, 22}, {PIOA, 6}, {PIOA, 4},
	{PIOA, 3}, {PIOA, 2}, {PIOB, 17}, {PIOB, 18}, {PIOB, 19}, {PIOB, 20},
}
