package ledstrip

import (
	"strings"

	"ledstrip-go/errcode"
)

// Color is one pixel, 8 bits per channel.
type Color struct {
	R, G, B uint8
}

// Order is the sequence in which a chip expects the channels.
type Order uint8

const (
	OrderDefault Order = iota // use the protocol's order
	OrderRGB
	OrderRBG
	OrderGRB
	OrderGBR
	OrderBRG
	OrderBGR
)

// orderIndex[o][k] is the Color channel (0=R, 1=G, 2=B) sent k-th.
var orderIndex = [...][3]uint8{
	OrderDefault: {0, 1, 2},
	OrderRGB:     {0, 1, 2},
	OrderRBG:     {0, 2, 1},
	OrderGRB:     {1, 0, 2},
	OrderGBR:     {1, 2, 0},
	OrderBRG:     {2, 0, 1},
	OrderBGR:     {2, 1, 0},
}

var orderNames = [...]string{"", "RGB", "RBG", "GRB", "GBR", "BRG", "BGR"}

// Valid reports whether o is a concrete channel order.
func (o Order) Valid() bool { return o > OrderDefault && o <= OrderBGR }

func (o Order) String() string {
	if int(o) < len(orderNames) {
		if o == OrderDefault {
			return "default"
		}
		return orderNames[o]
	}
	return "invalid"
}

// ParseOrder parses "GRB", "rgb" and similar.
func ParseOrder(s string) (Order, error) {
	u := strings.ToUpper(strings.TrimSpace(s))
	for i := OrderRGB; i <= OrderBGR; i++ {
		if orderNames[i] == u {
			return i, nil
		}
	}
	return OrderDefault, errcode.Wrap(errcode.InvalidOrder, "ledstrip.ParseOrder", s, nil)
}

// Arrange returns c's channels in wire order.
func (o Order) Arrange(c Color) [3]byte {
	if !o.Valid() {
		o = OrderRGB
	}
	ch := [3]byte{c.R, c.G, c.B}
	idx := orderIndex[o]
	return [3]byte{ch[idx[0]], ch[idx[1]], ch[idx[2]]}
}
