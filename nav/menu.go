package nav

import "github.com/lixenwraith/mud-r1/world"

// Option is one entry of the movement menu
type Option struct {
	Direction world.Direction
}

// IsCancel reports whether choosing the option closes the menu without moving
func (o Option) IsCancel() bool { return o.Direction == world.Cancel }

// Label is the text shown in the menu grid
func (o Option) Label() string { return o.Direction.String() }

// Menu is the ordered list of movement options, clockwise from North
type Menu struct {
	options []Option
}

// NewMenu builds the eight headings, followed by a cancel entry when withCancel is set
func NewMenu(withCancel bool) Menu {
	n := world.CompassCount
	if withCancel {
		n++
	}
	opts := make([]Option, 0, n)
	for d := world.North; d < world.Cancel; d++ {
		opts = append(opts, Option{Direction: d})
	}
	if withCancel {
		opts = append(opts, Option{Direction: world.Cancel})
	}
	return Menu{options: opts}
}

// Len returns the number of options, the modulus for selection cycling
func (m Menu) Len() int { return len(m.options) }

// Option returns entry i, panicking on an out-of-range index
func (m Menu) Option(i int) Option {
	if i < 0 || i >= len(m.options) {
		panic(invariantf("menu index %d outside [0,%d)", i, len(m.options)))
	}
	return m.options[i]
}

// Options returns a copy of all entries in order
func (m Menu) Options() []Option {
	out := make([]Option, len(m.options))
	copy(out, m.options)
	return out
}
