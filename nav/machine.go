package nav

import (
	"fmt"

	"github.com/lixenwraith/mud-r1/input"
	"github.com/lixenwraith/mud-r1/world"
)

// Mover applies a confirmed heading to the player, false when the move is rejected
type Mover interface {
	Move(dir world.Direction) bool
}

// Scroller receives ticks while the log is being scrolled
type Scroller interface {
	Tick(dir int)
	Stop()
}

// Outcome reports what a signal did, for logging and audio feedback
type Outcome uint8

const (
	OutcomeIgnored       Outcome = iota // not a recognized signal
	OutcomeNoop                         // recognized, nothing to do (confirm on Stats)
	OutcomePanelCycled                  // panel focus moved
	OutcomeMenuOpened                   // movement menu opened on North
	OutcomeMenuMoved                    // menu highlight moved
	OutcomeMoved                        // move applied, menu closed
	OutcomeMoveRejected                 // move out of bounds, menu closed
	OutcomeMenuCancelled                // cancel entry chosen, menu closed
	OutcomeScrollEntered                // log scroll mode entered
	OutcomeScrollExited                 // log scroll mode left
	OutcomeScrolled                     // tick forwarded to the scroller
)

var outcomeNames = [...]string{
	OutcomeIgnored:       "ignored",
	OutcomeNoop:          "noop",
	OutcomePanelCycled:   "panel_cycled",
	OutcomeMenuOpened:    "menu_opened",
	OutcomeMenuMoved:     "menu_moved",
	OutcomeMoved:         "moved",
	OutcomeMoveRejected:  "move_rejected",
	OutcomeMenuCancelled: "menu_cancelled",
	OutcomeScrollEntered: "scroll_entered",
	OutcomeScrollExited:  "scroll_exited",
	OutcomeScrolled:      "scrolled",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Machine routes input signals according to the active mode
// It is the only writer of the mode; all calls come from the game loop goroutine
type Machine struct {
	mode     Mode
	menu     Menu
	mover    Mover
	scroller Scroller
}

// NewMachine starts in Browsing(Map)
func NewMachine(menu Menu, mover Mover, scroller Scroller) *Machine {
	if menu.Len() == 0 {
		panic(invariantf("movement menu has no options"))
	}
	return &Machine{
		mode:     Browsing(PanelMap),
		menu:     menu,
		mover:    mover,
		scroller: scroller,
	}
}

// Mode returns the active mode
func (m *Machine) Mode() Mode { return m.mode }

// Menu returns the movement menu
func (m *Machine) Menu() Menu { return m.menu }

// Handle applies one signal and reports the outcome
func (m *Machine) Handle(sig input.Signal) Outcome {
	m.assertMode()

	switch sig {
	case input.SignalScrollUp, input.SignalScrollDown:
		return m.tick(sig.Dir())
	case input.SignalConfirm:
		return m.confirm()
	}
	return OutcomeIgnored
}

func (m *Machine) tick(d int) Outcome {
	switch m.mode.Kind {
	case ModeBrowsing:
		m.mode.Panel = Panel(wrap(int(m.mode.Panel)+d, panelCount))
		return OutcomePanelCycled

	case ModeMenuOpen:
		m.mode.Selected = wrap(m.mode.Selected+d, m.menu.Len())
		return OutcomeMenuMoved

	case ModeLogScrolling:
		m.scroller.Tick(d)
		return OutcomeScrolled
	}
	panic(invariantf("unknown mode kind %d", m.mode.Kind))
}

func (m *Machine) confirm() Outcome {
	switch m.mode.Kind {
	case ModeBrowsing:
		switch m.mode.Panel {
		case PanelMap:
			m.transition(MenuOpen(0))
			return OutcomeMenuOpened
		case PanelLog:
			m.transition(LogScrolling())
			return OutcomeScrollEntered
		}
		return OutcomeNoop

	case ModeMenuOpen:
		opt := m.menu.Option(m.mode.Selected)
		if opt.IsCancel() {
			m.transition(Browsing(PanelMap))
			return OutcomeMenuCancelled
		}
		moved := m.mover.Move(opt.Direction)
		m.transition(Browsing(PanelMap))
		if !moved {
			return OutcomeMoveRejected
		}
		return OutcomeMoved

	case ModeLogScrolling:
		m.transition(Browsing(PanelLog))
		return OutcomeScrollExited
	}
	panic(invariantf("unknown mode kind %d", m.mode.Kind))
}

// transition is the only place the mode kind changes
// Leaving LogScrolling always stops the scroller so no frame outlives the mode
func (m *Machine) transition(next Mode) {
	if m.mode.Kind == ModeLogScrolling && next.Kind != ModeLogScrolling {
		m.scroller.Stop()
	}
	m.mode = next
	m.assertMode()
}

func (m *Machine) assertMode() {
	switch m.mode.Kind {
	case ModeBrowsing:
		if m.mode.Panel >= panelCount {
			panic(invariantf("panel %d outside [0,%d)", m.mode.Panel, panelCount))
		}
	case ModeMenuOpen:
		if m.mode.Selected < 0 || m.mode.Selected >= m.menu.Len() {
			panic(invariantf("menu selection %d outside [0,%d)", m.mode.Selected, m.menu.Len()))
		}
	case ModeLogScrolling:
	default:
		panic(invariantf("unknown mode kind %d", m.mode.Kind))
	}
}

// wrap returns v modulo n in [0, n) for negative v too
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

func invariantf(format string, args ...any) string {
	return "nav invariant violated: " + fmt.Sprintf(format, args...)
}
