package nav

import "fmt"

// Panel is a browsable screen region
type Panel uint8

const (
	PanelMap Panel = iota
	PanelStats
	PanelLog
)

// panelCount is the modulus for panel cycling
const panelCount = 3

func (p Panel) String() string {
	switch p {
	case PanelMap:
		return "Map"
	case PanelStats:
		return "Stats"
	case PanelLog:
		return "Log"
	}
	return fmt.Sprintf("Panel(%d)", uint8(p))
}

// ModeKind names the active UI mode
type ModeKind uint8

const (
	ModeBrowsing ModeKind = iota
	ModeMenuOpen
	ModeLogScrolling
)

func (k ModeKind) String() string {
	switch k {
	case ModeBrowsing:
		return "Browsing"
	case ModeMenuOpen:
		return "MenuOpen"
	case ModeLogScrolling:
		return "LogScrolling"
	}
	return fmt.Sprintf("ModeKind(%d)", uint8(k))
}

// Mode is the single active UI mode
// Panel is meaningful only while Browsing, Selected only while MenuOpen
type Mode struct {
	Kind     ModeKind
	Panel    Panel
	Selected int
}

// Browsing returns the browsing mode focused on p
func Browsing(p Panel) Mode { return Mode{Kind: ModeBrowsing, Panel: p} }

// MenuOpen returns the menu mode with selected highlighted
func MenuOpen(selected int) Mode { return Mode{Kind: ModeMenuOpen, Selected: selected} }

// LogScrolling returns the log scroll mode
func LogScrolling() Mode { return Mode{Kind: ModeLogScrolling} }

func (m Mode) String() string {
	switch m.Kind {
	case ModeBrowsing:
		return fmt.Sprintf("Browsing(%v)", m.Panel)
	case ModeMenuOpen:
		return fmt.Sprintf("MenuOpen(%d)", m.Selected)
	}
	return m.Kind.String()
}
