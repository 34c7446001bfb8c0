package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keyboard input to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, including space
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
// Up/k scroll up, Down/j scroll down, Enter/Space confirm
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:    SignalIntent(SignalScrollUp),
			tcell.KeyDown:  SignalIntent(SignalScrollDown),
			tcell.KeyEnter: SignalIntent(SignalConfirm),
			tcell.KeyCtrlC: {Type: IntentQuit},
			tcell.KeyCtrlQ: {Type: IntentQuit},
		},
		Runes: map[rune]Intent{
			'k': SignalIntent(SignalScrollUp),
			'j': SignalIntent(SignalScrollDown),
			' ': SignalIntent(SignalConfirm),
			'q': {Type: IntentQuit},
		},
	}
}

// lookupKey resolves a key event against the table
func (kt *KeyTable) lookupKey(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		in, ok := kt.Runes[ev.Rune()]
		return in, ok
	}
	in, ok := kt.SpecialKeys[ev.Key()]
	return in, ok
}
