package input

import "github.com/gdamore/tcell/v2"

// Translator turns tcell events into intents, it holds no per-event state
type Translator struct {
	keys *KeyTable
}

// NewTranslator creates a translator over kt, nil selects the default table
func NewTranslator(kt *KeyTable) *Translator {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Translator{keys: kt}
}

// Translate maps ev to an Intent, ok is false for input with no meaning here
func (t *Translator) Translate(ev tcell.Event) (Intent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.keys.lookupKey(ev)
	case *tcell.EventMouse:
		return translateMouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}, true
	}
	return Intent{}, false
}

// translateMouse maps the wheel to scroll signals and a left press to confirm
func translateMouse(ev *tcell.EventMouse) (Intent, bool) {
	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		return SignalIntent(SignalScrollUp), true
	case btn&tcell.WheelDown != 0:
		return SignalIntent(SignalScrollDown), true
	case btn&tcell.Button1 != 0:
		return SignalIntent(SignalConfirm), true
	}
	return Intent{}, false
}
