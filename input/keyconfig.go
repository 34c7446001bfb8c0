package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be written as a bare character in config
var runeAliases = map[string]rune{
	"space": ' ',
}

// Named special keys accepted in config, lower case
var specialKeyNames = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"backspace": tcell.KeyBackspace2,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
}

// Bindings lists key names per intent, as read from config
type Bindings struct {
	Up      []string
	Down    []string
	Confirm []string
	Quit    []string
}

// BuildKeyTable turns named bindings into a KeyTable
// An empty list keeps the default keys for that intent, minus any claimed by explicit bindings
// Returns an error on unknown key names or a key bound twice
func BuildKeyTable(b Bindings) (*KeyTable, error) {
	def := DefaultKeyTable()
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent),
		Runes:       make(map[rune]Intent),
	}

	groups := []struct {
		names  []string
		intent Intent
	}{
		{b.Up, SignalIntent(SignalScrollUp)},
		{b.Down, SignalIntent(SignalScrollDown)},
		{b.Confirm, SignalIntent(SignalConfirm)},
		{b.Quit, Intent{Type: IntentQuit}},
	}

	// Explicit bindings first so defaults never shadow them
	for _, g := range groups {
		for _, name := range g.names {
			if err := bindName(kt, name, g.intent); err != nil {
				return nil, err
			}
		}
	}
	for _, g := range groups {
		if len(g.names) == 0 {
			copyDefaults(def, kt, g.intent)
		}
	}
	return kt, nil
}

func bindName(kt *KeyTable, name string, in Intent) error {
	lower := strings.ToLower(strings.TrimSpace(name))

	if key, ok := specialKeyNames[lower]; ok {
		if prev, dup := kt.SpecialKeys[key]; dup && prev != in {
			return fmt.Errorf("key %q bound to more than one action", name)
		}
		kt.SpecialKeys[key] = in
		return nil
	}

	r, ok := runeAliases[lower]
	if !ok {
		if utf8.RuneCountInString(name) != 1 {
			return fmt.Errorf("unknown key name %q", name)
		}
		r, _ = utf8.DecodeRuneInString(name)
	}
	if prev, dup := kt.Runes[r]; dup && prev != in {
		return fmt.Errorf("key %q bound to more than one action", name)
	}
	kt.Runes[r] = in
	return nil
}

func copyDefaults(def, kt *KeyTable, in Intent) {
	for k, v := range def.SpecialKeys {
		if _, taken := kt.SpecialKeys[k]; v == in && !taken {
			kt.SpecialKeys[k] = v
		}
	}
	for r, v := range def.Runes {
		if _, taken := kt.Runes[r]; v == in && !taken {
			kt.Runes[r] = v
		}
	}
}
