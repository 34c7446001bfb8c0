package input

// Signal is the abstract input vocabulary the navigation core understands
type Signal uint8

const (
	SignalNone Signal = iota
	SignalScrollUp
	SignalScrollDown
	SignalConfirm
)

// Dir returns the tick direction carried by a scroll signal, 0 otherwise
func (s Signal) Dir() int {
	switch s {
	case SignalScrollUp:
		return 1
	case SignalScrollDown:
		return -1
	}
	return 0
}

func (s Signal) String() string {
	switch s {
	case SignalScrollUp:
		return "ScrollUp"
	case SignalScrollDown:
		return "ScrollDown"
	case SignalConfirm:
		return "Confirm"
	}
	return "None"
}

// SignalForDir maps +1/-1 to a scroll signal, any other value to SignalNone
func SignalForDir(dir int) Signal {
	switch dir {
	case 1:
		return SignalScrollUp
	case -1:
		return SignalScrollDown
	}
	return SignalNone
}

// IntentType discriminates what the game loop does with an Intent
type IntentType uint8

const (
	IntentNone   IntentType = iota
	IntentSignal            // Signal field is set, routed to navigation
	IntentQuit              // Ctrl+C, Ctrl+Q, q
	IntentResize            // terminal resized
)

// Intent is a translated input event
type Intent struct {
	Type   IntentType
	Signal Signal
}

// SignalIntent wraps s as an Intent
func SignalIntent(s Signal) Intent {
	return Intent{Type: IntentSignal, Signal: s}
}
