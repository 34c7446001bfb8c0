package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Poller is the blocking event source of a terminal screen
type Poller interface {
	PollEvent() tcell.Event
}

// Source is the single publisher of intents
// Raw terminal events, programmatic ticks and confirms all leave through one channel
// so every physical input is delivered exactly once and in arrival order
type Source struct {
	translator *Translator
	out        chan Intent
}

// NewSource creates a source with a buffered channel of the given size
func NewSource(translator *Translator, buffer int) *Source {
	if translator == nil {
		translator = NewTranslator(nil)
	}
	return &Source{
		translator: translator,
		out:        make(chan Intent, buffer),
	}
}

// Events returns the channel subscribers read from
func (s *Source) Events() <-chan Intent {
	return s.out
}

// Tick fires a scroll signal, dir must be +1 (up) or -1 (down), anything else is dropped
func (s *Source) Tick(ctx context.Context, dir int) error {
	sig := SignalForDir(dir)
	if sig == SignalNone {
		return nil
	}
	return s.publish(ctx, SignalIntent(sig))
}

// TickDelta fires a scroll signal from the sign of a native wheel delta, zero is dropped
func (s *Source) TickDelta(ctx context.Context, delta float64) error {
	switch {
	case delta > 0:
		return s.Tick(ctx, 1)
	case delta < 0:
		return s.Tick(ctx, -1)
	}
	return nil
}

// Confirm fires the confirm signal
func (s *Source) Confirm(ctx context.Context) error {
	return s.publish(ctx, SignalIntent(SignalConfirm))
}

// Feed translates one terminal event and publishes it, unrecognized events are dropped
func (s *Source) Feed(ctx context.Context, ev tcell.Event) error {
	in, ok := s.translator.Translate(ev)
	if !ok {
		return nil
	}
	return s.publish(ctx, in)
}

// Pump polls p until it returns nil (screen finalized) or ctx is done
func (s *Source) Pump(ctx context.Context, p Poller) error {
	for {
		ev := p.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		if err := s.Feed(ctx, ev); err != nil {
			return nil
		}
	}
}

func (s *Source) publish(ctx context.Context, in Intent) error {
	select {
	case s.out <- in:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
