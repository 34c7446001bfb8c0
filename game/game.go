package game

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/mud-r1/audio"
	"github.com/lixenwraith/mud-r1/config"
	"github.com/lixenwraith/mud-r1/constants"
	"github.com/lixenwraith/mud-r1/core"
	"github.com/lixenwraith/mud-r1/engine"
	"github.com/lixenwraith/mud-r1/input"
	"github.com/lixenwraith/mud-r1/momentum"
	"github.com/lixenwraith/mud-r1/nav"
	"github.com/lixenwraith/mud-r1/render"
	"github.com/lixenwraith/mud-r1/session"
	"github.com/lixenwraith/mud-r1/world"
)

// Options wires a Game; nil Clock, Player and Logger get working defaults
type Options struct {
	Screen tcell.Screen
	Config config.Config
	Clock  engine.Clock
	Player audio.Player
	Logger logrus.FieldLogger
}

// Game owns every piece of mutable state; all of it is touched only from the loop goroutine
type Game struct {
	screen   tcell.Screen
	clock    engine.Clock
	sched    *engine.FrameScheduler
	session  *session.Session
	machine  *nav.Machine
	scroll   *momentum.Engine
	view     *render.LogView
	renderer *render.Renderer
	source   *input.Source
	player   audio.Player
	log      logrus.FieldLogger

	dirty       bool
	drawnSecond int64
}

// New builds the world, session and navigation from cfg
func New(opts Options) (*Game, error) {
	if opts.Screen == nil {
		return nil, fmt.Errorf("game: nil screen")
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = engine.SystemClock{}
	}
	player := opts.Player
	if player == nil {
		player = audio.Silent{}
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	grid, err := world.NewGrid(cfg.Grid.Size)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	sess, err := session.New(grid, cfg.Start(), clock)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	keys, err := input.BuildKeyTable(cfg.KeyBindings())
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	sched := engine.NewFrameScheduler()
	view := render.NewLogView()
	scroll := momentum.New(cfg.MomentumParams(), clock, sched, view)

	g := &Game{
		screen:   opts.Screen,
		clock:    clock,
		sched:    sched,
		session:  sess,
		machine:  nav.NewMachine(nav.NewMenu(cfg.Menu.Cancel), sess, scroll),
		scroll:   scroll,
		view:     view,
		renderer: render.NewRenderer(opts.Screen, view),
		source:   input.NewSource(input.NewTranslator(keys), constants.IntentQueueSize),
		player:   player,
		log:      log,
		dirty:    true,
	}

	sess.OnAppend(func(e session.LogEntry) {
		view.ScrollToNewest()
		g.log.WithFields(logrus.Fields{
			"title":   e.Title,
			"terrain": e.Terrain.String(),
			"entries": sess.LogLen(),
		}).Info("log entry appended")
	})

	g.log.WithFields(logrus.Fields{
		"grid":  cfg.Grid.Size,
		"start": cfg.Start().String(),
		"menu":  g.machine.Menu().Len(),
	}).Info("session started")

	return g, nil
}

// Source returns the intent source, for programmatic ticks
func (g *Game) Source() *input.Source { return g.source }

// Session returns the player session
func (g *Game) Session() *session.Session { return g.session }

// Mode returns the active navigation mode
func (g *Game) Mode() nav.Mode { return g.machine.Mode() }

// HandleIntent applies one intent and returns false when the game should quit
func (g *Game) HandleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		g.log.Info("quit requested")
		return false

	case input.IntentResize:
		g.screen.Sync()
		g.dirty = true

	case input.IntentSignal:
		before := g.machine.Mode()
		out := g.machine.Handle(in.Signal)
		g.dirty = true

		if cue, ok := cueFor(out); ok {
			g.player.Play(cue)
		}
		g.logOutcome(in.Signal, before, out)
	}
	return true
}

func (g *Game) logOutcome(sig input.Signal, before nav.Mode, out nav.Outcome) {
	fields := logrus.Fields{
		"signal":  sig.String(),
		"outcome": out.String(),
		"mode":    g.machine.Mode().String(),
	}

	switch out {
	case nav.OutcomeMoved, nav.OutcomeMoveRejected:
		fields["direction"] = g.machine.Menu().Option(before.Selected).Direction.String()
		fields["pos"] = g.session.Position().String()
		fields["moves"] = g.session.Moves()
		g.log.WithFields(fields).Info("move confirmed")
	case nav.OutcomeIgnored:
		g.log.WithFields(fields).Warn("signal ignored")
	default:
		g.log.WithFields(fields).Debug("signal handled")
	}
}

// cueFor maps a navigation outcome to its feedback sound
func cueFor(out nav.Outcome) (audio.Cue, bool) {
	switch out {
	case nav.OutcomePanelCycled, nav.OutcomeMenuMoved, nav.OutcomeScrolled:
		return audio.CueTick, true
	case nav.OutcomeMenuOpened, nav.OutcomeScrollEntered, nav.OutcomeMoved:
		return audio.CueConfirm, true
	case nav.OutcomeMoveRejected:
		return audio.CueReject, true
	case nav.OutcomeMenuCancelled, nav.OutcomeScrollExited:
		return audio.CueCancel, true
	}
	return 0, false
}

// Frame runs due frame callbacks then redraws if anything changed or the clock second rolled over
// A callback that leaves the log offset and the scroll indicator untouched does not force a redraw
func (g *Game) Frame(now time.Time) {
	offset, armed := g.view.Offset(), g.scroll.Armed()
	if g.sched.RunFrame(now) > 0 && (g.view.Offset() != offset || g.scroll.Armed() != armed) {
		g.dirty = true
	}
	if now.Unix() != g.drawnSecond {
		g.dirty = true
	}
	if !g.dirty {
		return
	}

	g.renderer.Draw(render.Snapshot{
		Mode:    g.machine.Mode(),
		Menu:    g.machine.Menu(),
		Session: g.session,
		Scroll:  g.scroll.State(),
		Now:     now,
	})
	g.dirty = false
	g.drawnSecond = now.Unix()
}

// Run pumps terminal input and drives the frame loop until quit or ctx is done
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(core.Protect(func() error {
		return g.source.Pump(egCtx, g.screen)
	}))

	eg.Go(core.Protect(func() error {
		defer func() {
			cancel()
			// PollEvent only returns on an event, wake the pump so it sees the cancellation
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return g.loop(egCtx)
	}))

	err := eg.Wait()
	g.scroll.Stop()
	g.log.WithField("moves", g.session.Moves()).Info("session ended")
	return err
}

func (g *Game) loop(ctx context.Context) error {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	events := g.source.Events()
	g.Frame(g.clock.Now())

	for {
		select {
		case <-ctx.Done():
			return nil

		case in := <-events:
			if !g.HandleIntent(in) {
				return nil
			}

		case <-ticker.C:
			g.Frame(g.clock.Now())
		}
	}
}
