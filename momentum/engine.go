package momentum

import (
	"math"
	"time"

	"github.com/lixenwraith/mud-r1/constants"
	"github.com/lixenwraith/mud-r1/engine"
)

// Viewport is the scrollable surface the engine drives
type Viewport interface {
	// ScrollBy shifts the offset by delta rows, the viewport clamps as it sees fit
	ScrollBy(delta float64)
	// Mounted reports whether the view can currently be scrolled
	Mounted() bool
}

// Scheduler hands out per-frame callbacks
type Scheduler interface {
	RequestFrame(fn engine.FrameFunc) *engine.FrameHandle
}

// ScrollState is a read-only snapshot of the engine
type ScrollState struct {
	Velocity  float64
	Direction int
	LastTick  time.Time
	Recent    int // ticks currently in the burst buffer
	Armed     bool
}

// Engine turns bursts of same-signed ticks into decaying per-frame scroll motion
// All methods must be called from the goroutine that runs the Scheduler
type Engine struct {
	params Params
	clock  engine.Clock
	sched  Scheduler
	view   Viewport

	velocity  float64
	direction int
	lastTick  time.Time
	ticks     tickRing

	frame *engine.FrameHandle
}

// New creates a disarmed engine, params must already be validated
func New(params Params, clock engine.Clock, sched Scheduler, view Viewport) *Engine {
	return &Engine{
		params: params,
		clock:  clock,
		sched:  sched,
		view:   view,
		ticks:  newTickRing(constants.ScrollTickBufferSize),
	}
}

// Tick records one scroll input, dir must be +1 or -1, anything else is ignored
func (e *Engine) Tick(dir int) {
	if dir != 1 && dir != -1 {
		return
	}
	now := e.clock.Now()

	e.ticks.pruneBefore(now.Add(-e.params.Window))
	last, live := e.ticks.newest()
	continuing := live && last.dir == dir

	e.ticks.push(tickRecord{at: now, dir: dir})
	e.direction = dir
	e.lastTick = now

	if continuing {
		e.velocity = math.Min(e.velocity+e.params.Accel, e.params.Max)
	}
	if e.velocity < e.params.Base {
		e.velocity = e.params.Base
	}

	if !e.frame.Pending() {
		e.frame = e.sched.RequestFrame(e.step)
	}
}

// Stop cancels any pending frame and returns the engine to rest
func (e *Engine) Stop() {
	e.frame.Cancel()
	e.frame = nil
	e.reset()
}

// Armed reports whether a frame is scheduled
func (e *Engine) Armed() bool {
	return e.frame.Pending()
}

// State returns a snapshot for rendering and tests
func (e *Engine) State() ScrollState {
	return ScrollState{
		Velocity:  e.velocity,
		Direction: e.direction,
		LastTick:  e.lastTick,
		Recent:    e.ticks.len(),
		Armed:     e.frame.Pending(),
	}
}

// step is the per-frame callback, it either reschedules itself or disarms
func (e *Engine) step(now time.Time) {
	e.frame = nil

	// View not available: keep momentum and try again next frame
	if e.view == nil || !e.view.Mounted() {
		e.frame = e.sched.RequestFrame(e.step)
		return
	}

	e.ticks.pruneBefore(now.Add(-e.params.Window))

	switch {
	case e.ticks.len() > 0 && now.Sub(e.lastTick) < e.params.Staleness:
		e.velocity = math.Min(e.velocity+e.params.Accel, e.params.Max)
		if e.velocity > e.params.Threshold {
			e.view.ScrollBy(float64(e.direction) * e.velocity)
		}
		e.frame = e.sched.RequestFrame(e.step)

	case e.velocity > e.params.Threshold:
		e.velocity *= e.params.Decel
		e.view.ScrollBy(float64(e.direction) * e.velocity)
		e.frame = e.sched.RequestFrame(e.step)

	default:
		e.reset()
	}
}

func (e *Engine) reset() {
	e.velocity = 0
	e.direction = 0
	e.ticks.clear()
}
