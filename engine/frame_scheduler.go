package engine

import "time"

// FrameFunc runs once, just before the frame it was requested for is drawn
type FrameFunc func(now time.Time)

// FrameHandle is the scoped registration of a single FrameFunc
// Cancel releases it; a released handle never runs
type FrameHandle struct {
	sched     *FrameScheduler
	fn        FrameFunc
	cancelled bool
	done      bool
}

// Cancel withdraws the callback if it has not run yet, safe on nil and repeated calls
func (h *FrameHandle) Cancel() {
	if h == nil || h.cancelled || h.done {
		return
	}
	h.cancelled = true
	h.sched.remove(h)
}

// Pending reports whether the callback is still waiting for a frame
func (h *FrameHandle) Pending() bool {
	return h != nil && !h.cancelled && !h.done
}

// FrameScheduler collects callbacks for the next frame and runs them in request order
// Owned by the game loop goroutine, not safe for concurrent use
type FrameScheduler struct {
	pending []*FrameHandle
}

// NewFrameScheduler creates an empty scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		pending: make([]*FrameHandle, 0, 4),
	}
}

// RequestFrame queues fn for the next RunFrame
func (s *FrameScheduler) RequestFrame(fn FrameFunc) *FrameHandle {
	h := &FrameHandle{sched: s, fn: fn}
	s.pending = append(s.pending, h)
	return h
}

// RunFrame executes every callback queued before this call and returns how many ran
// Callbacks requested while the frame runs are deferred to the following frame
func (s *FrameScheduler) RunFrame(now time.Time) int {
	if len(s.pending) == 0 {
		return 0
	}

	batch := s.pending
	s.pending = make([]*FrameHandle, 0, cap(batch))

	ran := 0
	for _, h := range batch {
		if h.cancelled {
			continue
		}
		h.done = true
		h.fn(now)
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next frame
func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}

func (s *FrameScheduler) remove(h *FrameHandle) {
	for i, p := range s.pending {
		if p == h {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
