package engine

import (
	"testing"
	"time"
)

func TestFrameScheduler_RunsInRequestOrder(t *testing.T) {
	s := NewFrameScheduler()
	var order []int

	s.RequestFrame(func(time.Time) { order = append(order, 1) })
	s.RequestFrame(func(time.Time) { order = append(order, 2) })
	s.RequestFrame(func(time.Time) { order = append(order, 3) })

	if ran := s.RunFrame(time.Unix(0, 0)); ran != 3 {
		t.Fatalf("ran %d callbacks, want 3", ran)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("pending after run = %d", s.Pending())
	}
}

func TestFrameScheduler_CancelledNeverRuns(t *testing.T) {
	s := NewFrameScheduler()
	called := false

	h := s.RequestFrame(func(time.Time) { called = true })
	if !h.Pending() {
		t.Fatal("fresh handle should be pending")
	}
	h.Cancel()
	h.Cancel() // idempotent

	if s.Pending() != 0 {
		t.Errorf("pending after cancel = %d", s.Pending())
	}
	s.RunFrame(time.Now())
	if called {
		t.Error("cancelled callback ran")
	}
	if h.Pending() {
		t.Error("cancelled handle still pending")
	}
}

func TestFrameScheduler_RequestDuringFrameDefers(t *testing.T) {
	s := NewFrameScheduler()
	clock := NewMockClock(time.Unix(100, 0))
	var seen []time.Time

	var step FrameFunc
	step = func(now time.Time) {
		seen = append(seen, now)
		if len(seen) < 3 {
			s.RequestFrame(step)
		}
	}
	s.RequestFrame(step)

	for i := 0; i < 5; i++ {
		s.RunFrame(clock.Advance(16 * time.Millisecond))
	}

	if len(seen) != 3 {
		t.Fatalf("callback ran %d times, want 3", len(seen))
	}
	for i := 1; i < len(seen); i++ {
		if !seen[i].After(seen[i-1]) {
			t.Errorf("frame %d did not advance in time", i)
		}
	}
}

func TestFrameScheduler_CancelInsideFrame(t *testing.T) {
	s := NewFrameScheduler()
	var second *FrameHandle
	ranSecond := false

	s.RequestFrame(func(time.Time) { second.Cancel() })
	second = s.RequestFrame(func(time.Time) { ranSecond = true })

	s.RunFrame(time.Now())
	if ranSecond {
		t.Error("callback cancelled earlier in the same frame still ran")
	}
}

func TestFrameHandle_NilSafe(t *testing.T) {
	var h *FrameHandle
	h.Cancel()
	if h.Pending() {
		t.Error("nil handle reports pending")
	}
}
