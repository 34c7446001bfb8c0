package render

import (
	"math"

	"github.com/lixenwraith/mud-r1/constants"
)

// LogView is the scrollable viewport over the wrapped event log
// Offset counts rows down from the oldest line: 0 shows the head, MaxOffset shows the newest entries
type LogView struct {
	offset  float64
	total   int // wrapped lines of content
	visible int // rows available on screen
	mounted bool
	follow  bool // snap to the tail on the next Layout
}

// NewLogView creates an unmounted view pinned to the tail, the first Layout mounts it
func NewLogView() *LogView {
	return &LogView{follow: true}
}

// Layout records the content and window size from the latest draw and clamps the offset
func (v *LogView) Layout(total, visible int) {
	v.total = total
	v.visible = visible
	v.mounted = visible >= constants.MinLogRows
	if v.follow {
		v.offset = v.MaxOffset()
		v.follow = false
	}
	v.offset = v.clamp(v.offset)
}

// Unmount marks the view unavailable, the offset is kept for when it returns
func (v *LogView) Unmount() {
	v.mounted = false
}

// Mounted reports whether the log panel is on screen
func (v *LogView) Mounted() bool { return v.mounted }

// ScrollBy moves the offset by delta rows, clamped to the content
// Positive deltas move toward newer entries
func (v *LogView) ScrollBy(delta float64) {
	v.follow = false
	v.offset = v.clamp(v.offset + delta)
}

// ScrollToNewest jumps to the tail of the log
// Content appended since the last Layout is reached when the next Layout runs
func (v *LogView) ScrollToNewest() {
	v.offset = v.MaxOffset()
	v.follow = true
}

// Offset returns the fractional offset from the head
func (v *LogView) Offset() float64 { return v.offset }

// MaxOffset returns the offset that shows the newest line at the bottom
func (v *LogView) MaxOffset() float64 {
	if v.total <= v.visible {
		return 0
	}
	return float64(v.total - v.visible)
}

// FirstLine returns the index of the top visible line
func (v *LogView) FirstLine() int {
	return int(math.Round(v.offset))
}

func (v *LogView) clamp(off float64) float64 {
	return math.Max(0, math.Min(off, v.MaxOffset()))
}
