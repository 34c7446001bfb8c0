package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestLogView_UnmountedUntilLayout(t *testing.T) {
	v := NewLogView()
	if v.Mounted() {
		t.Error("new view should not be mounted")
	}
	v.Layout(3, 10)
	if !v.Mounted() {
		t.Error("view should be mounted after layout")
	}
	v.Unmount()
	if v.Mounted() {
		t.Error("Unmount had no effect")
	}
}

func TestLogView_OpensOnNewest(t *testing.T) {
	v := NewLogView()
	v.Layout(30, 10)
	if v.Offset() != 20 || v.FirstLine() != 20 {
		t.Errorf("first layout: offset %v first %d, want tail", v.Offset(), v.FirstLine())
	}
}

func TestLogView_ScrollClamps(t *testing.T) {
	v := NewLogView()
	v.Layout(30, 10)

	v.ScrollBy(5)
	if v.Offset() != 20 {
		t.Errorf("offset past the tail: %v", v.Offset())
	}

	v.ScrollBy(-100)
	if v.Offset() != 0 || v.FirstLine() != 0 {
		t.Errorf("head: offset %v first %d", v.Offset(), v.FirstLine())
	}

	v.ScrollToNewest()
	if v.Offset() != 20 || v.FirstLine() != 20 {
		t.Errorf("newest: offset %v first %d", v.Offset(), v.FirstLine())
	}
}

func TestLogView_PositiveDeltaMovesTowardNewer(t *testing.T) {
	v := NewLogView()
	v.Layout(100, 10)
	v.ScrollBy(-50)
	before := v.FirstLine()

	v.ScrollBy(3)
	if got := v.FirstLine(); got != before+3 {
		t.Errorf("first line %d -> %d, want %d", before, got, before+3)
	}
	v.ScrollBy(-3)
	if got := v.FirstLine(); got != before {
		t.Errorf("first line = %d after reversing, want %d", got, before)
	}
}

func TestLogView_ScrollToNewestFollowsAppend(t *testing.T) {
	v := NewLogView()
	v.Layout(30, 10)
	v.ScrollBy(-12)

	// an entry arrives: the jump targets the content of the next layout
	v.ScrollToNewest()
	v.Layout(33, 10)
	if v.Offset() != 23 {
		t.Errorf("offset = %v, want new tail 23", v.Offset())
	}

	// a plain relayout keeps a manual position
	v.ScrollBy(-5)
	v.Layout(34, 10)
	if v.Offset() != 18 {
		t.Errorf("offset = %v, want 18", v.Offset())
	}
}

func TestLogView_FractionalOffsetRounds(t *testing.T) {
	v := NewLogView()
	v.Layout(30, 10)
	v.ScrollBy(-20)
	v.ScrollBy(2.4)
	if v.FirstLine() != 2 {
		t.Errorf("first line = %d, want 2", v.FirstLine())
	}
	v.ScrollBy(0.2)
	if v.FirstLine() != 3 {
		t.Errorf("first line = %d, want 3", v.FirstLine())
	}
}

func TestLogView_LayoutShrinkReclamps(t *testing.T) {
	v := NewLogView()
	v.Layout(30, 10)
	v.Layout(12, 10)
	if v.Offset() != 2 {
		t.Errorf("offset = %v after shrink, want 2", v.Offset())
	}
	v.Layout(5, 10)
	if v.Offset() != 0 || v.MaxOffset() != 0 {
		t.Errorf("short content: offset %v max %v", v.Offset(), v.MaxOffset())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "a quiet river", 20, []string{"a quiet river"}},
		{"breaks on space", "a quiet river bend", 9, []string{"a quiet", "river", "bend"}},
		{"hard breaks long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"collapses whitespace", "  a   b  ", 10, []string{"a b"}},
		{"empty", "", 10, nil},
		{"zero width", "text", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapText_WideRunesRespectCellWidth(t *testing.T) {
	lines := wrapText("世界の果て 川の流れ", 6)
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > 6 {
			t.Errorf("line %q is %d cells wide", l, w)
		}
	}
	if len(lines) < 2 {
		t.Errorf("expected wrapping, got %q", lines)
	}
}
