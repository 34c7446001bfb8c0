package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mud-r1/engine"
	"github.com/lixenwraith/mud-r1/nav"
	"github.com/lixenwraith/mud-r1/session"
	"github.com/lixenwraith/mud-r1/world"
)

var testNow = time.Date(2024, 3, 9, 12, 34, 56, 0, time.UTC)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T, start world.Coord) *session.Session {
	t.Helper()
	grid, err := world.NewGrid(15)
	if err != nil {
		t.Fatal(err)
	}
	s, err := session.New(grid, start, engine.NewMockClock(testNow))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenContains(screen tcell.Screen, text string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), text) {
			return true
		}
	}
	return false
}

func snapshot(s *session.Session, mode nav.Mode) Snapshot {
	return Snapshot{Mode: mode, Menu: nav.NewMenu(true), Session: s, Now: testNow}
}

func TestRenderer_HeaderMapAndStats(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	r := NewRenderer(screen, NewLogView())

	r.Draw(snapshot(s, nav.Browsing(nav.PanelMap)))

	header := rowText(screen, 0)
	for _, want := range []string{"MUD-R1 v1.0", "TERMINAL MONITOR", "12:34:56"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}

	// 5x5 view, two cells per tile, centered in the map panel
	centerX, centerY := 9, 4
	if c, _, style, _ := screen.GetContent(centerX, centerY); c != '@' {
		t.Errorf("player glyph = %q", c)
	} else if fg, _, _ := style.Decompose(); fg != RgbPlayer {
		t.Errorf("player color = %v", fg)
	}
	if c, _, _, _ := screen.GetContent(centerX+2, centerY); c != 'R' {
		t.Errorf("east of (7,7) = %q, want R", c)
	}
	if c, _, _, _ := screen.GetContent(centerX-2, centerY); c != 'P' {
		t.Errorf("west of (7,7) = %q, want P", c)
	}

	if !screenContains(screen, "TERRAIN: RIVER") {
		t.Error("stats panel missing terrain label")
	}
	if !screenContains(screen, "Pos: (7,7)") {
		t.Error("map footer missing position")
	}
	if !strings.Contains(rowText(screen, 23), "F=Forest") {
		t.Error("legend missing")
	}
}

func TestRenderer_MapCornerLeavesOffGridBlank(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 0, Y: 0})
	r := NewRenderer(screen, NewLogView())

	r.Draw(snapshot(s, nav.Browsing(nav.PanelMap)))

	// top-left tile of the 5x5 window is (-2,-2)
	if c, _, _, _ := screen.GetContent(5, 2); c != ' ' {
		t.Errorf("off-grid cell drew %q", c)
	}
	if c, _, _, _ := screen.GetContent(9, 4); c != '@' {
		t.Errorf("player glyph = %q", c)
	}
	if c, _, _, _ := screen.GetContent(11, 4); c != 'F' {
		t.Errorf("east of (0,0) = %q, want F", c)
	}
}

func TestRenderer_LogShowsNumberedEntries(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	s.Move(world.East)
	view := NewLogView()
	r := NewRenderer(screen, view)

	r.Draw(snapshot(s, nav.Browsing(nav.PanelLog)))

	if !screenContains(screen, "[1] 12:34:56 - River (7, 7)") {
		t.Error("first entry header missing")
	}
	if !screenContains(screen, "[2] 12:34:56 - River (8, 7)") {
		t.Error("second entry header missing")
	}
	if !screenContains(screen, "Event Log (2)") {
		t.Error("log title missing entry count")
	}
	if !view.Mounted() {
		t.Error("log view should be mounted at 80x24")
	}
}

func TestRenderer_ScrollTagAndBorder(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	r := NewRenderer(screen, NewLogView())

	r.Draw(snapshot(s, nav.LogScrolling()))
	if !screenContains(screen, "[SCROLL]") {
		t.Error("scroll tag missing in LogScrolling")
	}
	_, _, style, _ := screen.GetContent(0, 11)
	if fg, _, _ := style.Decompose(); fg != RgbBorderScroll {
		t.Errorf("log border color = %v", fg)
	}

	r.Draw(snapshot(s, nav.Browsing(nav.PanelLog)))
	if screenContains(screen, "[SCROLL]") {
		t.Error("scroll tag shown outside LogScrolling")
	}
	_, _, style, _ = screen.GetContent(0, 11)
	if fg, _, _ := style.Decompose(); fg != RgbBorderSelected {
		t.Errorf("focused log border color = %v", fg)
	}
}

func TestRenderer_MenuHighlightsSelection(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	r := NewRenderer(screen, NewLogView())

	r.Draw(snapshot(s, nav.MenuOpen(2)))

	if !screenContains(screen, "Movement Direction") || !screenContains(screen, "press button to move") {
		t.Fatal("menu overlay missing")
	}

	w, h := screen.Size()
	var selected []rune
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _, style, _ := screen.GetContent(x, y)
			if _, bg, _ := style.Decompose(); bg == RgbMenuSelectedBg && c != ' ' {
				selected = append(selected, c)
			}
		}
	}
	if string(selected) != "E" {
		t.Errorf("highlighted label = %q, want E", string(selected))
	}
}

func TestRenderer_TooSmallUnmountsLog(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	view := NewLogView()
	view.Layout(10, 5)
	r := NewRenderer(screen, view)

	r.Draw(snapshot(s, nav.Browsing(nav.PanelMap)))

	if view.Mounted() {
		t.Error("log view mounted on a 30x10 terminal")
	}
	if !screenContains(screen, "Terminal too small") {
		t.Error("size warning missing")
	}

	screen.SetSize(80, 24)
	r.Draw(snapshot(s, nav.Browsing(nav.PanelMap)))
	if !view.Mounted() {
		t.Error("log view not remounted after resize")
	}
}

func TestRenderer_ScrolledLogShowsOldestEntry(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	s := newTestSession(t, world.Coord{X: 7, Y: 7})
	for i := 0; i < 10; i++ {
		if i%2 == 0 {
			s.Move(world.East)
		} else {
			s.Move(world.West)
		}
	}
	view := NewLogView()
	r := NewRenderer(screen, view)

	r.Draw(snapshot(s, nav.LogScrolling()))
	if view.MaxOffset() == 0 {
		t.Fatal("eleven entries should overflow the log panel")
	}
	if screenContains(screen, "[1] 12:34:56") {
		t.Error("tail view should not show the first entry")
	}
	if !screenContains(screen, "[11] 12:34:56") {
		t.Error("tail view should show the newest entry")
	}

	view.ScrollBy(-view.MaxOffset())
	r.Draw(snapshot(s, nav.LogScrolling()))
	if !strings.Contains(rowText(screen, 12), "[1] 12:34:56 - River (7, 7)") {
		t.Errorf("top log row after full scroll = %q", rowText(screen, 12))
	}
}
