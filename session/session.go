package session

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mud-r1/engine"
	"github.com/lixenwraith/mud-r1/world"
)

// LogEntry is one immutable record in the event log
type LogEntry struct {
	Title   string
	Body    string
	Terrain world.Terrain
	At      time.Time
}

// TerrainCounts holds per-terrain tile counts, indexed by world.Terrain
type TerrainCounts [len(world.TerrainKinds) + 1]int

// Of returns the count for t
func (c TerrainCounts) Of(t world.Terrain) int {
	if int(t) >= len(c) {
		return 0
	}
	return c[t]
}

// Session owns the player position, the move counter and the append-only log
type Session struct {
	grid    *world.Grid
	clock   engine.Clock
	pos     world.Coord
	moves   int
	entries []LogEntry

	appendListeners []func(LogEntry)
}

// New places the player at start and records the arrival story for that tile
func New(grid *world.Grid, start world.Coord, clock engine.Clock) (*Session, error) {
	if !grid.Contains(start) {
		return nil, fmt.Errorf("start %v outside %dx%d grid", start, grid.Size(), grid.Size())
	}

	s := &Session{
		grid:    grid,
		clock:   clock,
		pos:     start,
		entries: make([]LogEntry, 0, 32),
	}
	s.entries = append(s.entries, s.entryFor(start))
	return s, nil
}

// OnAppend registers fn to run after every new log entry
func (s *Session) OnAppend(fn func(LogEntry)) {
	s.appendListeners = append(s.appendListeners, fn)
}

// Move applies a confirmed heading; out-of-grid moves and Cancel change nothing and return false
func (s *Session) Move(dir world.Direction) bool {
	delta, ok := dir.Delta()
	if !ok {
		return false
	}

	next, ok := world.AttemptMove(s.pos, delta, s.grid.Size())
	if !ok {
		return false
	}

	s.pos = next
	s.moves++

	entry := s.entryFor(next)
	s.entries = append(s.entries, entry)
	for _, fn := range s.appendListeners {
		fn(entry)
	}
	return true
}

func (s *Session) entryFor(c world.Coord) LogEntry {
	terrain := s.grid.TileAt(c.X, c.Y)
	story := world.StoryFor(c, terrain, s.grid.Size())
	return LogEntry{
		Title:   story.Title,
		Body:    story.Body,
		Terrain: terrain,
		At:      s.clock.Now(),
	}
}

// Position returns the player coordinate
func (s *Session) Position() world.Coord { return s.pos }

// Moves returns the number of successful moves
func (s *Session) Moves() int { return s.moves }

// Grid returns the world the session plays on
func (s *Session) Grid() *world.Grid { return s.grid }

// Terrain returns the terrain under the player
func (s *Session) Terrain() world.Terrain {
	return s.grid.TileAt(s.pos.X, s.pos.Y)
}

// LogLen returns the number of log entries
func (s *Session) LogLen() int { return len(s.entries) }

// Entries returns a copy of the log, oldest first
func (s *Session) Entries() []LogEntry {
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Stats counts terrain in the (2r+1)x(2r+1) window around the player, off-grid cells are skipped
func (s *Session) Stats(radius int) TerrainCounts {
	var counts TerrainCounts
	for y := s.pos.Y - radius; y <= s.pos.Y+radius; y++ {
		for x := s.pos.X - radius; x <= s.pos.X+radius; x++ {
			t := s.grid.TileAt(x, y)
			if t == world.TerrainUnknown {
				continue
			}
			counts[t]++
		}
	}
	return counts
}
