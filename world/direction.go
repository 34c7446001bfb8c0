package world

import "fmt"

// Coord is a tile position on the grid, X grows east and Y grows south
type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Delta is a unit step with both components in {-1, 0, 1}
type Delta struct {
	DX, DY int
}

// Direction is one of the eight compass headings or the Cancel pseudo-direction
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	Cancel
)

// CompassCount is the number of real headings (Cancel excluded)
const CompassCount = 8

var directionDeltas = [CompassCount]Delta{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [...]string{
	North:     "N",
	NorthEast: "NE",
	East:      "E",
	SouthEast: "SE",
	South:     "S",
	SouthWest: "SW",
	West:      "W",
	NorthWest: "NW",
	Cancel:    "X",
}

// Delta returns the unit step for d, ok is false for Cancel and unknown values
func (d Direction) Delta() (Delta, bool) {
	if d >= CompassCount {
		return Delta{}, false
	}
	return directionDeltas[d], true
}

// String returns the short compass label shown in the movement menu
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// AttemptMove translates p by d and returns the result only when both axes stay within [0, size)
// A rejected move returns p unchanged and false, never a partially applied step
func AttemptMove(p Coord, d Delta, size int) (Coord, bool) {
	next := Coord{X: p.X + d.DX, Y: p.Y + d.DY}
	if next.X < 0 || next.X >= size || next.Y < 0 || next.Y >= size {
		return p, false
	}
	return next, true
}
