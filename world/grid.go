package world

import "fmt"

// MinGridSize is the smallest side length the fixed layout can be laid out on
const MinGridSize = 5

// Grid is an immutable square terrain map
type Grid struct {
	size  int
	tiles []Terrain // row-major: tiles[y*size + x]
}

// NewGrid lays out the fixed world: a two-column river through the middle,
// forest in the north-west and south-east corners, plains everywhere else
func NewGrid(size int) (*Grid, error) {
	if size < MinGridSize {
		return nil, fmt.Errorf("grid size %d below minimum %d", size, MinGridSize)
	}

	g := &Grid{
		size:  size,
		tiles: make([]Terrain, size*size),
	}

	river := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			var t Terrain
			switch {
			case x == river || x == river+1:
				t = TerrainRiver
			case (x < 4 && y < 5) || (x > size-5 && y > size-5):
				t = TerrainForest
			default:
				t = TerrainPlains
			}
			g.tiles[y*size+x] = t
		}
	}
	return g, nil
}

// Size returns the side length
func (g *Grid) Size() int { return g.size }

// Contains reports whether c lies on the grid
func (g *Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// TileAt returns the terrain at (x, y), TerrainUnknown off the grid
func (g *Grid) TileAt(x, y int) Terrain {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return TerrainUnknown
	}
	return g.tiles[y*g.size+x]
}
