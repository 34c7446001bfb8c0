package world

// Terrain identifies the kind of ground on a tile
type Terrain uint8

const (
	TerrainUnknown Terrain = iota
	TerrainForest
	TerrainPlains
	TerrainRiver
	TerrainMountain
)

// TerrainKinds lists the countable terrains in display order
var TerrainKinds = [...]Terrain{TerrainForest, TerrainPlains, TerrainRiver, TerrainMountain}

type terrainInfo struct {
	glyph rune
	name  string // title case, used in log titles
	label string // upper case, used in the status panel
}

var terrainTable = [...]terrainInfo{
	TerrainUnknown:  {'?', "Unknown", "UNKNOWN"},
	TerrainForest:   {'F', "Forest", "FOREST"},
	TerrainPlains:   {'P', "Plains", "PLAINS"},
	TerrainRiver:    {'R', "River", "RIVER"},
	TerrainMountain: {'M', "Mountain", "MOUNTAIN"},
}

func (t Terrain) info() terrainInfo {
	if int(t) < len(terrainTable) {
		return terrainTable[t]
	}
	return terrainTable[TerrainUnknown]
}

// Glyph returns the map character for t
func (t Terrain) Glyph() rune { return t.info().glyph }

// Name returns the title case name used in log entries
func (t Terrain) Name() string { return t.info().name }

// Label returns the upper case name used in the status panel
func (t Terrain) Label() string { return t.info().label }

func (t Terrain) String() string { return t.info().name }
