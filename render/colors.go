package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/mud-r1/world"
)

// Palette, phosphor terminal on a Tokyo Night background
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Soft white
	RgbDim        = tcell.NewRGBColor(86, 95, 137)   // Comment gray

	RgbBorder         = tcell.NewRGBColor(65, 72, 104)   // Idle panel border
	RgbBorderSelected = tcell.NewRGBColor(255, 165, 0)   // Orange, focused panel
	RgbBorderScroll   = tcell.NewRGBColor(144, 238, 144) // Light green, log scroll mode
	RgbTitle          = tcell.NewRGBColor(135, 206, 250) // Light sky blue

	RgbHeaderBg = tcell.NewRGBColor(36, 40, 59)
	RgbHeaderFg = tcell.NewRGBColor(255, 255, 255)

	RgbPlayer          = tcell.NewRGBColor(255, 255, 0) // Bright yellow
	RgbTerrainForest   = tcell.NewRGBColor(60, 160, 60)
	RgbTerrainPlains   = tcell.NewRGBColor(200, 170, 110)
	RgbTerrainRiver    = tcell.NewRGBColor(100, 150, 255)
	RgbTerrainMountain = tcell.NewRGBColor(170, 170, 170)

	RgbBarFill  = tcell.NewRGBColor(0, 200, 200) // Cyan
	RgbBarEmpty = tcell.NewRGBColor(50, 50, 50)

	RgbMenuSelectedBg = tcell.NewRGBColor(255, 165, 0)
	RgbMenuSelectedFg = tcell.NewRGBColor(0, 0, 0)
	RgbMenuCancel     = tcell.NewRGBColor(255, 80, 80) // Normal red

	RgbLogHeader = tcell.NewRGBColor(255, 165, 0)
)

// TerrainColor returns the glyph color for t
func TerrainColor(t world.Terrain) tcell.Color {
	switch t {
	case world.TerrainForest:
		return RgbTerrainForest
	case world.TerrainPlains:
		return RgbTerrainPlains
	case world.TerrainRiver:
		return RgbTerrainRiver
	case world.TerrainMountain:
		return RgbTerrainMountain
	}
	return RgbDim
}
