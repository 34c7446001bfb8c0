package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the render and momentum frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// IntentQueueSize is the buffer between the input pump and the game loop
	IntentQueueSize = 256
)

// World Defaults
const (
	// DefaultGridSize is the side length of the square world
	DefaultGridSize = 15

	// DefaultStartX and DefaultStartY place the player in the middle of the default grid
	DefaultStartX = 7
	DefaultStartY = 7

	// ViewRadius is how many tiles around the player the map and stats panels cover (5x5)
	ViewRadius = 2
)

// Movement Menu
const (
	// MenuCancelEnabled adds the explicit cancel entry after the eight headings
	MenuCancelEnabled = true
)

// Logging
const (
	// LogDir is where the diagnostic log is written relative to the working directory
	LogDir = "logs"

	// LogFileName is the active log file inside LogDir
	LogFileName = "mud-r1.log"

	// MaxLogSize triggers rotation of the existing log on startup (10MB)
	MaxLogSize = 10 * 1024 * 1024
)
