package constants

import "time"

// Momentum Scroll Tuning
// Velocities are rows of log text per frame
const (
	// ScrollBaseVelocity is the minimum velocity applied on a fresh tick
	ScrollBaseVelocity = 0.25

	// ScrollMaxVelocity caps the velocity however fast ticks arrive
	ScrollMaxVelocity = 2.0

	// ScrollAcceleration is added per frame while ticks are live and per continued tick
	ScrollAcceleration = 0.1

	// ScrollDeceleration is the per-frame decay factor once ticks stop
	ScrollDeceleration = 0.92

	// ScrollVelocityThreshold is the velocity at which coasting stops
	ScrollVelocityThreshold = 0.01

	// ScrollTickWindow prunes ticks older than this from the burst buffer
	ScrollTickWindow = 200 * time.Millisecond

	// ScrollTickStaleness is how recent the last tick must be for a frame to keep accelerating
	ScrollTickStaleness = 150 * time.Millisecond

	// ScrollTickBufferSize bounds the burst buffer
	ScrollTickBufferSize = 32
)
