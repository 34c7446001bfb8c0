package momentum

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/mud-r1/constants"
)

// ErrInvalidParams is wrapped by every Params validation failure
var ErrInvalidParams = errors.New("invalid momentum parameters")

// Params tunes the inertial scroll, velocities are in rows per frame
type Params struct {
	Base      float64       // floor applied by a fresh tick
	Max       float64       // ceiling for velocity
	Accel     float64       // added per frame while ticking and per continued tick
	Decel     float64       // multiplicative decay per coasting frame, in (0, 1)
	Threshold float64       // velocity at or below which motion stops
	Window    time.Duration // ticks older than this are pruned from the buffer
	Staleness time.Duration // a frame counts as "still ticking" within this of the last tick
}

// DefaultParams returns the reference tuning
func DefaultParams() Params {
	return Params{
		Base:      constants.ScrollBaseVelocity,
		Max:       constants.ScrollMaxVelocity,
		Accel:     constants.ScrollAcceleration,
		Decel:     constants.ScrollDeceleration,
		Threshold: constants.ScrollVelocityThreshold,
		Window:    constants.ScrollTickWindow,
		Staleness: constants.ScrollTickStaleness,
	}
}

// Validate checks the ranges the frame loop relies on to terminate
func (p Params) Validate() error {
	switch {
	case p.Base <= 0:
		return fmt.Errorf("%w: base %v must be positive", ErrInvalidParams, p.Base)
	case p.Max < p.Base:
		return fmt.Errorf("%w: max %v below base %v", ErrInvalidParams, p.Max, p.Base)
	case p.Accel < 0:
		return fmt.Errorf("%w: accel %v negative", ErrInvalidParams, p.Accel)
	case p.Decel <= 0 || p.Decel >= 1:
		return fmt.Errorf("%w: decel %v outside (0, 1)", ErrInvalidParams, p.Decel)
	case p.Threshold <= 0 || p.Threshold >= p.Base:
		return fmt.Errorf("%w: threshold %v outside (0, base)", ErrInvalidParams, p.Threshold)
	case p.Window <= 0:
		return fmt.Errorf("%w: window %v must be positive", ErrInvalidParams, p.Window)
	case p.Staleness <= 0:
		return fmt.Errorf("%w: staleness %v must be positive", ErrInvalidParams, p.Staleness)
	}
	return nil
}
