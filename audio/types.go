package audio

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mud-r1/constants"
)

// Cue is a short feedback sound
type Cue int

const (
	CueTick    Cue = iota // panel or menu highlight moved
	CueConfirm            // move applied, mode entered
	CueReject             // move out of bounds
	CueCancel             // menu cancelled, scroll mode left
	cueCount
)

var cueNames = [cueCount]string{"tick", "confirm", "reject", "cancel"}

func (c Cue) String() string {
	if c >= 0 && c < cueCount {
		return cueNames[c]
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// ParseCue maps a config name to a Cue
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// ErrInvalidConfig is returned for out-of-range audio settings
var ErrInvalidConfig = errors.New("invalid audio config")

// Config holds audio settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   [cueCount]float64
}

// DefaultConfig returns enabled audio at half volume with all cues at full level
func DefaultConfig() Config {
	cfg := Config{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.AudioSampleRate,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	// ticks arrive in bursts, keep them under the other cues
	cfg.CueVolumes[CueTick] = 0.4
	return cfg
}

// SetCueVolume sets the level of one cue by config name
func (c *Config) SetCueVolume(name string, vol float64) error {
	cue, ok := ParseCue(name)
	if !ok {
		return fmt.Errorf("%w: unknown cue %q", ErrInvalidConfig, name)
	}
	if vol < 0 || vol > 1 {
		return fmt.Errorf("%w: cue %s volume %v outside [0,1]", ErrInvalidConfig, name, vol)
	}
	c.CueVolumes[cue] = vol
	return nil
}

// Validate checks ranges
func (c Config) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: master volume %v outside [0,1]", ErrInvalidConfig, c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	for i, v := range c.CueVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: cue %s volume %v outside [0,1]", ErrInvalidConfig, Cue(i), v)
		}
	}
	return nil
}
