package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mud-r1/constants"
)

// Player plays feedback cues; implementations must never block the caller
type Player interface {
	Play(cue Cue)
	Close()
}

// Silent is the Player used when audio is disabled or unavailable
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// SoundManager plays cues through the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates an uninitialized manager; Play is a no-op until Initialize succeeds
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues cue on the mixer, dropping it when the mixer is saturated
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CueStreamer(cue, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	if sm.mixer.Len() < constants.MaxConcurrentCues {
		sm.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// NewPlayer returns a SoundManager when audio is enabled and the speaker opens, Silent otherwise
// The returned error reports why audio fell back to Silent and is not fatal
func NewPlayer(cfg Config) (Player, error) {
	if !cfg.Enabled {
		return Silent{}, nil
	}
	if err := cfg.Validate(); err != nil {
		return Silent{}, err
	}
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		return Silent{}, err
	}
	return sm, nil
}
