package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length, bounds cue latency
	AudioBufferDuration = 50 * time.Millisecond

	// MaxConcurrentCues caps the voices in the mixer; fast scroll bursts drop extra tick cues
	MaxConcurrentCues = 4

	// DefaultMasterVolume scales every cue, 0.0-1.0
	DefaultMasterVolume = 0.5
)

// Tick Cue Timing
const (
	TickSoundDuration = 25 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 15 * time.Millisecond
)

// Confirm Cue Timing
const (
	ConfirmSoundNote1Duration = 60 * time.Millisecond
	ConfirmSoundNote2Duration = 140 * time.Millisecond
	ConfirmSoundAttack        = 5 * time.Millisecond
	ConfirmSoundNote1Release  = 30 * time.Millisecond
	ConfirmSoundNote2Release  = 100 * time.Millisecond
)

// Reject Cue Timing
const (
	RejectSoundDuration = 150 * time.Millisecond
	RejectSoundAttack   = 5 * time.Millisecond
	RejectSoundRelease  = 40 * time.Millisecond
)

// Cancel Cue Timing
const (
	CancelSoundDuration = 120 * time.Millisecond
	CancelSoundAttack   = 5 * time.Millisecond
	CancelSoundRelease  = 90 * time.Millisecond
)
