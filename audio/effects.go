package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/mud-r1/constants"
)

// waveform maps a phase in [0,1) to a sample in [-1,1]
type waveform func(phase float64) float64

func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func saw(p float64) float64 { return 2*p - 1 }

func noise(float64) float64 { return rand.Float64()*2 - 1 }

// note is one shaped tone with linear attack and release ramps
type note struct {
	freq    float64
	wave    waveform
	length  time.Duration
	attack  time.Duration
	release time.Duration
}

// cueSound is a sequence of notes, optionally layered with noise over the first note
type cueSound struct {
	notes []note
	noise float64 // share of the mix given to noise, 0 for a clean tone
}

var cueSounds = [cueCount]cueSound{
	// short high click for each highlight step
	CueTick: {notes: []note{
		{1200, sine, constants.TickSoundDuration, constants.TickSoundAttack, constants.TickSoundRelease},
	}},
	// rising two-note chime, E5 then B5
	CueConfirm: {notes: []note{
		{659.25, square, constants.ConfirmSoundNote1Duration, constants.ConfirmSoundAttack, constants.ConfirmSoundNote1Release},
		{987.77, square, constants.ConfirmSoundNote2Duration, constants.ConfirmSoundAttack, constants.ConfirmSoundNote2Release},
	}},
	// low buzz for a blocked move
	CueReject: {notes: []note{
		{110, saw, constants.RejectSoundDuration, constants.RejectSoundAttack, constants.RejectSoundRelease},
	}},
	// soft blip with a breath of noise
	CueCancel: {notes: []note{
		{523.25, sine, constants.CancelSoundDuration, constants.CancelSoundAttack, constants.CancelSoundRelease},
	}, noise: 0.15},
}

// voice plays a note once
type voice struct {
	wave    waveform
	step    float64 // phase advance per sample
	phase   float64
	pos     int
	total   int
	attack  int
	release int
}

func (n note) streamer(rate beep.SampleRate) *voice {
	total := rate.N(n.length)
	return &voice{
		wave:    n.wave,
		step:    n.freq / float64(rate),
		total:   total,
		attack:  min(rate.N(n.attack), total),
		release: min(rate.N(n.release), total),
	}
}

// gain is the envelope level at sample i, the release ramp wins where the two overlap
func (v *voice) gain(i int) float64 {
	switch {
	case v.release > 0 && i >= v.total-v.release:
		return float64(v.total-i) / float64(v.release)
	case v.attack > 0 && i < v.attack:
		return float64(i) / float64(v.attack)
	}
	return 1
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	if v.pos >= v.total {
		return 0, false
	}
	n := min(len(samples), v.total-v.pos)
	for i := 0; i < n; i++ {
		s := v.wave(v.phase) * v.gain(v.pos)
		samples[i][0], samples[i][1] = s, s
		v.phase = math.Mod(v.phase+v.step, 1)
		v.pos++
	}
	return n, true
}

func (v *voice) Err() error { return nil }

// newVolume wraps s in a linear volume; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func (c cueSound) streamer(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, len(c.notes))
	for i, n := range c.notes {
		parts[i] = n.streamer(rate)
	}
	s := beep.Seq(parts...)
	if c.noise <= 0 {
		return s
	}

	hiss := c.notes[0]
	hiss.wave = noise
	return beep.Mix(newVolume(s, 1-c.noise), newVolume(hiss.streamer(rate), c.noise))
}

// CueStreamer returns the streamer for cue at its configured level, nil for an unknown cue
func CueStreamer(cue Cue, cfg Config) beep.Streamer {
	if cue < 0 || cue >= cueCount {
		return nil
	}
	s := cueSounds[cue].streamer(beep.SampleRate(cfg.SampleRate))
	return newVolume(s, cfg.CueVolumes[cue]*cfg.MasterVolume)
}
