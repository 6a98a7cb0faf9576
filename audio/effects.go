package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a finite single-voice wave source
type oscillator struct {
	step      float64 // Phase increment per sample
	phase     float64 // [0, 1)
	remaining int     // Samples left
	wave      WaveType
}

// NewOscillator creates a wave source of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		step:      freq / float64(rate),
		remaining: rate.N(duration),
		wave:      wave,
	}
}

func (o *oscillator) sample() float64 {
	switch o.wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*o.phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * o.phase)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.remaining == 0 {
			return i, i > 0
		}
		v := o.sample()
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.step
		o.phase -= math.Floor(o.phase)
		o.remaining--
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream, silencing it after total samples
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) gain() float64 {
	switch {
	case e.attack > 0 && e.position < e.attack:
		return float64(e.position) / float64(e.attack)
	case e.release > 0 && e.position >= e.releaseStart:
		return float64(e.total-e.position) / float64(e.release)
	}
	return 1
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain()
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear volume; 0 or below is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound effect generators

// CreateChompSound generates a falling square blip
func CreateChompSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(330.0, constants.ChompSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ChompSoundDuration, constants.ChompSoundAttack, constants.ChompSoundRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[core.SoundChomp]*cfg.MasterVolume)
}

// CreateCrunchSound generates a short filtered noise burst over a low saw
func CreateCrunchSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, constants.CrunchSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constants.CrunchSoundDuration, constants.CrunchSoundAttack, constants.CrunchSoundRelease, rate)

	body := NewOscillator(140.0, constants.CrunchSoundDuration, WaveSaw, rate)
	bodyShaped := NewEnvelope(body, constants.CrunchSoundDuration, constants.CrunchSoundAttack, constants.CrunchSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.5),
		newVolume(bodyShaped, 0.5),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundCrunch]*cfg.MasterVolume)
}

// CreateBlipSound generates a rising two-note chime
func CreateBlipSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, constants.BlipSoundNote1Duration, WaveSine, rate)
	n1Shaped := NewEnvelope(n1, constants.BlipSoundNote1Duration, constants.BlipSoundAttack, constants.BlipSoundNote1Release, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, constants.BlipSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.BlipSoundNote2Duration, constants.BlipSoundAttack, constants.BlipSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[core.SoundBlip]*cfg.MasterVolume)
}

// CreateGameOverSound generates a long low saw with a slow release
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	low := NewOscillator(110.0, constants.GameOverSoundDuration, WaveSaw, rate)
	lowShaped := NewEnvelope(low, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	fifth := NewOscillator(164.81, constants.GameOverSoundDuration, WaveSine, rate)
	fifthShaped := NewEnvelope(fifth, constants.GameOverSoundDuration, constants.GameOverSoundAttack, constants.GameOverSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(lowShaped, 0.6),
		newVolume(fifthShaped, 0.4),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundChomp:
		return CreateChompSound(cfg)
	case core.SoundCrunch:
		return CreateCrunchSound(cfg)
	case core.SoundBlip:
		return CreateBlipSound(cfg)
	case core.SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
