package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
)

// SoundManager plays synthesized effects through one speaker mixer
// Implements engine.AudioPlayer
type SoundManager struct {
	mu          sync.Mutex
	cfg         AudioConfig
	mixer       *beep.Mixer
	initialized bool
	lastEat     time.Time

	enabled atomic.Bool
	played  atomic.Int64
}

// NewSoundManager creates a manager; no device is opened until Initialize
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		cfg:   *cfg,
		mixer: &beep.Mixer{},
	}
	sm.enabled.Store(cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup clears the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
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

// Enqueue adds the effect for sound to the mixer
// Eat sounds closer together than MinSoundGap are dropped silently
func (sm *SoundManager) Enqueue(sound core.SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	streamer := GetSoundEffect(sound, &sm.cfg)
	if streamer == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, sound)
	}

	if sound != core.SoundGameOver {
		now := time.Now()
		if now.Sub(sm.lastEat) < constants.MinSoundGap {
			return nil
		}
		sm.lastEat = now
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
	return nil
}

// Play implements engine.AudioPlayer
func (sm *SoundManager) Play(sound core.SoundType) bool {
	if !sm.enabled.Load() {
		return false
	}
	return sm.Enqueue(sound) == nil
}

// IsEnabled implements engine.AudioPlayer
func (sm *SoundManager) IsEnabled() bool {
	return sm.enabled.Load()
}

// SetEnabled mutes or unmutes playback
func (sm *SoundManager) SetEnabled(on bool) {
	sm.enabled.Store(on)
}

// SetMasterVolume changes the volume applied to sounds created from now on
func (sm *SoundManager) SetMasterVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.MasterVolume = ClampVolume(v)
}

// PlayedCount returns the number of effects handed to the mixer
func (sm *SoundManager) PlayedCount() int64 {
	return sm.played.Load()
}
