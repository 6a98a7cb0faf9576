package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

// TestSoundManagerGracefulDegradation verifies playback is safe without a device
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	if err := sm.Enqueue(core.SoundChomp); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if sm.Play(core.SoundGameOver) {
		t.Error("Play should fail before Initialize")
	}
	sm.Cleanup()

	if sm.PlayedCount() != 0 {
		t.Errorf("Expected nothing played, got %d", sm.PlayedCount())
	}
}

func TestSoundManagerEnableToggle(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if sm.IsEnabled() {
		t.Error("Expected disabled manager")
	}
	if sm.Play(core.SoundChomp) {
		t.Error("Disabled manager should not play")
	}

	sm.SetEnabled(true)
	if !sm.IsEnabled() {
		t.Error("Expected enabled after SetEnabled(true)")
	}
}

// TestSoundManagerInitialization opens a real device when one exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Enqueue(core.SoundTypeCount); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Expected ErrUnknownSound, got %v", err)
	}
	if !sm.Play(core.SoundGameOver) {
		t.Error("Expected game over sound to play")
	}
}

func TestSetMasterVolumeClamps(t *testing.T) {
	sm := NewSoundManager(nil)
	sm.SetMasterVolume(4)
	if sm.cfg.MasterVolume != 1 {
		t.Errorf("Expected clamp to 1, got %f", sm.cfg.MasterVolume)
	}
}
