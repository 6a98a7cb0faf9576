package audio

import (
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "150")
	t.Setenv(EnvSFXVolumes, `{"chomp":0.25,"unknown":1}`)
	t.Setenv(EnvSampleRate, "44100")

	cfg := DefaultAudioConfig()
	ApplyEnv(cfg)

	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected clamped volume 1, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[core.SoundChomp] != 0.25 {
		t.Errorf("Expected chomp 0.25, got %f", cfg.EffectVolumes[core.SoundChomp])
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected 44100, got %d", cfg.SampleRate)
	}
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "loud")
	t.Setenv(EnvSampleRate, "-5")

	cfg := DefaultAudioConfig()
	want := *cfg
	ApplyEnv(cfg)

	if cfg.Enabled != want.Enabled || cfg.MasterVolume != want.MasterVolume || cfg.SampleRate != want.SampleRate {
		t.Errorf("Malformed env changed config: %+v", cfg)
	}
}
