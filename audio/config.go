package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/vi-snake/core"
)

// Environment variables overriding audio settings
const (
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME" // 0-100
	EnvSFXVolumes   = "VI_SNAKE_SFX_VOLUMES"   // JSON object, e.g. {"chomp":0.5}
	EnvSampleRate   = "VI_SNAKE_SAMPLE_RATE"
)

// sfxNames maps JSON keys to sound types
var sfxNames = map[string]core.SoundType{
	"chomp":    core.SoundChomp,
	"crunch":   core.SoundCrunch,
	"blip":     core.SoundBlip,
	"gameover": core.SoundGameOver,
}

// SoundByName resolves a config key such as "chomp" to its sound type
func SoundByName(name string) (core.SoundType, bool) {
	st, ok := sfxNames[name]
	return st, ok
}

// SoundName is the inverse of SoundByName, empty for unknown types
func SoundName(st core.SoundType) string {
	for name, t := range sfxNames {
		if t == st {
			return name
		}
	}
	return ""
}

// ApplyEnv overrides cfg from environment variables; malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = ClampVolume(float64(val) / 100.0)
		}
	}

	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[core.SoundType]float64)
			}
			for name, v := range volumes {
				if st, ok := sfxNames[name]; ok {
					cfg.EffectVolumes[st] = ClampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// ClampVolume limits v to [0, 1]
func ClampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
