package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
)

// System is one stage of the frame or fixed-tick pipeline
// Update runs under the world write lock
type System interface {
	Update(world *World, dt time.Duration)
	Priority() int // Lower values run first
}

// AudioPlayer is the audio surface systems depend on
// Implemented by audio.SoundManager; nil when audio is disabled
type AudioPlayer interface {
	Play(sound core.SoundType) bool
	IsEnabled() bool
}
