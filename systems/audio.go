package systems

import (
	"math/rand/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/events"
)

// AudioSystem turns eat and game-over events into sounds
// Decouples game systems from direct audio access
type AudioSystem struct {
	player engine.AudioPlayer
	pick   func(n int) int
}

// NewAudioSystem creates an audio bridge; player may be nil when audio is disabled
func NewAudioSystem(player engine.AudioPlayer) *AudioSystem {
	return &AudioSystem{
		player: player,
		pick:   rand.IntN,
	}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventGameOver,
	}
}

// HandleEvent plays a random sound from the eat pool on a meal and the game-over sound on collision
func (s *AudioSystem) HandleEvent(_ *engine.World, event events.GameEvent) {
	if s.player == nil || !s.player.IsEnabled() {
		return
	}
	switch event.Type {
	case events.EventFoodEaten:
		s.player.Play(core.EatSounds[s.pick(len(core.EatSounds))])
	case events.EventGameOver:
		s.player.Play(core.SoundGameOver)
	}
}
