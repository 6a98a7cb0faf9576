package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundChomp    SoundType = iota // Eat pool
	SoundCrunch                    // Eat pool
	SoundBlip                      // Eat pool
	SoundGameOver                  // Terminal collision
	SoundTypeCount
)

// EatSounds is the fixed pool an eat sound is drawn from
var EatSounds = [...]SoundType{SoundChomp, SoundCrunch, SoundBlip}
