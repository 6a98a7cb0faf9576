package constants

import "time"

// Audio Engine
const (
	// DefaultSampleRate is the speaker sample rate in Hz
	DefaultSampleRate = 48000

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two eat sounds
	MinSoundGap = 50 * time.Millisecond
)

// Chomp Sound Timing
const (
	ChompSoundDuration = 120 * time.Millisecond
	ChompSoundAttack   = 5 * time.Millisecond
	ChompSoundRelease  = 80 * time.Millisecond
)

// Crunch Sound Timing
const (
	CrunchSoundDuration = 90 * time.Millisecond
	CrunchSoundAttack   = 2 * time.Millisecond
	CrunchSoundRelease  = 60 * time.Millisecond
)

// Blip Sound Timing
const (
	BlipSoundNote1Duration = 60 * time.Millisecond
	BlipSoundNote2Duration = 90 * time.Millisecond
	BlipSoundAttack        = 5 * time.Millisecond
	BlipSoundNote1Release  = 30 * time.Millisecond
	BlipSoundNote2Release  = 60 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 450 * time.Millisecond
)
