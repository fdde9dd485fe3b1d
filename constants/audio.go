package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultVolume is the master volume in [0,1]
	DefaultVolume = 0.5
)

// Eat Sound Timing (two rising notes)
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 120 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundRelease       = 40 * time.Millisecond
	EatSoundNote1Freq     = 988.0  // B5
	EatSoundNote2Freq     = 1319.0 // E6
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundFreq     = 110.0
)
