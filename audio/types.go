package audio

import "github.com/lixenwraith/snake/constants"

// SoundType identifies a sound effect
type SoundType int

const (
	SoundEat SoundType = iota
	SoundGameOver
)

func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultAudioConfig returns audio enabled at the default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultVolume,
		SampleRate:   constants.AudioSampleRate,
	}
}

// clampVolume keeps v in [0,1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
