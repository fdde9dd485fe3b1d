package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// SoundManager plays game sound effects through a shared mixer.
// All methods are safe to call before Initialize; they become no-ops.
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      map[SoundType]int
}

// NewSoundManager creates a sound manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	c := *cfg
	c.MasterVolume = clampVolume(c.MasterVolume)
	return &SoundManager{
		config: &c,
		mixer:  &beep.Mixer{},
		played: make(map[SoundType]int),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
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

// SetEnabled toggles playback without touching the speaker
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	sm.config.Enabled = enabled
	sm.mu.Unlock()
}

// SetVolume sets master volume, clamped to [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	sm.config.MasterVolume = clampVolume(v)
	sm.mu.Unlock()
}

// Config returns a copy of the current settings
func (sm *SoundManager) Config() AudioConfig {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return *sm.config
}

// Play queues a sound effect on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.config.Enabled {
		return
	}

	streamer := GetSoundEffect(soundType, sm.config)
	if streamer == nil {
		return
	}

	// Mixer is read by the speaker goroutine
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[soundType]++
}

// Played returns how many times soundType reached the mixer
func (sm *SoundManager) Played(soundType SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[soundType]
}

// HandleEvent maps game events to sound effects
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventFoodEaten:
		sm.Play(SoundEat)
	case engine.EventGameOver:
		sm.Play(SoundGameOver)
	default:
		log.Printf("audio: no sound for event %s", ev.Type)
	}
}

var _ engine.EventHandler = (*SoundManager)(nil)
