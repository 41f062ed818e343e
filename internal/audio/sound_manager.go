// Package audio synthesizes the game's sound effects with beep.
// Nothing is loaded from disk; every effect is generated on demand.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects. The platform holds a Player so muted and
// headless sessions can use Nop.
type Player interface {
	Play(s Sound)
	Close()
}

// Nop is a Player that plays nothing.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Close() {}

// SoundManager mixes effects onto the system speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a manager; call Initialize before playing.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: clampVolume(volume),
	}
}

// Initialize opens the speaker. It fails when no audio device exists.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a sound effect. It is a no-op before Initialize.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	st := NewSound(s, sampleRate, sm.volume)
	if st == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// SetVolume changes the volume of sounds played from now on.
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(v)
}

// Volume returns the current volume in [0, 1].
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Close stops every playing sound and releases the speaker.
func (sm *SoundManager) Close() {
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

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
