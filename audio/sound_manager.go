package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player gives audible feedback for canvas commands
type Player interface {
	// Tick plays on palette change
	Tick()
	// Chime plays on canvas clear
	Chime()
	Close()
}

// Nop is the silent Player
type Nop struct{}

func (Nop) Tick()  {}
func (Nop) Chime() {}
func (Nop) Close() {}

// SoundManager plays short tones through the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		rate:  sampleRate,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sm.rate, sm.rate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Tick plays a short high tone
func (sm *SoundManager) Tick() {
	sm.play(tickFreq, tickDuration)
}

// Chime plays a longer low tone
func (sm *SoundManager) Chime() {
	sm.play(chimeFreq, chimeDuration)
}

func (sm *SoundManager) play(freq float64, duration time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	tone, err := NewTone(sm.rate, freq, duration)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}

	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker
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

// NewPlayer returns a speaker-backed Player when enabled and available, Nop otherwise.
// Audio failure is non-fatal; the canvas runs silent.
func NewPlayer(enabled bool) Player {
	if !enabled {
		return Nop{}
	}
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		return Nop{}
	}
	return sm
}
