package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	tickFreq     = 880.0
	tickDuration = 30 * time.Millisecond

	chimeFreq     = 440.0
	chimeDuration = 120 * time.Millisecond

	// toneVolume attenuates tones (base 2 exponent)
	toneVolume = -2.0
)

// NewTone returns a finite, attenuated sine tone
func NewTone(rate beep.SampleRate, freq float64, duration time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("sine tone %.0fHz: %w", freq, err)
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(duration), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}
