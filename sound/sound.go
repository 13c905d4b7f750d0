// Package sound plays short synthesized effects for game events.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	clearNoteLength    = 60 * time.Millisecond
	gameOverNoteLength = 180 * time.Millisecond
)

// Rising arpeggio, one note per cleared row.
var clearNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

var gameOverNotes = [...]float64{392.00, 329.63, 261.63}

// Player turns engine events into sounds on the system speaker.
type Player struct {
	mu          sync.Mutex
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. volume is clamped to [0,1].
func NewPlayer(volume float64) *Player {
	return &Player{
		volume: max(0, min(volume, 1)),
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker. Until Init succeeds every effect is silently skipped.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// LinesCleared plays a rising arpeggio with one note per row.
func (p *Player) LinesCleared(n int) {
	p.play(ClearSound(n, p.volume))
}

// GameOver plays a short falling phrase.
func (p *Player) GameOver() {
	p.play(GameOverSound(p.volume))
}

func (p *Player) play(s beep.Streamer) {
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// ClearSound returns the effect for clearing n rows, or nil when n is not 1..4.
func ClearSound(n int, volume float64) beep.Streamer {
	if n <= 0 || n > len(clearNotes) {
		return nil
	}
	return phrase(clearNotes[:n], clearNoteLength, volume)
}

// GameOverSound returns the game over effect.
func GameOverSound(volume float64) beep.Streamer {
	return phrase(gameOverNotes[:], gameOverNoteLength, volume)
}

func phrase(freqs []float64, length time.Duration, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, freq := range freqs {
		tone, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			// Only frequencies above the Nyquist limit fail.
			panic(fmt.Sprintf("sound: tone %v Hz: %v", freq, err))
		}
		notes = append(notes, beep.Take(sampleRate.N(length), tone))
	}
	return withVolume(beep.Seq(notes...), volume)
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
