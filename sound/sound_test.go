package sound_test

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/tetris/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to the end and returns the number of samples and the peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestClearSoundLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	note := rate.N(60 * time.Millisecond)

	for n := 1; n <= 4; n++ {
		samples, peak := drain(t, sound.ClearSound(n, 1))
		assert.Equal(t, n*note, samples, "%d rows", n)
		assert.InDelta(t, 1.0, peak, 0.01)
	}
}

func TestClearSoundOutOfRange(t *testing.T) {
	assert.Nil(t, sound.ClearSound(0, 1))
	assert.Nil(t, sound.ClearSound(5, 1))
}

func TestGameOverSound(t *testing.T) {
	rate := beep.SampleRate(44100)

	samples, peak := drain(t, sound.GameOverSound(0.5))

	assert.Equal(t, 3*rate.N(180*time.Millisecond), samples)
	assert.InDelta(t, 0.5, peak, 0.01)
}

func TestMutedSound(t *testing.T) {
	_, peak := drain(t, sound.GameOverSound(0))

	assert.Zero(t, peak)
}

func TestPlayerWithoutSpeaker(t *testing.T) {
	p := sound.NewPlayer(2)

	// Effects before Init are skipped rather than blocking or panicking.
	p.LinesCleared(4)
	p.GameOver()
	p.Close()
}
