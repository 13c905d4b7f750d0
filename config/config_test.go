package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, 0, cfg.Game.InitialLevel)
	assert.Equal(t, uint64(0), cfg.Game.Seed)
	assert.Equal(t, config.Terminal, cfg.Frontend.Kind)
	assert.Equal(t, 60, cfg.Frontend.FrameRate)
	assert.Equal(t, 30, cfg.Frontend.CellSize)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 0.5, cfg.Sound.Volume)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
game:
  initial_level: 7
  seed: 42
frontend:
  kind: gui
  cell_size: 24
sound:
  enabled: false
log_file: /tmp/tetris.log
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Game.InitialLevel)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.Equal(t, config.GUI, cfg.Frontend.Kind)
	assert.Equal(t, 24, cfg.Frontend.CellSize)
	assert.Equal(t, 60, cfg.Frontend.FrameRate, "missing keys keep defaults")
	assert.False(t, cfg.Sound.Enabled)
	assert.Equal(t, 0.5, cfg.Sound.Volume)
	assert.Equal(t, "/tmp/tetris.log", cfg.LogFile)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := config.Load("")

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "game: [1, 2"))
		assert.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("unknown frontend", func(t *testing.T) {
		_, err := config.Load(writeConfig(t, "frontend:\n  kind: vr\n"))
		assert.ErrorContains(t, err, `unknown frontend kind "vr"`)
	})
}

func TestValidateClamps(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, cfg *config.Config)
	}{
		{"level above cap", "game:\n  initial_level: 99\n", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, engine.MaxLevel, cfg.Game.InitialLevel)
		}},
		{"negative level", "game:\n  initial_level: -3\n", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 0, cfg.Game.InitialLevel)
		}},
		{"zero frame rate", "frontend:\n  frame_rate: 0\n", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, engine.FrameRate, cfg.Frontend.FrameRate)
		}},
		{"loud volume", "sound:\n  volume: 3\n", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, 1.0, cfg.Sound.Volume)
		}},
		{"empty kind", "frontend:\n  kind: \"\"\n", func(t *testing.T, cfg *config.Config) {
			assert.Equal(t, config.Terminal, cfg.Frontend.Kind)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Parse([]byte(tt.body))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}
