package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.StartLevel)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 150*time.Millisecond, cfg.InputDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.InputRepeatDelay)
	assert.True(t, cfg.Audio.Enabled)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
levels_dir: /tmp/screens
start_level: 3
tick_interval: 40ms
input_delay: 200ms
strict_rules: true
audio:
  enabled: false
  master_volume: 0.25
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/screens", cfg.LevelsDir)
	assert.Equal(t, 3, cfg.StartLevel)
	assert.Equal(t, 40*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 200*time.Millisecond, cfg.InputDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.InputRepeatDelay, "unset keys keep their defaults")
	assert.True(t, cfg.StrictRules)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "start_level: 3\nwatch_levels: false\n")
	t.Setenv(EnvStartLevel, "5")
	t.Setenv(EnvWatch, "true")
	t.Setenv(EnvTick, "10ms")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.StartLevel)
	assert.True(t, cfg.WatchLevels)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "start_level: [1, 2\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "tick_interval: 0s\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	t.Setenv(EnvDebug, "sometimes")
	_, err = Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative level", func(c *Config) { c.StartLevel = -1 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"zero propel delay", func(c *Config) { c.PropelDelayTicks = 0 }},
		{"negative input delay", func(c *Config) { c.InputDelay = -time.Millisecond }},
		{"zero repeat delay", func(c *Config) { c.InputRepeatDelay = 0 }},
		{"loud", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
		{"no sample rate", func(c *Config) { c.Audio.SampleRate = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestAudioConfig(t *testing.T) {
	cfg := Default()
	cfg.Audio.MasterVolume = 0.3
	cfg.Audio.Enabled = false

	ac := cfg.AudioConfig()
	assert.False(t, ac.Enabled)
	assert.Equal(t, 0.3, ac.MasterVolume)
	assert.Equal(t, 44100, ac.SampleRate)
}
