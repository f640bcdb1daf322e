// Package config loads game settings: built-in defaults, then an optional YAML
// file, then ROCKFALL_* environment overrides
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/rockfall/audio"
	"github.com/lixenwraith/rockfall/constant"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("config: invalid")

// Environment overrides for the game settings, audio has its own in package audio
const (
	EnvLevelsDir  = "ROCKFALL_LEVELS_DIR"
	EnvStartLevel = "ROCKFALL_START_LEVEL"
	EnvTick       = "ROCKFALL_TICK_INTERVAL"
	EnvStrict     = "ROCKFALL_STRICT_RULES"
	EnvWatch      = "ROCKFALL_WATCH_LEVELS"
	EnvDebug      = "ROCKFALL_DEBUG"
)

// Audio mirrors audio.AudioConfig for the file format
type Audio struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// Config holds every tunable of the game
type Config struct {
	// LevelsDir reads screen.N.txt files from disk; empty uses the bundled levels
	LevelsDir        string        `yaml:"levels_dir"`
	StartLevel       int           `yaml:"start_level"`
	TickInterval     time.Duration `yaml:"tick_interval"`
	PropelDelayTicks int           `yaml:"propel_delay_ticks"`
	InputDelay       time.Duration `yaml:"input_delay"`
	InputRepeatDelay time.Duration `yaml:"input_repeat_delay"`
	StrictRules      bool          `yaml:"strict_rules"`
	WatchLevels      bool          `yaml:"watch_levels"`
	Debug            bool          `yaml:"debug"`
	Audio            Audio         `yaml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		StartLevel:       1,
		TickInterval:     constant.TickInterval,
		PropelDelayTicks: constant.PropelDelayTicks,
		InputDelay:       constant.InputDelay,
		InputRepeatDelay: constant.InputRepeatDelay,
		Audio: Audio{
			Enabled:      true,
			MasterVolume: constant.AudioMasterVolume,
			SampleRate:   constant.AudioSampleRate,
		},
	}
}

// Load builds the configuration from defaults, the file at path when non-empty, and the environment
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLevelsDir); v != "" {
		c.LevelsDir = v
	}
	if v := os.Getenv(EnvStartLevel); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvStartLevel, v)
		}
		c.StartLevel = n
	}
	if v := os.Getenv(EnvTick); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvTick, v)
		}
		c.TickInterval = d
	}
	for key, dst := range map[string]*bool{
		EnvStrict: &c.StrictRules,
		EnvWatch:  &c.WatchLevels,
		EnvDebug:  &c.Debug,
	} {
		if v := os.Getenv(key); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
			}
			*dst = b
		}
	}
	return nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	switch {
	case c.StartLevel < 0:
		return fmt.Errorf("%w: start_level %d is negative", ErrInvalid, c.StartLevel)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick_interval must be positive", ErrInvalid)
	case c.PropelDelayTicks <= 0:
		return fmt.Errorf("%w: propel_delay_ticks must be positive", ErrInvalid)
	case c.InputDelay <= 0 || c.InputRepeatDelay <= 0:
		return fmt.Errorf("%w: input delays must be positive", ErrInvalid)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: audio.master_volume %.2f outside 0..1", ErrInvalid, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	return nil
}

// AudioConfig converts the audio section, then lets the audio environment variables override it
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	ac.ApplyEnv()
	return ac
}
