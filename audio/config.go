package audio

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	"github.com/lixenwraith/rockfall/constant"
	"github.com/lixenwraith/rockfall/core"
)

// Environment overrides
const (
	EnvAudioEnabled = "ROCKFALL_AUDIO_ENABLED"
	EnvMasterVolume = "ROCKFALL_MASTER_VOLUME"
	EnvSFXVolumes   = "ROCKFALL_SFX_VOLUMES"
	EnvSampleRate   = "ROCKFALL_SAMPLE_RATE"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the built-in settings, every sound at full effect volume
// except the tick which plays on every input
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[core.SoundType]float64, core.SoundTypeCount)
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		vols[s] = 1.0
	}
	vols[core.SoundTick] = 0.4
	vols[core.SoundDirt] = 0.6

	return &AudioConfig{
		Enabled:       true,
		MasterVolume:  constant.AudioMasterVolume,
		SampleRate:    constant.AudioSampleRate,
		EffectVolumes: vols,
	}
}

// Volume returns the effective volume of a sound
func (c *AudioConfig) Volume(s core.SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overrides settings from environment variables, malformed values are ignored
func (c *AudioConfig) ApplyEnv() {
	// Check if audio is enabled
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Load effect volumes from JSON keyed by sound name
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if s, ok := core.SoundByName(name); ok {
					c.EffectVolumes[s] = clampVolume(v)
				} else {
					log.Printf("Unknown sound in %s: %q", EnvSFXVolumes, name)
				}
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
