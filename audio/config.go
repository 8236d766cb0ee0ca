package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/dungeon-crawler/parameter"
)

// AudioConfig holds volume settings, loaded from the `audio` section of the config file
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"` // Per cue by SoundType name

	EffectVolumes [soundTypeCount]float64 `yaml:"-"`
}

// DefaultAudioConfig returns audio enabled at moderate volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	cfg.EffectVolumes[SoundHit] = 0.6
	return cfg
}

// Resolve folds the named volumes into EffectVolumes and clamps everything to [0, 1]
// Unknown cue names are ignored
func (c *AudioConfig) Resolve() {
	for name, v := range c.Volumes {
		for i, n := range soundNames {
			if n == name {
				c.EffectVolumes[i] = v
			}
		}
	}
	c.MasterVolume = clamp01(c.MasterVolume)
	for i := range c.EffectVolumes {
		c.EffectVolumes[i] = clamp01(c.EffectVolumes[i])
	}
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
}

// ApplyEnv overrides settings from environment variables
func (c *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv("DUNGEON_CRAWLER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("DUNGEON_CRAWLER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clamp01(float64(val) / 100.0)
		}
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
