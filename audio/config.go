package audio

import (
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/parameter"
)

// AudioConfig holds mixing preferences
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
}

// DefaultAudioConfig returns the built-in mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.DefaultMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundEat:     0.8,
			core.SoundPowerUp: 0.8,
			core.SoundReject:  0.5,
			core.SoundBlocked: 0.6,
			core.SoundKill:    0.6,
			core.SoundDeath:   1.0,
		},
	}
}

// volumeFor returns the effective gain of a cue, 0 when unset
func (c *AudioConfig) volumeFor(s core.SoundType) float64 {
	return c.EffectVolumes[s] * c.MasterVolume
}
