package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear frequency glide
type oscillator struct {
	freq     float64
	glide    float64 // Hz change over the full duration
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
// Sine tones come from beep's generator, the other shapes are synthesized here
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	if wave == WaveSine {
		if sine, err := generators.SineTone(rate, freq); err == nil {
			return beep.Take(rate.N(duration), sine)
		}
	}
	return &oscillator{freq: freq, duration: rate.N(duration), wave: wave, rate: rate}
}

// NewGlide creates a finite oscillator sweeping from freq to freq+glide
func NewGlide(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, glide: glide, duration: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.glide*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound is a short bell for fruit pickup
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewEnvelope(NewOscillator(880.0, parameter.EatSoundDuration, WaveSine, rate),
		parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundFundamentalRelease, rate)
	over := NewEnvelope(NewOscillator(1760.0, parameter.EatSoundDuration, WaveSine, rate),
		parameter.EatSoundDuration, parameter.EatSoundAttack, parameter.EatSoundOvertoneRelease, rate)

	mixed := beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3))
	return newVolume(mixed, cfg.volumeFor(core.SoundEat))
}

// CreatePowerUpSound is a rising two-note chime
func CreatePowerUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(987.77, parameter.PowerUpSoundNote1Duration, WaveSquare, rate),
		parameter.PowerUpSoundNote1Duration, parameter.PowerUpSoundAttack, parameter.PowerUpSoundNote1Release, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, parameter.PowerUpSoundNote2Duration, WaveSquare, rate),
		parameter.PowerUpSoundNote2Duration, parameter.PowerUpSoundAttack, parameter.PowerUpSoundNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volumeFor(core.SoundPowerUp)*0.5)
}

// CreateRejectSound is a short low buzz for a refused turn
func CreateRejectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(110.0, parameter.RejectSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.RejectSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(core.SoundReject))
}

// CreateBlockedSound is a longer square buzz for the blocked head
func CreateBlockedSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(220.0, parameter.BlockedSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.BlockedSoundDuration, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(core.SoundBlocked)*0.5)
}

// CreateKillSound is a noise burst for a destroyed bug
func CreateKillSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, parameter.KillSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(core.SoundKill)*0.6)
}

// CreateDeathSound is a falling saw sweep
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewGlide(440.0, -330.0, parameter.DeathSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.DeathSoundDuration, parameter.DeathSoundAttack, parameter.DeathSoundRelease, rate)
	return newVolume(shaped, cfg.volumeFor(core.SoundDeath)*0.6)
}

// GetSoundEffect returns the streamer for the given cue, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundEat:
		return CreateEatSound(cfg)
	case core.SoundPowerUp:
		return CreatePowerUpSound(cfg)
	case core.SoundReject:
		return CreateRejectSound(cfg)
	case core.SoundBlocked:
		return CreateBlockedSound(cfg)
	case core.SoundKill:
		return CreateKillSound(cfg)
	case core.SoundDeath:
		return CreateDeathSound(cfg)
	default:
		return nil
	}
}
