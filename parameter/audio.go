package parameter

import "time"

// Audio hardware
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive plays of the same cue
	MinSoundGap = 50 * time.Millisecond
)

// Default mix
const (
	DefaultMasterVolume = 0.5
)

// Eat: two-partial bell
const (
	EatSoundDuration           = 300 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 280 * time.Millisecond
	EatSoundOvertoneRelease    = 120 * time.Millisecond
)

// Power-up: rising two-note chime
const (
	PowerUpSoundNote1Duration = 80 * time.Millisecond
	PowerUpSoundNote2Duration = 220 * time.Millisecond
	PowerUpSoundAttack        = 5 * time.Millisecond
	PowerUpSoundNote1Release  = 40 * time.Millisecond
	PowerUpSoundNote2Release  = 160 * time.Millisecond
)

// Reject and blocked: short buzzes
const (
	RejectSoundDuration  = 80 * time.Millisecond
	BlockedSoundDuration = 150 * time.Millisecond
	BuzzSoundAttack      = 5 * time.Millisecond
	BuzzSoundRelease     = 30 * time.Millisecond
)

// Kill: noise burst
const (
	KillSoundDuration = 120 * time.Millisecond
	KillSoundAttack   = 2 * time.Millisecond
	KillSoundRelease  = 100 * time.Millisecond
)

// Death: falling saw
const (
	DeathSoundDuration = 600 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 400 * time.Millisecond
)
