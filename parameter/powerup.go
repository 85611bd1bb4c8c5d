package parameter

import "time"

// Power-up lifecycle
const (
	// PowerUpTTL is the game-time lifetime of an uncollected power-up
	PowerUpTTL = 20 * time.Second

	// PowerUpRespawnOneIn is the 1-in-N chance an expired power-up is replaced immediately
	PowerUpRespawnOneIn = 2
)

// Modifier windows in logic ticks
const (
	InvulnerabilityTicks = 150
	SpeedBoostTicks      = 100
	SlowBugsTicks        = 120
)

// Effects
const (
	// ExplosionRadius is the Chebyshev radius of the area explosion
	ExplosionRadius = 3

	// SpeedBoostFactor divides both the micro delay and the logic divisor
	SpeedBoostFactor = 2

	// SlowBugsSkipOneIn is the 1-in-N chance an unforced bug move is skipped
	SlowBugsSkipOneIn = 2
)
