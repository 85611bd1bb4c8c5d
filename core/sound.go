package core

// SoundType represents the audible cues of a run
type SoundType int

const (
	SoundEat     SoundType = iota // Fruit pickup bell
	SoundPowerUp                  // Power-up collected
	SoundReject                   // Refused heading change
	SoundBlocked                  // Invulnerable head bumped a hazard
	SoundKill                     // Bug destroyed
	SoundDeath                    // Run over
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundEat:     "eat",
	SoundPowerUp: "powerup",
	SoundReject:  "reject",
	SoundBlocked: "blocked",
	SoundKill:    "kill",
	SoundDeath:   "death",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
