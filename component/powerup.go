package component

import (
	"time"

	"github.com/lixenwraith/bug-snake/core"
)

// PowerUpKind selects the effect applied on pickup
type PowerUpKind uint8

const (
	PowerUpInvulnerability PowerUpKind = iota
	PowerUpSpeedBoost
	PowerUpSlowBugs
	PowerUpExplosion

	PowerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpInvulnerability:
		return "invulnerability"
	case PowerUpSpeedBoost:
		return "speed-boost"
	case PowerUpSlowBugs:
		return "slow-bugs"
	case PowerUpExplosion:
		return "area-explosion"
	default:
		return "unknown"
	}
}

// PowerUpComponent is a collectible that expires after a fixed lifetime
type PowerUpComponent struct {
	Pos       core.Point
	Active    bool
	Kind      PowerUpKind
	SpawnTime time.Time // game time, pause excluded
}
