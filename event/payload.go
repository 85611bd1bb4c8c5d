package event

import (
	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
)

// HeadingPayload contains the requested turn
type HeadingPayload struct {
	Direction core.Direction
}

// BlockedPayload contains the hazard cell the head bumped
type BlockedPayload struct {
	Pos  core.Point
	Tile component.Tile
}

// DeathCause names the lethal collision
type DeathCause uint8

const (
	DeathOutOfBounds DeathCause = iota
	DeathWall
	DeathSelf
	DeathBug
)

func (c DeathCause) String() string {
	switch c {
	case DeathOutOfBounds:
		return "border"
	case DeathWall:
		return "wall"
	case DeathSelf:
		return "self"
	case DeathBug:
		return "bug"
	default:
		return "unknown"
	}
}

// DeathPayload contains the cause and the head cell at death
type DeathPayload struct {
	Cause DeathCause
	Pos   core.Point
}

// FruitPayload identifies the eaten fruit slot and the running total
type FruitPayload struct {
	Index int
	Pos   core.Point
	Eaten int
}

// PowerUpPayload identifies a power-up slot
type PowerUpPayload struct {
	Index int
	Kind  component.PowerUpKind
	Pos   core.Point
}

// KillCause names what destroyed a bug
type KillCause uint8

const (
	KillByBody KillCause = iota
	KillByExplosion
)

// BugPayload identifies a bug slot and its mode at the time of the event
type BugPayload struct {
	Index    int
	Pos      core.Point
	Mode     component.BugMode
	Previous component.BugMode
	Cause    KillCause
}

// WallPayload contains the wall cell
type WallPayload struct {
	Pos core.Point
}
