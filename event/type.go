package event

// EventType represents the type of game event
type EventType int

const (
	// EventHeadingRequest carries a player turn into the snake system
	// Trigger: TickScheduler on a turn command
	// Consumer: SnakeSystem | Payload: *HeadingPayload
	// Latency: dispatched immediately, before the next logic tick
	EventHeadingRequest EventType = iota

	// EventHeadingRejected signals a refused turn (reversal into the neck, or into a hazard while invulnerable)
	// Consumer: cue, journal | Payload: *HeadingPayload
	EventHeadingRejected

	// EventSnakeBlocked signals the invulnerable head bumped a hazard and stopped
	// Consumer: cue, journal | Payload: *BlockedPayload
	EventSnakeBlocked

	// EventSnakeUnblocked signals movement resumed after a redirect
	// Payload: *BlockedPayload (cell and tile that were bumped)
	EventSnakeUnblocked

	// EventSnakeDied signals the lethal collision that ends the run
	// Consumer: cue, journal | Payload: *DeathPayload
	EventSnakeDied

	// EventFruitEaten signals a fruit pickup
	// Consumer: cue | Payload: *FruitPayload
	EventFruitEaten

	// EventPowerUpCollected signals a power-up pickup and applied effect
	// Consumer: cue, journal | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerUpExpired signals a power-up aged out
	// Payload: *PowerUpPayload
	EventPowerUpExpired

	// EventBugSpawned signals a bug slot activation
	// Payload: *BugPayload
	EventBugSpawned

	// EventBugKilled signals a bug death by body contact or explosion
	// Consumer: cue, journal | Payload: *BugPayload
	EventBugKilled

	// EventBugModeChanged signals a mode reselection
	// Consumer: journal (debug) | Payload: *BugPayload
	EventBugModeChanged

	// EventWallSpawned signals a new wall (milestone or panic drop)
	// Payload: *WallPayload
	EventWallSpawned

	// EventWallDestroyed signals an aggressive bug ate a wall
	// Payload: *WallPayload
	EventWallDestroyed

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventHeadingRequest:   "heading_request",
	EventHeadingRejected:  "heading_rejected",
	EventSnakeBlocked:     "snake_blocked",
	EventSnakeUnblocked:   "snake_unblocked",
	EventSnakeDied:        "snake_died",
	EventFruitEaten:       "fruit_eaten",
	EventPowerUpCollected: "powerup_collected",
	EventPowerUpExpired:   "powerup_expired",
	EventBugSpawned:       "bug_spawned",
	EventBugKilled:        "bug_killed",
	EventBugModeChanged:   "bug_mode_changed",
	EventWallSpawned:      "wall_spawned",
	EventWallDestroyed:    "wall_destroyed",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventTypeNames[t]
}

// GameEvent is one queued occurrence
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // logic tick that produced the event
}
