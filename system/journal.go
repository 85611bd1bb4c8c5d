package system

import (
	"log"

	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
)

// JournalSystem writes notable game events to the debug log
type JournalSystem struct{}

func NewJournalSystem() *JournalSystem {
	return &JournalSystem{}
}

func (s *JournalSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSnakeDied,
		event.EventSnakeBlocked,
		event.EventSnakeUnblocked,
		event.EventBugSpawned,
		event.EventBugKilled,
		event.EventPowerUpCollected,
		event.EventPowerUpExpired,
		event.EventWallSpawned,
		event.EventWallDestroyed,
	}
}

func (s *JournalSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.DeathPayload:
		log.Printf("[GAME] tick %d: died (%s) at %v, length %d", ev.Tick, p.Cause, p.Pos, w.Snake.Len())
	case *event.BlockedPayload:
		log.Printf("[SNAKE] tick %d: %s %s at %v", ev.Tick, ev.Type, p.Tile, p.Pos)
	case *event.BugPayload:
		log.Printf("[BUG] tick %d: %s #%d %s at %v", ev.Tick, ev.Type, p.Index, p.Mode.Tag(), p.Pos)
	case *event.PowerUpPayload:
		log.Printf("[POWERUP] tick %d: %s %s at %v", ev.Tick, ev.Type, p.Kind, p.Pos)
	case *event.WallPayload:
		if w.Debug {
			log.Printf("[WALL] tick %d: %s at %v (%d walls)", ev.Tick, ev.Type, p.Pos, w.WallCount())
		}
	}
}
