package system

import (
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
)

// CollisionSystem classifies the head cell after movement and resolves bug contact
// Invulnerability turns every lethal outcome into a no-op, body contact always kills the bug
type CollisionSystem struct {
	world *engine.World
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World) {
	head := w.Snake.Head()
	invulnerable := w.Modifiers.Invulnerable.Active

	var cause event.DeathCause
	deadly := false
	switch {
	case !w.InBounds(head):
		cause, deadly = event.DeathOutOfBounds, true
	case w.WallAt(head):
		cause, deadly = event.DeathWall, true
	case w.Snake.BodyAt(head):
		cause, deadly = event.DeathSelf, true
	}
	if deadly && invulnerable {
		deadly = false
	}

	for i := range w.Bugs {
		if deadly {
			break
		}
		b := &w.Bugs[i]
		if !b.Active {
			continue
		}
		j := w.Snake.IndexOf(b.Pos)
		switch {
		case j < 0:
		case j < parameter.NeckLength:
			if !invulnerable {
				cause, deadly = event.DeathBug, true
			}
		default:
			killBug(w, i, event.KillByBody)
			w.BodyKills++
		}
	}

	if deadly {
		w.Kill(cause, head)
	}
}
