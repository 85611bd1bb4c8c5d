package system

import (
	"sync/atomic"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
)

// SnakeSystem owns heading changes and advances the snake one cell per logic tick
// Two movement states: free, and blocked-pending-redirect while invulnerable
type SnakeSystem struct {
	world *engine.World

	// Telemetry
	statRejected *atomic.Int64
	statBlocked  *atomic.Int64
	statGrown    *atomic.Int64
}

func NewSnakeSystem(world *engine.World, reg *status.Registry) *SnakeSystem {
	return &SnakeSystem{
		world:        world,
		statRejected: reg.Ints.Get("snake.rejected"),
		statBlocked:  reg.Ints.Get("snake.blocked"),
		statGrown:    reg.Ints.Get("snake.grown"),
	}
}

func (s *SnakeSystem) Name() string {
	return "snake"
}

func (s *SnakeSystem) Priority() int {
	return parameter.PrioritySnake
}

func (s *SnakeSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventHeadingRequest,
	}
}

func (s *SnakeSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if ev.Type != event.EventHeadingRequest {
		return
	}
	if payload, ok := ev.Payload.(*event.HeadingPayload); ok {
		s.RequestHeading(w, payload.Direction)
	}
}

// RequestHeading applies a turn unless it reverses into the neck
// Obstacles never refuse a turn; Update handles them on the next tick
func (s *SnakeSystem) RequestHeading(w *engine.World, d core.Direction) bool {
	snake := &w.Snake
	if d == snake.Heading {
		return true
	}

	if snake.Reverses(d) {
		s.statRejected.Add(1)
		w.Emit(event.EventHeadingRejected, &event.HeadingPayload{Direction: d})
		return false
	}

	snake.Heading = d
	return true
}

// Update advances the snake one cell
func (s *SnakeSystem) Update(w *engine.World) {
	snake := &w.Snake

	if snake.Blocked && !w.Obstructed(snake.Head().Step(snake.Heading)) {
		w.Emit(event.EventSnakeUnblocked, &event.BlockedPayload{Pos: snake.BlockedAt, Tile: snake.BlockedTile})
		snake.Blocked = false
		snake.BlockedTile = component.TileEmpty
	}

	next := snake.Head().Step(snake.Heading)
	if w.Obstructed(next) {
		if w.Modifiers.Invulnerable.Active {
			if !snake.Blocked {
				snake.Blocked = true
				snake.BlockedAt = next
				snake.BlockedTile = w.TileAt(next)
				s.statBlocked.Add(1)
				w.Emit(event.EventSnakeBlocked, &event.BlockedPayload{Pos: next, Tile: snake.BlockedTile})
			}
			return
		}
		// Lethal move: the body follows the head into the hazard without growing
		shift(snake, next)
		return
	}

	tail := shift(snake, next)
	if snake.GrowthPending > 0 && snake.Len() < parameter.SnakeCapacity {
		snake.Segments = append(snake.Segments, tail)
		snake.GrowthPending--
		s.statGrown.Add(1)
	}
}

// shift moves every segment one slot toward the head and returns the vacated tail cell
func shift(snake *component.SnakeComponent, head core.Point) core.Point {
	segs := snake.Segments
	tail := segs[len(segs)-1]
	copy(segs[1:], segs[:len(segs)-1])
	segs[0] = head
	return tail
}
