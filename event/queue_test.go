package event

import (
	"testing"

	"github.com/lixenwraith/bug-snake/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(GameEvent{Type: EventFruitEaten, Tick: 1})
	q.Push(GameEvent{Type: EventBugKilled, Tick: 2})

	got := q.Consume()
	if len(got) != 2 {
		t.Fatalf("Consume returned %d events, want 2", len(got))
	}
	if got[0].Type != EventFruitEaten || got[1].Type != EventBugKilled {
		t.Errorf("events out of order: %v", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after Consume: %d", q.Len())
	}
	if q.Consume() != nil {
		t.Error("second Consume should return nil")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventWallSpawned, Tick: uint64(i)})
	}

	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("got %d events, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Tick != 10 {
		t.Errorf("oldest surviving tick = %d, want 10", got[0].Tick)
	}
	if got[len(got)-1].Tick != uint64(total-1) {
		t.Errorf("newest tick = %d, want %d", got[len(got)-1].Tick, total-1)
	}
}

type recordingHandler struct {
	types []EventType
	seen  []EventType
	queue *Queue
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(_ int, ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if ev.Type == EventFruitEaten && h.queue != nil {
		h.queue.Push(GameEvent{Type: EventWallSpawned})
	}
}

func TestRouterDispatchesFollowUps(t *testing.T) {
	q := NewQueue()
	r := NewRouter[int](q)
	h := &recordingHandler{types: []EventType{EventFruitEaten, EventWallSpawned}, queue: q}
	r.Register(h)

	q.Push(GameEvent{Type: EventFruitEaten})
	q.Push(GameEvent{Type: EventBugKilled}) // no handler
	r.DispatchAll(0)

	if len(h.seen) != 2 || h.seen[0] != EventFruitEaten || h.seen[1] != EventWallSpawned {
		t.Errorf("handler saw %v", h.seen)
	}
	if r.HandlerCount(EventBugKilled) != 0 {
		t.Error("unexpected handler for EventBugKilled")
	}
}

func TestEventTypeString(t *testing.T) {
	if EventSnakeDied.String() != "snake_died" {
		t.Errorf("String() = %q", EventSnakeDied.String())
	}
	if EventType(999).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
}
