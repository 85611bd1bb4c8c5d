package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newWorld builds a 40x20 world; the snake head sits at (20,10) heading right
func newWorld(t *testing.T, rng vmath.Rand) (*engine.World, *engine.MockTimeProvider, *status.Registry) {
	t.Helper()
	clock := engine.NewMockTimeProvider(epoch)
	reg := status.NewRegistry()
	if rng == nil {
		rng = vmath.NewFastRand(42)
	}
	return engine.NewWorld(40, 20, rng, clock, reg), clock, reg
}

// placeBug activates slot i with a long mode timer so no reselection happens
func placeBug(w *engine.World, i int, pos core.Point, mode component.BugMode) *component.BugComponent {
	w.Bugs[i] = component.BugComponent{
		Pos:          pos,
		Active:       true,
		Mode:         mode,
		PreviousMode: mode,
		ModeTimer:    1000,
		Target:       component.NoRef,
		Partner:      component.NoRef,
	}
	return &w.Bugs[i]
}

// countEvents drains the queue and counts events of type typ
func countEvents(w *engine.World, typ event.EventType) int {
	n := 0
	for _, ev := range w.Events.Consume() {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func assertSnakeShape(t *testing.T, w *engine.World) {
	t.Helper()
	segs := w.Snake.Segments
	if len(segs) == 0 || len(segs) > parameter.SnakeCapacity {
		t.Fatalf("snake length %d out of range", len(segs))
	}
	for i := 1; i < len(segs); i++ {
		if !core.Adjacent(segs[i-1], segs[i]) {
			t.Fatalf("segments %d and %d not adjacent: %v %v", i-1, i, segs[i-1], segs[i])
		}
	}
}
