package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/vmath"
)

// BugSystem runs the adversary state machine: mode timer, heading policy, slow-bugs roll, movement
type BugSystem struct {
	world *engine.World

	// Telemetry
	statReselect  *atomic.Int64
	statWallsEat  *atomic.Int64
	statPanicDrop *atomic.Int64
	statSkipped   *atomic.Int64
}

func NewBugSystem(world *engine.World, reg *status.Registry) *BugSystem {
	return &BugSystem{
		world:         world,
		statReselect:  reg.Ints.Get("bug.reselect"),
		statWallsEat:  reg.Ints.Get("bug.walls_eaten"),
		statPanicDrop: reg.Ints.Get("bug.panic_walls"),
		statSkipped:   reg.Ints.Get("bug.slow_skipped"),
	}
}

func (s *BugSystem) Name() string {
	return "bug"
}

func (s *BugSystem) Priority() int {
	return parameter.PriorityBug
}

// Update advances every active bug by at most one cell
func (s *BugSystem) Update(w *engine.World) {
	for i := range w.Bugs {
		b := &w.Bugs[i]
		if !b.Active {
			continue
		}

		prev := b.Mode
		expired := b.ModeTimer <= 0
		b.ModeTimer--
		if expired {
			s.reselect(w, i, prev)
		}

		forced := steer(w, i)
		b.PreviousMode = prev

		if !forced && w.Modifiers.SlowBugs.Active && vmath.OneIn(w.Rand, parameter.SlowBugsSkipOneIn) {
			s.statSkipped.Add(1)
			continue
		}

		s.move(w, i)
	}
}

// reselect draws a new mode, resets the timer and runs the mode entry hook
func (s *BugSystem) reselect(w *engine.World, i int, prev component.BugMode) {
	b := &w.Bugs[i]
	b.Mode = SelectMode(w.Rand, ModeWeights(w))
	b.ModeTimer = parameter.ModeTimerBase + w.Rand.Intn(parameter.ModeTimerJitter)
	s.statReselect.Add(1)

	if b.Mode == component.BugPanic && prev != component.BugPanic && w.WallCount() < parameter.WallCapacity {
		// The bug's own cell is excluded from the occupancy scan
		if w.IsFreeFor(b.Pos, i) && w.AddWall(b.Pos) {
			s.statPanicDrop.Add(1)
		}
	}

	enterMode(w, i)

	if b.Mode != prev {
		if w.Debug {
			log.Printf("[BUG] %d %s -> %s at %v", i, prev.Tag(), b.Mode.Tag(), b.Pos)
		}
		w.Emit(event.EventBugModeChanged, &event.BugPayload{Index: i, Pos: b.Pos, Mode: b.Mode, Previous: prev})
	}
}

// move applies the resolved heading: out of bounds stays put, walls stop all but aggressive bugs
func (s *BugSystem) move(w *engine.World, i int) {
	b := &w.Bugs[i]
	next := b.Pos.Step(b.Heading)

	if !w.InBounds(next) {
		return
	}
	if w.WallAt(next) {
		if b.Mode != component.BugAggressive {
			b.Heading = core.Direction(w.Rand.Intn(int(core.DirCount)))
			b.ModeTimer = 0
			return
		}
		w.RemoveWallAt(next)
		s.statWallsEat.Add(1)
	}
	b.Pos = next
}

// ModeWeights returns the contextual weight table indexed by mode
func ModeWeights(w *engine.World) [component.BugModeCount]int {
	weights := parameter.BugModeBaseWeights
	if w.FruitsEaten >= parameter.LateGameFruits {
		weights[component.BugAmbusher] += parameter.LateGameAmbushBonus
		weights[component.BugAggressive] += parameter.LateGameAggroBonus
	}
	if w.WallCount() > parameter.TrapWallThreshold {
		weights[component.BugTrapMaster] += parameter.TrapMasterBonus
	}
	if w.ActiveBugCount() >= parameter.PackHunterMinBugs {
		weights[component.BugPackHunter] += parameter.PackHunterBonus
	}
	return weights
}

// SelectMode draws one mode by cumulative weight subtraction
func SelectMode(r vmath.Rand, weights [component.BugModeCount]int) component.BugMode {
	total := 0
	for _, wt := range weights {
		total += wt
	}
	pick := r.Intn(total)
	m := 0
	for m < len(weights)-1 && pick >= weights[m] {
		pick -= weights[m]
		m++
	}
	return component.BugMode(m)
}

// enterMode binds mode-specific references after a mode is assigned
func enterMode(w *engine.World, i int) {
	b := &w.Bugs[i]
	switch b.Mode {
	case component.BugAmbusher:
		b.Target = findStrategicFruit(w, b.Pos)
	case component.BugPackHunter:
		b.Partner = component.NoRef
		for j := range w.Bugs {
			if j != i && w.Bugs[j].Active && w.Bugs[j].Mode != component.BugPackHunter {
				b.Partner = j
				break
			}
		}
	}
}
