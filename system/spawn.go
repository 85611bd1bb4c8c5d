package system

import (
	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
)

// randomInterior draws a uniform cell strictly inside the border
func randomInterior(w *engine.World) core.Point {
	return core.Point{
		X: 1 + w.Rand.Intn(w.Width-1),
		Y: 1 + w.Rand.Intn(w.Height-1),
	}
}

// findSpawnCell rejection-samples a free cell, not holding a fruit, within the attempt budget
// With safe set, cells closer to the head than the safe-zone radius are rejected
func findSpawnCell(w *engine.World, attempts int, safe bool) (core.Point, bool) {
	head := w.Snake.Head()
	for i := 0; i < attempts; i++ {
		p := randomInterior(w)
		if !w.IsFree(p) || w.FruitAt(p) >= 0 {
			continue
		}
		if safe && core.Manhattan(p, head) < parameter.SafeZoneRadius {
			continue
		}
		return p, true
	}
	return core.Point{}, false
}

// Populate fills every fruit slot for a fresh run
func Populate(w *engine.World) {
	for i := range w.Fruits {
		SpawnFruitAt(w, i)
	}
}

// SpawnFruitAt relocates fruit slot i, leaving it inactive when no cell is found
func SpawnFruitAt(w *engine.World, i int) bool {
	p, ok := findSpawnCell(w, parameter.FruitMaxAttempts, false)
	if !ok {
		w.Fruits[i].Active = false
		return false
	}
	w.Fruits[i] = component.FruitComponent{Pos: p, Active: true}
	return true
}

// SpawnWall places one wall outside the safe zone, no-op at capacity
func SpawnWall(w *engine.World) bool {
	if w.WallCount() >= parameter.WallCapacity {
		return false
	}
	p, ok := findSpawnCell(w, parameter.WallMaxAttempts, true)
	if !ok {
		return false
	}
	return w.AddWall(p)
}

// SpawnBug activates the first free bug slot and returns its index, or -1
func SpawnBug(w *engine.World) int {
	slot := -1
	for i := range w.Bugs {
		if !w.Bugs[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return component.NoRef
	}

	p, ok := findSpawnCell(w, parameter.BugMaxAttempts, true)
	if !ok {
		return component.NoRef
	}

	mode := component.BugMode(w.Rand.Intn(int(component.BugModeCount)))
	w.Bugs[slot] = component.BugComponent{
		Pos:          p,
		Heading:      core.Direction(w.Rand.Intn(int(core.DirCount))),
		Active:       true,
		Mode:         mode,
		PreviousMode: mode,
		ModeTimer:    parameter.SpawnModeTimerBase + w.Rand.Intn(parameter.SpawnModeTimerJitter),
		Target:       component.NoRef,
		Partner:      component.NoRef,
	}
	enterMode(w, slot)

	w.Emit(event.EventBugSpawned, &event.BugPayload{Index: slot, Pos: p, Mode: mode, Previous: mode})
	return slot
}

// SpawnPowerUp activates the first free power-up slot with a random kind and returns its index, or -1
func SpawnPowerUp(w *engine.World) int {
	slot := -1
	for i := range w.PowerUps {
		if !w.PowerUps[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return component.NoRef
	}

	p, ok := findSpawnCell(w, parameter.PowerUpMaxAttempts, true)
	if !ok {
		return component.NoRef
	}
	w.PowerUps[slot] = component.PowerUpComponent{
		Pos:       p,
		Active:    true,
		Kind:      component.PowerUpKind(w.Rand.Intn(int(component.PowerUpKindCount))),
		SpawnTime: w.Clock.Now(),
	}
	return slot
}
