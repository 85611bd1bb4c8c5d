package system

import (
	"sync/atomic"

	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/vmath"
)

// FruitSystem resolves fruit pickup and the milestone spawns it feeds
type FruitSystem struct {
	world *engine.World

	// Telemetry
	statWalls    *atomic.Int64
	statBugs     *atomic.Int64
	statPowerUps *atomic.Int64
}

func NewFruitSystem(world *engine.World, reg *status.Registry) *FruitSystem {
	return &FruitSystem{
		world:        world,
		statWalls:    reg.Ints.Get("fruit.milestone_walls"),
		statBugs:     reg.Ints.Get("fruit.milestone_bugs"),
		statPowerUps: reg.Ints.Get("fruit.powerups"),
	}
}

func (s *FruitSystem) Name() string {
	return "fruit"
}

func (s *FruitSystem) Priority() int {
	return parameter.PriorityFruit
}

// Update eats the fruit under the head, if any
func (s *FruitSystem) Update(w *engine.World) {
	head := w.Snake.Head()
	i := w.FruitAt(head)
	if i < 0 {
		return
	}

	w.Fruits[i].Active = false
	w.Snake.GrowthPending++
	SpawnFruitAt(w, i)

	w.FruitsEaten++
	w.Stats.RecordFruit()
	w.Emit(event.EventFruitEaten, &event.FruitPayload{Index: i, Pos: head, Eaten: w.FruitsEaten})

	if w.FruitsEaten%parameter.WallEveryFruits == 0 && SpawnWall(w) {
		s.statWalls.Add(1)
	}
	if w.FruitsEaten%parameter.BugEveryFruits == 0 {
		for n := 0; n <= w.BodyKills; n++ {
			if SpawnBug(w) >= 0 {
				s.statBugs.Add(1)
			}
		}
		w.BodyKills = 0
	}
	if vmath.OneIn(w.Rand, parameter.PowerUpChanceOneIn) && SpawnPowerUp(w) >= 0 {
		s.statPowerUps.Add(1)
	}
}
