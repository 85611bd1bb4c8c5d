package system

import (
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/parameter"
)

// StatsSystem samples heading and length at the start of every logic tick
type StatsSystem struct {
	world *engine.World
}

func NewStatsSystem(world *engine.World) *StatsSystem {
	return &StatsSystem{world: world}
}

func (s *StatsSystem) Name() string {
	return "stats"
}

func (s *StatsSystem) Priority() int {
	return parameter.PriorityStats
}

func (s *StatsSystem) Update(w *engine.World) {
	w.Stats.RecordTick(w.Snake.Heading, w.Snake.Len())
}
