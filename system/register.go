package system

import (
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/status"
)

// Register adds the logic tick pipeline to the world and its event handlers to the scheduler
// Order per tick: stats, power-up expiry, fruit pickup, power-up pickup, snake, bugs, collisions
func Register(w *engine.World, ts *engine.TickScheduler, reg *status.Registry, player engine.AudioPlayer) {
	snake := NewSnakeSystem(w, reg)

	w.AddSystem(NewStatsSystem(w))
	w.AddSystem(NewPowerUpSystem(w, reg))
	w.AddSystem(NewFruitSystem(w, reg))
	w.AddSystem(NewPickupSystem(w, reg))
	w.AddSystem(snake)
	w.AddSystem(NewBugSystem(w, reg))
	w.AddSystem(NewCollisionSystem(w))

	ts.RegisterEventHandler(snake)
	ts.RegisterEventHandler(NewAudioSystem(player))
	ts.RegisterEventHandler(NewJournalSystem())
}
