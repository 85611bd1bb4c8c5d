package system

import (
	"sync/atomic"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/vmath"
)

// PowerUpSystem ages out uncollected power-ups and counts down the global modifiers
type PowerUpSystem struct {
	world *engine.World

	// Telemetry
	statExpired *atomic.Int64
}

func NewPowerUpSystem(world *engine.World, reg *status.Registry) *PowerUpSystem {
	return &PowerUpSystem{
		world:       world,
		statExpired: reg.Ints.Get("powerup.expired"),
	}
}

func (s *PowerUpSystem) Name() string {
	return "powerup"
}

func (s *PowerUpSystem) Priority() int {
	return parameter.PriorityPowerUp
}

func (s *PowerUpSystem) Update(w *engine.World) {
	now := w.Clock.Now()
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		if !p.Active || now.Sub(p.SpawnTime) <= parameter.PowerUpTTL {
			continue
		}
		p.Active = false
		s.statExpired.Add(1)
		w.Emit(event.EventPowerUpExpired, &event.PowerUpPayload{Index: i, Kind: p.Kind, Pos: p.Pos})
		if vmath.OneIn(w.Rand, parameter.PowerUpRespawnOneIn) {
			SpawnPowerUp(w)
		}
	}

	w.Modifiers.Invulnerable.Countdown()
	w.Modifiers.SpeedBoost.Countdown()
	w.Modifiers.SlowBugs.Countdown()
}

// PickupSystem collects the power-up under the head and applies its effect
type PickupSystem struct {
	world *engine.World

	// Telemetry
	statCollected *atomic.Int64
}

func NewPickupSystem(world *engine.World, reg *status.Registry) *PickupSystem {
	return &PickupSystem{
		world:         world,
		statCollected: reg.Ints.Get("powerup.collected"),
	}
}

func (s *PickupSystem) Name() string {
	return "pickup"
}

func (s *PickupSystem) Priority() int {
	return parameter.PriorityPickup
}

func (s *PickupSystem) Update(w *engine.World) {
	head := w.Snake.Head()
	i := w.PowerUpAt(head)
	if i < 0 {
		return
	}

	p := &w.PowerUps[i]
	p.Active = false
	s.statCollected.Add(1)
	w.Stats.RecordPowerUp()

	Apply(w, p.Kind)
	w.Emit(event.EventPowerUpCollected, &event.PowerUpPayload{Index: i, Kind: p.Kind, Pos: p.Pos})
}

// Apply activates the effect of a collected power-up
func Apply(w *engine.World, kind component.PowerUpKind) {
	switch kind {
	case component.PowerUpInvulnerability:
		w.Modifiers.Invulnerable.Activate(parameter.InvulnerabilityTicks)
	case component.PowerUpSpeedBoost:
		w.Modifiers.SpeedBoost.Activate(parameter.SpeedBoostTicks)
	case component.PowerUpSlowBugs:
		w.Modifiers.SlowBugs.Activate(parameter.SlowBugsTicks)
	case component.PowerUpExplosion:
		Explode(w, w.Snake.Head(), parameter.ExplosionRadius)
	}
}

// Explode kills every active bug within Chebyshev radius of center and returns the count
func Explode(w *engine.World, center core.Point, radius int) int {
	killed := 0
	for i := range w.Bugs {
		b := &w.Bugs[i]
		if !b.Active || core.Chebyshev(b.Pos, center) > radius {
			continue
		}
		killBug(w, i, event.KillByExplosion)
		killed++
	}
	return killed
}

// killBug deactivates bug i and records the kill under its current mode
func killBug(w *engine.World, i int, cause event.KillCause) {
	b := &w.Bugs[i]
	b.Active = false
	w.Stats.RecordKill(b.Mode)
	w.Emit(event.EventBugKilled, &event.BugPayload{Index: i, Pos: b.Pos, Mode: b.Mode, Previous: b.PreviousMode, Cause: cause})
}
