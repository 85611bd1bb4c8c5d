package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/vmath"
)

func TestPowerUpExpiresAfterTTL(t *testing.T) {
	// Draw 1 loses the respawn coin flip
	w, clock, reg := newWorld(t, &vmath.Sequence{Values: []int{1}})
	w.PowerUps[0] = component.PowerUpComponent{Pos: core.Point{X: 5, Y: 5}, Active: true, SpawnTime: clock.Now()}
	sys := NewPowerUpSystem(w, reg)

	clock.Advance(parameter.PowerUpTTL)
	sys.Update(w)
	if !w.PowerUps[0].Active {
		t.Fatal("expired at exactly the TTL")
	}

	clock.Advance(time.Second)
	sys.Update(w)
	if w.PowerUps[0].Active {
		t.Error("power-up survived past the TTL")
	}
	if countEvents(w, event.EventPowerUpExpired) != 1 {
		t.Error("missing expiry event")
	}
}

func TestModifierWindows(t *testing.T) {
	w, _, reg := newWorld(t, nil)
	sys := NewPowerUpSystem(w, reg)
	Apply(w, component.PowerUpSpeedBoost)

	for i := 0; i < parameter.SpeedBoostTicks-1; i++ {
		sys.Update(w)
	}
	if !w.Modifiers.SpeedBoost.Active {
		t.Fatal("speed boost ended early")
	}
	sys.Update(w)
	if w.Modifiers.SpeedBoost.Active {
		t.Error("speed boost outlived its window")
	}
}

func TestPickupAppliesEffect(t *testing.T) {
	tests := []struct {
		kind  component.PowerUpKind
		check func(t *testing.T, active [3]bool)
	}{
		{component.PowerUpInvulnerability, func(t *testing.T, a [3]bool) {
			if !a[0] || a[1] || a[2] {
				t.Errorf("modifiers = %v", a)
			}
		}},
		{component.PowerUpSpeedBoost, func(t *testing.T, a [3]bool) {
			if a[0] || !a[1] || a[2] {
				t.Errorf("modifiers = %v", a)
			}
		}},
		{component.PowerUpSlowBugs, func(t *testing.T, a [3]bool) {
			if a[0] || a[1] || !a[2] {
				t.Errorf("modifiers = %v", a)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w, _, reg := newWorld(t, nil)
			w.PowerUps[1] = component.PowerUpComponent{Pos: w.Snake.Head(), Active: true, Kind: tt.kind}
			NewPickupSystem(w, reg).Update(w)

			if w.PowerUps[1].Active {
				t.Error("power-up not consumed")
			}
			m := w.Modifiers
			tt.check(t, [3]bool{m.Invulnerable.Active, m.SpeedBoost.Active, m.SlowBugs.Active})
			if w.Summary().PowerUpsCollected != 1 {
				t.Error("pickup not counted")
			}
		})
	}
}

func TestExplosionRadius(t *testing.T) {
	w, _, reg := newWorld(t, nil)
	head := w.Snake.Head()
	inside := []core.Point{{X: head.X + 3, Y: head.Y + 3}, {X: head.X - 3, Y: head.Y}, {X: head.X, Y: head.Y - 2}}
	outside := []core.Point{{X: head.X + 4, Y: head.Y}, {X: head.X - 1, Y: head.Y + 4}}
	modes := []component.BugMode{component.BugAggressive, component.BugPanic, component.BugErratic, component.BugStalker, component.BugUDodger}
	for i, p := range append(inside, outside...) {
		placeBug(w, i, p, modes[i])
	}

	w.PowerUps[0] = component.PowerUpComponent{Pos: head, Active: true, Kind: component.PowerUpExplosion}
	NewPickupSystem(w, reg).Update(w)

	for i := range inside {
		if w.Bugs[i].Active {
			t.Errorf("bug %d at %v survived", i, w.Bugs[i].Pos)
		}
	}
	for i := range outside {
		if !w.Bugs[len(inside)+i].Active {
			t.Errorf("bug %d outside the radius died", len(inside)+i)
		}
	}
	if w.Summary().TotalKills() != len(inside) {
		t.Errorf("kills = %d", w.Summary().TotalKills())
	}
	if w.BodyKills != 0 {
		t.Error("explosion kills must not feed the body tally")
	}
}
