package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/status"
)

func TestStatsAccumulate(t *testing.T) {
	reg := status.NewRegistry()
	s := NewStats(reg, epoch, core.DirRight, 5)

	s.RecordTick(core.DirRight, 5)
	s.RecordTick(core.DirUp, 6)
	s.RecordTick(core.DirUp, 6)
	s.RecordTick(core.DirLeft, 4)
	s.RecordFruit()
	s.RecordPowerUp()
	s.RecordKill(component.BugStalker)
	s.RecordKill(component.BugStalker)
	s.RecordKill(component.BugPanic)

	sum := s.Summary(epoch.Add(42*time.Second), 3)
	if sum.DirectionChanges != 2 {
		t.Errorf("direction changes = %d, want 2", sum.DirectionChanges)
	}
	if sum.MaxLength != 6 {
		t.Errorf("max length = %d, want 6", sum.MaxLength)
	}
	if sum.FruitsEaten != 1 || sum.PowerUpsCollected != 1 {
		t.Errorf("fruits=%d powerups=%d", sum.FruitsEaten, sum.PowerUpsCollected)
	}
	if sum.KillsByMode[component.BugStalker] != 2 || sum.TotalKills() != 3 {
		t.Errorf("kills = %v", sum.KillsByMode)
	}
	if sum.Elapsed != 42*time.Second || sum.BugsRemaining != 3 || sum.Ticks != 4 {
		t.Errorf("elapsed=%v remaining=%d ticks=%d", sum.Elapsed, sum.BugsRemaining, sum.Ticks)
	}
	if sum.RunID == "" {
		t.Error("missing run id")
	}
	if reg.Ints.Get("stats.bugs_killed.STK").Load() != 2 {
		t.Error("kill counter not published to the registry")
	}
}

func TestModifierCountdown(t *testing.T) {
	var m Modifier
	if m.Countdown() {
		t.Fatal("inactive modifier reported expiry")
	}
	m.Activate(2)
	if m.Countdown() {
		t.Fatal("expired one tick early")
	}
	if !m.Countdown() || m.Active {
		t.Fatal("modifier should expire on the second countdown")
	}
}
