package system

import (
	"testing"

	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/vmath"
)

type fakePlayer struct {
	played []core.SoundType
	muted  bool
}

func (p *fakePlayer) Play(s core.SoundType) bool {
	p.played = append(p.played, s)
	return true
}
func (p *fakePlayer) ToggleMute() bool { p.muted = !p.muted; return p.muted }
func (p *fakePlayer) IsMuted() bool    { return p.muted }

func TestRegisterOrdersPipeline(t *testing.T) {
	w, _, reg := newWorld(t, nil)
	ts := engine.NewTickScheduler(w, nil, nil)
	Register(w, ts, reg, nil)

	want := []string{"stats", "powerup", "fruit", "pickup", "snake", "bug", "collision"}
	got := w.Systems()
	if len(got) != len(want) {
		t.Fatalf("%d systems registered", len(got))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("system %d = %s, want %s", i, got[i].Name(), name)
		}
	}
}

// A seeded run with a wandering player must keep the snake well-formed every tick
func TestPipelineInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		w, _, reg := newWorld(t, vmath.NewFastRand(seed))
		ts := engine.NewTickScheduler(w, nil, nil)
		player := &fakePlayer{}
		Register(w, ts, reg, player)
		Populate(w)
		for i := 0; i < 3; i++ {
			SpawnBug(w)
		}

		steer := vmath.NewFastRand(seed * 31)
		for tick := 0; tick < 300 && w.Phase == engine.PhasePlaying; tick++ {
			if steer.Intn(4) == 0 {
				ts.Apply(engine.Command(1 + steer.Intn(4)))
			}
			ts.Step()
			assertSnakeShape(t, w)

			for i := range w.Bugs {
				b := w.Bugs[i]
				if b.Active && !w.InBounds(b.Pos) {
					t.Fatalf("seed %d tick %d: bug %d outside the field at %v", seed, tick, i, b.Pos)
				}
			}
			if w.WallCount() > parameter.WallCapacity {
				t.Fatalf("wall cap exceeded")
			}
		}
		if w.Phase == engine.PhaseDead && (len(player.played) == 0 || player.played[len(player.played)-1] != core.SoundDeath) {
			t.Errorf("seed %d: death cue missing, played %v", seed, player.played)
		}
	}
}

func TestCueFor(t *testing.T) {
	if s, ok := CueFor(event.EventFruitEaten); !ok || s != core.SoundEat {
		t.Errorf("fruit cue = %v %v", s, ok)
	}
	if _, ok := CueFor(event.EventWallSpawned); ok {
		t.Error("wall spawn should be silent")
	}

	player := &fakePlayer{}
	sys := NewAudioSystem(player)
	sys.HandleEvent(nil, event.GameEvent{Type: event.EventHeadingRejected})
	if len(player.played) != 1 || player.played[0] != core.SoundReject {
		t.Errorf("played %v", player.played)
	}
	NewAudioSystem(nil).HandleEvent(nil, event.GameEvent{Type: event.EventSnakeDied})
}
