package audio

import (
	"testing"
	"time"

	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/parameter"
)

// TestSoundManagerGracefulDegradation verifies operations are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)
	for s := core.SoundType(0); s < core.SoundTypeCount; s++ {
		if sm.Play(s) {
			t.Errorf("Play(%v) succeeded without initialization", s)
		}
	}
	sm.Cleanup()
	if sm.IsRunning() {
		t.Error("uninitialized manager reports running")
	}
}

// TestSoundManagerInitialization may legitimately fail without an audio device
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	if err := sm.Initialize(); err != nil {
		t.Errorf("second Initialize should be a no-op, got %v", err)
	}

	base := time.Unix(0, 0)
	now := base
	sm.now = func() time.Time { return now }

	if !sm.Play(core.SoundEat) {
		t.Fatal("first play dropped")
	}
	if sm.Play(core.SoundEat) {
		t.Error("repeat inside the gap should be throttled")
	}
	if !sm.Play(core.SoundKill) {
		t.Error("throttle is per cue")
	}
	now = now.Add(parameter.MinSoundGap)
	if !sm.Play(core.SoundEat) {
		t.Error("play after the gap dropped")
	}

	sm.ToggleMute()
	now = now.Add(time.Second)
	if sm.Play(core.SoundEat) {
		t.Error("muted manager played")
	}
}

func TestMuteToggle(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.IsMuted() {
		t.Fatal("default config should start unmuted")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("ToggleMute did not mute")
	}

	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	if !NewSoundManager(cfg).IsMuted() {
		t.Error("disabled config should start muted")
	}
}

func TestBellPlayer(t *testing.T) {
	rings := 0
	b := NewBellPlayer(func() { rings++ })

	b.Play(core.SoundEat)
	b.Play(core.SoundReject)
	b.Play(core.SoundKill) // silent on the bell
	if rings != 2 {
		t.Errorf("rings = %d, want 2", rings)
	}

	b.ToggleMute()
	b.Play(core.SoundEat)
	if rings != 2 || !b.IsMuted() {
		t.Error("muted bell rang")
	}
}
