package system

import (
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/event"
)

// AudioSystem maps game events to audible cues
// Decouples game systems from direct player access
type AudioSystem struct {
	player engine.AudioPlayer
}

// NewAudioSystem creates an audio system with the given player
// player may be nil if audio is disabled
func NewAudioSystem(player engine.AudioPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// EventTypes returns the event types AudioSystem handles
func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFruitEaten,
		event.EventPowerUpCollected,
		event.EventHeadingRejected,
		event.EventSnakeBlocked,
		event.EventBugKilled,
		event.EventSnakeDied,
	}
}

// HandleEvent plays the cue bound to the event type
func (s *AudioSystem) HandleEvent(_ *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	if sound, ok := CueFor(ev.Type); ok {
		s.player.Play(sound)
	}
}

// CueFor returns the sound bound to an event type
func CueFor(t event.EventType) (core.SoundType, bool) {
	switch t {
	case event.EventFruitEaten:
		return core.SoundEat, true
	case event.EventPowerUpCollected:
		return core.SoundPowerUp, true
	case event.EventHeadingRejected:
		return core.SoundReject, true
	case event.EventSnakeBlocked:
		return core.SoundBlocked, true
	case event.EventBugKilled:
		return core.SoundKill, true
	case event.EventSnakeDied:
		return core.SoundDeath, true
	default:
		return 0, false
	}
}
