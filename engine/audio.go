package engine

import "github.com/lixenwraith/bug-snake/core"

// AudioPlayer defines the interface for cue playback
// Implementations must not block the tick goroutine
type AudioPlayer interface {
	Play(core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}
