package audio

import (
	"sync"

	"github.com/lixenwraith/bug-snake/core"
)

// BellPlayer falls back to the terminal bell when no audio device is available
// Only the eat, reject, blocked and power-up cues ring
type BellPlayer struct {
	mu    sync.Mutex
	ring  func()
	muted bool
}

// NewBellPlayer rings through fn, typically the screen's Beep
func NewBellPlayer(fn func()) *BellPlayer {
	return &BellPlayer{ring: fn}
}

func (b *BellPlayer) Play(s core.SoundType) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.muted || b.ring == nil {
		return false
	}
	switch s {
	case core.SoundEat, core.SoundPowerUp, core.SoundReject, core.SoundBlocked:
		b.ring()
		return true
	}
	return false
}

func (b *BellPlayer) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

func (b *BellPlayer) IsMuted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}
