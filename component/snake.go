package component

import (
	"github.com/lixenwraith/bug-snake/core"
)

// SnakeComponent is the player creature: ordered cells head→tail
type SnakeComponent struct {
	Segments []core.Point // Segments[0] is the head
	Heading  core.Direction

	// Growth queue (pending segments from fruit consumption)
	GrowthPending int

	// Blocked-pending-redirect state, only entered while invulnerable
	Blocked     bool
	BlockedAt   core.Point
	BlockedTile Tile // identity of the hazard the head bumped into
}

// NewSnake lays out a straight snake whose body trails opposite to heading
func NewSnake(head core.Point, heading core.Direction, length, capacity int) SnakeComponent {
	segs := make([]core.Point, length, capacity)
	back := heading.Opposite().Delta()
	for i := range segs {
		segs[i] = core.Point{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	return SnakeComponent{Segments: segs, Heading: heading}
}

// Head returns the head cell
func (s *SnakeComponent) Head() core.Point {
	return s.Segments[0]
}

// Len returns the segment count
func (s *SnakeComponent) Len() int {
	return len(s.Segments)
}

// IndexOf returns the first segment index at p, or -1
func (s *SnakeComponent) IndexOf(p core.Point) int {
	for i, seg := range s.Segments {
		if seg == p {
			return i
		}
	}
	return -1
}

// Occupies reports whether any segment is at p
func (s *SnakeComponent) Occupies(p core.Point) bool {
	return s.IndexOf(p) >= 0
}

// BodyAt reports whether a non-head segment is at p
func (s *SnakeComponent) BodyAt(p core.Point) bool {
	for i := 1; i < len(s.Segments); i++ {
		if s.Segments[i] == p {
			return true
		}
	}
	return false
}

// Reverses reports whether heading d points straight back into the neck
func (s *SnakeComponent) Reverses(d core.Direction) bool {
	if len(s.Segments) < 2 {
		return false
	}
	return s.Segments[0].Step(d) == s.Segments[1]
}
