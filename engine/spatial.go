package engine

import (
	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/parameter"
)

// InBounds reports whether p lies strictly inside the border
func (w *World) InBounds(p core.Point) bool {
	return p.X > 0 && p.X < w.Width && p.Y > 0 && p.Y < w.Height
}

// IsFree reports whether p is inside the border and unoccupied by any tracked entity
func (w *World) IsFree(p core.Point) bool {
	return w.IsFreeFor(p, component.NoRef)
}

// IsFreeFor is IsFree with one bug slot excluded from the occupancy scan
// A bug testing its own cell passes its index
func (w *World) IsFreeFor(p core.Point, bug int) bool {
	if !w.InBounds(p) {
		return false
	}
	if w.Snake.Occupies(p) {
		return false
	}
	if w.wallIndex.Has(p) {
		return false
	}
	if w.BugAt(p, bug) >= 0 {
		return false
	}
	return w.PowerUpAt(p) < 0
}

// TileAt classifies the static obstruction at p
// Border cells sit at x = 0, x = Width, y = 0 and y = Height
func (w *World) TileAt(p core.Point) component.Tile {
	onX := p.X <= 0 || p.X >= w.Width
	onY := p.Y <= 0 || p.Y >= w.Height
	switch {
	case onX && onY:
		return component.TileCorner
	case onX || onY:
		return component.TileBorder
	case w.wallIndex.Has(p):
		return component.TileWall
	default:
		return component.TileEmpty
	}
}

// Obstructed reports whether p is out of bounds or a wall
func (w *World) Obstructed(p core.Point) bool {
	return !w.InBounds(p) || w.wallIndex.Has(p)
}

// HeadVulnerable reports whether fewer than two of the head's orthogonal neighbours are later segments
func (w *World) HeadVulnerable() bool {
	if w.Snake.Len() <= 1 {
		return true
	}
	head := w.Snake.Head()
	boxed := 0
	for d := core.Direction(0); d < core.DirCount; d++ {
		if w.Snake.BodyAt(head.Step(d)) {
			boxed++
		}
	}
	return boxed < parameter.BoxedInNeighbours
}
