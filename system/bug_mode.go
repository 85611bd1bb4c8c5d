package system

import (
	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/vmath"
)

// steer runs the heading policy of bug i's current mode and reports a forced move
func steer(w *engine.World, i int) bool {
	switch w.Bugs[i].Mode {
	case component.BugErratic:
		return steerErratic(w, i)
	case component.BugStalker:
		return steerStalker(w, i)
	case component.BugAmbusher:
		return steerAmbusher(w, i)
	case component.BugPanic:
		return steerPanic(w, i)
	case component.BugPackHunter:
		return steerPackHunter(w, i)
	case component.BugTrapMaster:
		return steerTrapMaster(w, i)
	case component.BugUDodger:
		return steerUDodger(w, i)
	case component.BugAggressive:
		return steerAggressive(w, i)
	}
	return false
}

func randomHeading(w *engine.World) core.Direction {
	return core.Direction(w.Rand.Intn(int(core.DirCount)))
}

func steerErratic(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	if vmath.OneIn(w.Rand, parameter.ErraticRandomOneIn) {
		b.Heading = randomHeading(w)
	}
	if vmath.OneIn(w.Rand, parameter.ErraticBiasOneIn) {
		d := w.Snake.Head().Sub(b.Pos)
		// Ties go horizontal, a zero delta leaves the heading alone
		if d.X != 0 && core.Abs(d.X) >= core.Abs(d.Y) {
			b.Heading = core.HorizontalToward(d.X)
		} else if d.Y != 0 {
			b.Heading = core.VerticalToward(d.Y)
		}
	}
	return false
}

func steerStalker(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	d := w.Snake.Head().Sub(b.Pos)
	dist := core.Abs(d.X) + core.Abs(d.Y)

	if w.HeadVulnerable() && dist <= parameter.StalkerStrikeRange {
		b.Heading = core.Toward(d.X, d.Y)
		return true
	}

	push := parameter.StalkerRepelPush
	repelled := false
	for _, seg := range w.Snake.Segments[1:] {
		if core.Chebyshev(seg, b.Pos) > parameter.StalkerRepelRange {
			continue
		}
		repelled = true
		if seg.X < b.Pos.X && d.X > -push {
			d.X += push
		}
		if seg.X > b.Pos.X && d.X < push {
			d.X -= push
		}
		if seg.Y < b.Pos.Y && d.Y > -push {
			d.Y += push
		}
		if seg.Y > b.Pos.Y && d.Y < push {
			d.Y -= push
		}
	}
	if repelled {
		b.Heading = core.Toward(d.X, d.Y)
		return false
	}

	switch {
	case dist < parameter.StalkerShyRange:
		if vmath.OneIn(w.Rand, 2) {
			b.Heading = core.HorizontalToward(d.X).Opposite()
		} else {
			b.Heading = core.VerticalToward(d.Y).Opposite()
		}
	case core.Abs(d.X) > core.Abs(d.Y):
		b.Heading = core.HorizontalToward(d.X)
	case d.Y != 0:
		b.Heading = core.VerticalToward(d.Y)
	}
	return false
}

func steerUDodger(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	d := w.Snake.Head().Sub(b.Pos)
	if DetectUPattern(&w.Snake) || core.Abs(d.X)+core.Abs(d.Y) < parameter.UDodgerFleeRange {
		b.Heading = core.Away(d.X, d.Y)
	} else {
		b.Heading = randomHeading(w)
	}
	return false
}

func steerAmbusher(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	if !w.ValidFruit(b.Target) {
		b.Target = findStrategicFruit(w, b.Pos)
		return false
	}

	f := w.Fruits[b.Target].Pos.Sub(b.Pos)
	b.Heading = core.Toward(f.X, f.Y)
	if core.Abs(f.X)+core.Abs(f.Y) < parameter.AmbushStrikeRange {
		d := w.Snake.Head().Sub(b.Pos)
		b.Heading = core.Toward(d.X, d.Y)
		return true
	}
	return false
}

func steerPanic(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	d := w.Snake.Head().Sub(b.Pos)
	b.Heading = core.Away(d.X, d.Y)
	return false
}

func steerPackHunter(w *engine.World, i int) bool {
	if coordinateWithPartner(w, i) {
		return true
	}
	w.Bugs[i].ModeTimer = 0
	return false
}

func steerTrapMaster(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	head := w.Snake.Head()

	// A nearby wall sets the heading regardless of where the bug is
	if wall, ok := nearestWall(w, head, parameter.TrapWallRange); ok {
		b.Heading = core.Away(wall.X-head.X, wall.Y-head.Y)
		return false
	}
	d := head.Sub(b.Pos)
	b.Heading = core.Toward(d.X, d.Y)
	return false
}

func steerAggressive(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	segs := w.Snake.Segments

	for j := 0; j < parameter.AggroReach && j < len(segs); j++ {
		if core.Manhattan(segs[j], b.Pos) <= parameter.AggroStrikeRange {
			d := segs[j].Sub(b.Pos)
			b.Heading = core.Toward(d.X, d.Y)
			return true
		}
	}
	for _, seg := range segs[1:] {
		if core.Chebyshev(seg, b.Pos) <= parameter.AggroRepelRange {
			d := b.Pos.Sub(seg)
			b.Heading = core.Toward(d.X, d.Y)
			return false
		}
	}
	d := w.Snake.Head().Sub(b.Pos)
	b.Heading = core.Toward(d.X, d.Y)
	return false
}

// DetectUPattern reports at least two heading changes across the segments just behind the head
func DetectUPattern(snake *component.SnakeComponent) bool {
	segs := snake.Segments
	if len(segs) < parameter.UDodgerMinLength {
		return false
	}
	turns := 0
	last := snake.Heading
	for i := 1; i <= parameter.UDodgerWindow && i < len(segs); i++ {
		d := core.DirectionOf(segs[i], segs[i-1])
		if d != last {
			turns++
			last = d
		}
	}
	return turns >= parameter.UDodgerMinTurns
}

// findStrategicFruit picks the fruit closest to pos among those near the head, or -1
func findStrategicFruit(w *engine.World, pos core.Point) int {
	head := w.Snake.Head()
	best, bestDist := component.NoRef, 0
	for i, f := range w.Fruits {
		if !f.Active || core.Manhattan(head, f.Pos) >= parameter.AmbushFruitRange {
			continue
		}
		if dist := core.Manhattan(pos, f.Pos); best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}

// coordinateWithPartner assigns perpendicular forced headings to bug i and its partner
// when they bracket the head or both sit far from it horizontally
func coordinateWithPartner(w *engine.World, i int) bool {
	b := &w.Bugs[i]
	if b.Partner == i || !w.ValidBug(b.Partner) {
		return false
	}
	p := &w.Bugs[b.Partner]

	head := w.Snake.Head()
	d := head.Sub(b.Pos)
	pd := head.Sub(p.Pos)
	far := w.Width / parameter.PackFarDivisor

	opposed := d.X*pd.X < 0 && d.Y*pd.Y < 0
	distant := core.Abs(d.X) > far && core.Abs(pd.X) > far
	if !opposed && !distant {
		return false
	}

	if vmath.OneIn(w.Rand, 2) {
		b.Heading = core.HorizontalToward(d.X)
		p.Heading = core.VerticalToward(d.Y)
	} else {
		b.Heading = core.VerticalToward(d.Y)
		p.Heading = core.HorizontalToward(d.X)
	}
	return true
}

// nearestWall returns the wall closest to p within Manhattan distance limit (exclusive)
func nearestWall(w *engine.World, p core.Point, limit int) (core.Point, bool) {
	var best core.Point
	bestDist := limit
	found := false
	for _, wall := range w.Walls {
		if dist := core.Manhattan(wall.Pos, p); dist < bestDist {
			best, bestDist, found = wall.Pos, dist, true
		}
	}
	return best, found
}
