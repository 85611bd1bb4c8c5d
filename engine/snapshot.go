package engine

import (
	"time"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
)

// BugView is the render-facing state of one active bug
type BugView struct {
	Index int
	Pos   core.Point
	Mode  component.BugMode
}

// PowerUpView is the render-facing state of one active power-up
type PowerUpView struct {
	Pos  core.Point
	Kind component.PowerUpKind
}

// Snapshot is a detached copy of the world handed to the renderer after each tick
type Snapshot struct {
	Width  int
	Height int
	Tick   uint64

	Snake     []core.Point
	Heading   core.Direction
	Blocked   bool
	BlockedAt core.Point

	Walls    []core.Point
	Fruits   []core.Point
	Bugs     []BugView
	PowerUps []PowerUpView

	Modifiers Modifiers
	Elapsed   time.Duration
	Score     int

	Phase  Phase
	Paused bool
	Debug  bool
}

// Snapshot copies the active entities out of the world
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Width:     w.Width,
		Height:    w.Height,
		Tick:      w.Tick,
		Snake:     append([]core.Point(nil), w.Snake.Segments...),
		Heading:   w.Snake.Heading,
		Blocked:   w.Snake.Blocked,
		BlockedAt: w.Snake.BlockedAt,
		Walls:     make([]core.Point, 0, len(w.Walls)),
		Fruits:    make([]core.Point, 0, len(w.Fruits)),
		Modifiers: w.Modifiers,
		Elapsed:   w.Clock.Now().Sub(w.Stats.Start),
		Score:     w.Score(),
		Phase:     w.Phase,
		Debug:     w.Debug,
	}
	for _, wall := range w.Walls {
		s.Walls = append(s.Walls, wall.Pos)
	}
	for _, f := range w.Fruits {
		if f.Active {
			s.Fruits = append(s.Fruits, f.Pos)
		}
	}
	for i, b := range w.Bugs {
		if b.Active {
			s.Bugs = append(s.Bugs, BugView{Index: i, Pos: b.Pos, Mode: b.Mode})
		}
	}
	for _, p := range w.PowerUps {
		if p.Active {
			s.PowerUps = append(s.PowerUps, PowerUpView{Pos: p.Pos, Kind: p.Kind})
		}
	}
	return s
}
