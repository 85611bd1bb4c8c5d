package engine

import (
	"sync"

	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
	"github.com/lixenwraith/bug-snake/status"
	"github.com/lixenwraith/bug-snake/vmath"
)

// Phase is the run lifecycle state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseDead
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseDead:
		return "dead"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// World owns every entity population and the per-run transient state
// All fields are mutated only from the tick goroutine
type World struct {
	Width  int
	Height int

	Snake    component.SnakeComponent
	Walls    []component.WallComponent
	Fruits   []component.FruitComponent
	Bugs     [parameter.BugCapacity]component.BugComponent
	PowerUps [parameter.PowerUpCapacity]component.PowerUpComponent

	Modifiers Modifiers
	Stats     *Stats

	Rand   vmath.Rand
	Clock  TimeProvider
	Events *event.Queue

	Tick  uint64
	Phase Phase
	Death event.DeathPayload
	Debug bool

	// Milestone tallies
	FruitsEaten int
	BodyKills   int

	wallIndex mapset.Set[core.Point]

	systems  []System
	systemMu sync.Mutex
}

// NewWorld lays out the starting snake at the grid centre heading right
// Fruit slots are sized from the interior area, all other arenas start empty
func NewWorld(width, height int, rng vmath.Rand, clock TimeProvider, reg *status.Registry) *World {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	fruitSlots := parameter.FruitCapacitySmall
	if (width-2)*(height-2) > parameter.LargeGridArea {
		fruitSlots = parameter.FruitCapacityLarge
	}

	w := &World{
		Width:     width,
		Height:    height,
		Snake:     component.NewSnake(core.Point{X: width / 2, Y: height / 2}, core.DirRight, parameter.SnakeInitialLength, parameter.SnakeCapacity),
		Walls:     make([]component.WallComponent, 0, parameter.WallCapacity),
		Fruits:    make([]component.FruitComponent, fruitSlots),
		Rand:      rng,
		Clock:     clock,
		Events:    event.NewQueue(),
		wallIndex: mapset.New[core.Point](),
	}
	for i := range w.Bugs {
		w.Bugs[i].Target = component.NoRef
		w.Bugs[i].Partner = component.NoRef
	}
	w.Stats = NewStats(reg, clock.Now(), w.Snake.Heading, w.Snake.Len())
	return w
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.systemMu.Lock()
	defer w.systemMu.Unlock()

	w.systems = append(w.systems, system)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		} else {
			break
		}
	}
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	w.systemMu.Lock()
	defer w.systemMu.Unlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one logic tick through every system in priority order
// The pipeline stops early once the run leaves the playing phase
func (w *World) Update() {
	if w.Phase != PhasePlaying {
		return
	}
	w.Tick++
	for _, sys := range w.Systems() {
		sys.Update(w)
		if w.Phase != PhasePlaying {
			return
		}
	}
}

// Emit queues an event stamped with the current tick
func (w *World) Emit(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.Tick})
}

// Kill ends the run with the given cause
func (w *World) Kill(cause event.DeathCause, at core.Point) {
	if w.Phase != PhasePlaying {
		return
	}
	w.Phase = PhaseDead
	w.Death = event.DeathPayload{Cause: cause, Pos: at}
	w.Emit(event.EventSnakeDied, &event.DeathPayload{Cause: cause, Pos: at})
}

// Quit ends the run at the player's request
func (w *World) Quit() {
	if w.Phase == PhasePlaying {
		w.Phase = PhaseQuit
	}
}

// Score is growth beyond the starting length
func (w *World) Score() int {
	return w.Snake.Len() - parameter.SnakeInitialLength
}

// WallCount returns the number of live walls
func (w *World) WallCount() int {
	return len(w.Walls)
}

// WallAt reports whether a wall occupies p
func (w *World) WallAt(p core.Point) bool {
	return w.wallIndex.Has(p)
}

// AddWall places a wall at p, no-op at capacity or on an existing wall
func (w *World) AddWall(p core.Point) bool {
	if len(w.Walls) >= parameter.WallCapacity || w.wallIndex.Has(p) {
		return false
	}
	w.Walls = append(w.Walls, component.WallComponent{Pos: p})
	w.wallIndex.Put(p)
	w.Emit(event.EventWallSpawned, &event.WallPayload{Pos: p})
	return true
}

// RemoveWallAt destroys the wall at p by swapping the last wall into its slot
func (w *World) RemoveWallAt(p core.Point) bool {
	if !w.wallIndex.Has(p) {
		return false
	}
	for i := range w.Walls {
		if w.Walls[i].Pos == p {
			last := len(w.Walls) - 1
			w.Walls[i] = w.Walls[last]
			w.Walls = w.Walls[:last]
			break
		}
	}
	w.wallIndex.Remove(p)
	w.Emit(event.EventWallDestroyed, &event.WallPayload{Pos: p})
	return true
}

// ActiveBugCount returns the number of active bug slots
func (w *World) ActiveBugCount() int {
	n := 0
	for i := range w.Bugs {
		if w.Bugs[i].Active {
			n++
		}
	}
	return n
}

// ValidBug reports whether ref names an active bug slot
func (w *World) ValidBug(ref int) bool {
	return ref >= 0 && ref < len(w.Bugs) && w.Bugs[ref].Active
}

// ValidFruit reports whether ref names an active fruit slot
func (w *World) ValidFruit(ref int) bool {
	return ref >= 0 && ref < len(w.Fruits) && w.Fruits[ref].Active
}

// BugAt returns the first active bug index at p, ignoring slot skip, or -1
func (w *World) BugAt(p core.Point, skip int) int {
	for i := range w.Bugs {
		if i != skip && w.Bugs[i].Active && w.Bugs[i].Pos == p {
			return i
		}
	}
	return component.NoRef
}

// FruitAt returns the first active fruit index at p, or -1
func (w *World) FruitAt(p core.Point) int {
	for i := range w.Fruits {
		if w.Fruits[i].Active && w.Fruits[i].Pos == p {
			return i
		}
	}
	return component.NoRef
}

// PowerUpAt returns the first active power-up index at p, or -1
func (w *World) PowerUpAt(p core.Point) int {
	for i := range w.PowerUps {
		if w.PowerUps[i].Active && w.PowerUps[i].Pos == p {
			return i
		}
	}
	return component.NoRef
}
