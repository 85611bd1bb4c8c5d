package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/bug-snake/event"
	"github.com/lixenwraith/bug-snake/parameter"
)

// FrameSink receives a snapshot after every logic tick and on visible state changes
type FrameSink interface {
	Present(s Snapshot)
}

// FrameSinkFunc adapts a function to FrameSink
type FrameSinkFunc func(s Snapshot)

func (f FrameSinkFunc) Present(s Snapshot) { f(s) }

// TickScheduler drives the micro-tick loop and runs one logic tick every divisor micro ticks
// The speed-boost modifier halves both the micro delay and the divisor
type TickScheduler struct {
	world  *World
	clock  *PausableClock
	router *event.Router[*World]
	sink   FrameSink

	// Sleep is the rate-limiting delay, replaceable in tests
	Sleep func(time.Duration)

	micro  int
	paused bool
}

// NewTickScheduler wires a scheduler to the world; clock may be nil when the world clock is not pausable
func NewTickScheduler(w *World, clock *PausableClock, sink FrameSink) *TickScheduler {
	if sink == nil {
		sink = FrameSinkFunc(func(Snapshot) {})
	}
	return &TickScheduler{
		world:  w,
		clock:  clock,
		router: event.NewRouter[*World](w.Events),
		sink:   sink,
		Sleep:  time.Sleep,
	}
}

// RegisterEventHandler adds an event handler to the router, must be called before Run
func (ts *TickScheduler) RegisterEventHandler(h event.Handler[*World]) {
	ts.router.Register(h)
}

// Paused reports whether the loop is waiting for a resume key
func (ts *TickScheduler) Paused() bool {
	return ts.paused
}

// MicroDelay is the current rate-limiting sleep
func (ts *TickScheduler) MicroDelay() time.Duration {
	if ts.world.Modifiers.SpeedBoost.Active {
		return parameter.MicroTickDelay / parameter.SpeedBoostFactor
	}
	return parameter.MicroTickDelay
}

// Divisor is the current number of micro ticks per logic tick
func (ts *TickScheduler) Divisor() int {
	if ts.world.Modifiers.SpeedBoost.Active {
		return parameter.LogicTickDivisor / parameter.SpeedBoostFactor
	}
	return parameter.LogicTickDivisor
}

// Step runs one logic tick, dispatches its events and presents the result
func (ts *TickScheduler) Step() {
	ts.world.Update()
	ts.router.DispatchAll(ts.world)
	ts.present()
}

// Apply handles one command outside the logic tick
// Turn requests are routed immediately so the next tick sees the new heading
func (ts *TickScheduler) Apply(cmd Command) {
	w := ts.world

	if ts.paused {
		ts.resume()
		if cmd == CmdQuit {
			w.Quit()
		}
		return
	}

	if d, ok := cmd.Direction(); ok {
		w.Emit(event.EventHeadingRequest, &event.HeadingPayload{Direction: d})
		ts.router.DispatchAll(w)
		return
	}

	switch cmd {
	case CmdPause:
		ts.paused = true
		if ts.clock != nil {
			ts.clock.Pause()
		}
		log.Printf("[SCHED] paused at tick %d", w.Tick)
		ts.present()
	case CmdQuit:
		w.Quit()
	case CmdToggleDebug:
		w.Debug = !w.Debug
		ts.present()
	}
}

func (ts *TickScheduler) resume() {
	ts.paused = false
	if ts.clock != nil {
		ts.clock.Resume()
		log.Printf("[SCHED] resumed, total paused %v", ts.clock.TotalPauseDuration())
	}
	ts.present()
}

func (ts *TickScheduler) present() {
	snap := ts.world.Snapshot()
	snap.Paused = ts.paused
	ts.sink.Present(snap)
}

// Run loops until death, quit, a closed command channel, or context cancellation
// Input is polled once per micro tick; while paused the loop blocks on the next command
func (ts *TickScheduler) Run(ctx context.Context, commands <-chan Command) error {
	w := ts.world
	ts.present()

	for {
		if ts.paused {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case cmd, ok := <-commands:
				if !ok {
					w.Quit()
					return nil
				}
				ts.Apply(cmd)
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case cmd, ok := <-commands:
				if !ok {
					w.Quit()
					return nil
				}
				ts.Apply(cmd)
			default:
			}
		}

		if w.Phase != PhasePlaying {
			return nil
		}
		if ts.paused {
			continue
		}

		ts.micro++
		if ts.micro >= ts.Divisor() {
			ts.micro = 0
			ts.Step()
			if w.Phase != PhasePlaying {
				return nil
			}
		}
		ts.Sleep(ts.MicroDelay())
	}
}
