package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/status"
)

// Stats accumulates run statistics into the status registry
// Counter pointers are cached at construction, writes are plain atomic adds
type Stats struct {
	RunID uuid.UUID
	Start time.Time

	fruits     *atomic.Int64
	maxLength  *atomic.Int64
	dirChanges *atomic.Int64
	powerUps   *atomic.Int64
	ticks      *atomic.Int64
	kills      [component.BugModeCount]*atomic.Int64

	lastHeading core.Direction
}

// NewStats registers the run counters and seeds max length with the starting length
func NewStats(reg *status.Registry, start time.Time, heading core.Direction, length int) *Stats {
	s := &Stats{
		RunID:       uuid.New(),
		Start:       start,
		fruits:      reg.Ints.Get("stats.fruits_eaten"),
		maxLength:   reg.Ints.Get("stats.max_length"),
		dirChanges:  reg.Ints.Get("stats.direction_changes"),
		powerUps:    reg.Ints.Get("stats.powerups_collected"),
		ticks:       reg.Ints.Get("engine.ticks"),
		lastHeading: heading,
	}
	for m := component.BugMode(0); m < component.BugModeCount; m++ {
		s.kills[m] = reg.Ints.Get("stats.bugs_killed." + m.Tag())
	}
	s.maxLength.Store(int64(length))
	return s
}

// RecordTick samples heading and length once per logic tick
func (s *Stats) RecordTick(heading core.Direction, length int) {
	s.ticks.Add(1)
	if heading != s.lastHeading {
		s.dirChanges.Add(1)
		s.lastHeading = heading
	}
	if int64(length) > s.maxLength.Load() {
		s.maxLength.Store(int64(length))
	}
}

func (s *Stats) RecordFruit() {
	s.fruits.Add(1)
}

func (s *Stats) RecordPowerUp() {
	s.powerUps.Add(1)
}

// RecordKill tallies a destroyed bug under its mode at time of death
func (s *Stats) RecordKill(mode component.BugMode) {
	if mode < component.BugModeCount {
		s.kills[mode].Add(1)
	}
}

// Summary is the end-of-run report
type Summary struct {
	RunID             string
	Elapsed           time.Duration
	FruitsEaten       int
	MaxLength         int
	DirectionChanges  int
	PowerUpsCollected int
	Ticks             int
	BugsRemaining     int
	KillsByMode       [component.BugModeCount]int
}

// TotalKills sums the per-mode kill counts
func (s Summary) TotalKills() int {
	total := 0
	for _, k := range s.KillsByMode {
		total += k
	}
	return total
}

// Summary snapshots the counters at now
func (s *Stats) Summary(now time.Time, bugsRemaining int) Summary {
	sum := Summary{
		RunID:             s.RunID.String(),
		Elapsed:           now.Sub(s.Start),
		FruitsEaten:       int(s.fruits.Load()),
		MaxLength:         int(s.maxLength.Load()),
		DirectionChanges:  int(s.dirChanges.Load()),
		PowerUpsCollected: int(s.powerUps.Load()),
		Ticks:             int(s.ticks.Load()),
		BugsRemaining:     bugsRemaining,
	}
	for m := range s.kills {
		sum.KillsByMode[m] = int(s.kills[m].Load())
	}
	return sum
}

// Summary reports the run statistics against the world clock
func (w *World) Summary() Summary {
	return w.Stats.Summary(w.Clock.Now(), w.ActiveBugCount())
}
