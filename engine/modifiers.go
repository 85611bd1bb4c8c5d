package engine

// Modifier is a global timed effect counted in logic ticks
type Modifier struct {
	Active    bool
	Remaining int
}

// Activate (re)starts the effect with a fresh window
func (m *Modifier) Activate(ticks int) {
	m.Active = true
	m.Remaining = ticks
}

// Countdown decrements an active effect and reports whether it expired on this call
func (m *Modifier) Countdown() bool {
	if !m.Active {
		return false
	}
	m.Remaining--
	if m.Remaining <= 0 {
		m.Active = false
		m.Remaining = 0
		return true
	}
	return false
}

// Modifiers is the per-run set of global effects
// Invulnerable is read by movement and collision, SpeedBoost by the scheduler, SlowBugs by the bug AI
type Modifiers struct {
	Invulnerable Modifier
	SpeedBoost   Modifier
	SlowBugs     Modifier
}
