package engine

// System is one phase of the logic tick pipeline
type System interface {
	// Name identifies the system in logs
	Name() string
	// Priority orders execution, lower runs first
	Priority() int
	// Update advances the system by one logic tick
	Update(w *World)
}
