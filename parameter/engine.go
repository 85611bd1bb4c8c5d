package parameter

import "time"

// Game Loop & Engine Timing
const (
	// MicroTickDelay is the sleep between input polls
	MicroTickDelay = 1 * time.Millisecond

	// LogicTickDivisor is the number of micro ticks per logic tick (100ms at base speed)
	LogicTickDivisor = 100
)

// Event queue
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = EventQueueSize - 1

	// CommandBufferSize is the capacity of the input command channel
	CommandBufferSize = 64
)
