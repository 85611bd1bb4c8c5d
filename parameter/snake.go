package parameter

// Snake body configuration
const (
	// SnakeCapacity is the maximum number of segments
	SnakeCapacity = 1000

	// SnakeInitialLength is the segment count at spawn, also the score baseline
	SnakeInitialLength = 5

	// NeckLength is the number of leading segments where bug contact is lethal
	NeckLength = 2
)

// Vulnerability
const (
	// BoxedInNeighbours is the count of own-body orthogonal neighbours that protects the head
	BoxedInNeighbours = 2
)
