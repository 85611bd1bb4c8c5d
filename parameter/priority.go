package parameter

// System Execution Priorities (lower runs first)
// Order mirrors one logic tick: stats, expiry, pickups, snake, bugs, collisions
const (
	PriorityStats     = 10
	PriorityPowerUp   = 20
	PriorityFruit     = 30
	PriorityPickup    = 40
	PrioritySnake     = 50
	PriorityBug       = 60
	PriorityCollision = 70
)
