package parameter

// Grid limits
const (
	// MinGridWidth and MinGridHeight clamp tiny terminals
	MinGridWidth  = 40
	MinGridHeight = 10

	// LargeGridArea is the interior area above which the fruit pool doubles
	LargeGridArea = 1500
)

// Entity capacities
const (
	FruitCapacitySmall = 5
	FruitCapacityLarge = 10
	WallCapacity       = 75
	BugCapacity        = 5
	PowerUpCapacity    = 3
)

// Spawn placement
const (
	// SafeZoneRadius is the minimum Manhattan distance from the head for hazards
	SafeZoneRadius = 5

	// FruitMaxAttempts is the rejection-sampling budget for fruit
	FruitMaxAttempts = 100

	// WallMaxAttempts is the rejection-sampling budget for walls
	WallMaxAttempts = 100

	// BugMaxAttempts is the rejection-sampling budget for bugs
	BugMaxAttempts = 50

	// PowerUpMaxAttempts is the rejection-sampling budget for power-ups
	PowerUpMaxAttempts = 50
)

// Fruit milestones
const (
	// WallEveryFruits spawns one wall each time the eaten count is a multiple of this
	WallEveryFruits = 5

	// BugEveryFruits spawns one bug (plus body-kill replacements) at each multiple
	BugEveryFruits = 10

	// PowerUpChanceOneIn is the 1-in-N chance of a power-up per fruit eaten
	PowerUpChanceOneIn = 5
)
