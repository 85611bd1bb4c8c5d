package parameter

// BugModeBaseWeights is indexed by component.BugMode:
// erratic, stalker, ambusher, panic, pack-hunter, trap-master, u-dodger, aggressive
var BugModeBaseWeights = [8]int{20, 20, 15, 10, 10, 5, 5, 15}

// Contextual weight bonuses
const (
	// LateGameFruits unlocks the ambusher and aggressive bonuses
	LateGameFruits      = 20
	LateGameAmbushBonus = 5
	LateGameAggroBonus  = 10

	// TrapWallThreshold is the wall count above which trap-master gains weight
	TrapWallThreshold = 10
	TrapMasterBonus   = 5

	// PackHunterMinBugs is the active bug count at which pack-hunter gains weight
	PackHunterMinBugs = 2
	PackHunterBonus   = 10
)

// Mode timer
const (
	// ModeTimerBase + [0, ModeTimerJitter) ticks after each reselection
	ModeTimerBase   = 50
	ModeTimerJitter = 100

	// SpawnModeTimerBase + [0, SpawnModeTimerJitter) ticks for a freshly spawned bug
	SpawnModeTimerBase   = 20
	SpawnModeTimerJitter = 30
)

// Erratic
const (
	ErraticRandomOneIn = 5
	ErraticBiasOneIn   = 3
)

// Stalker
const (
	StalkerStrikeRange = 10 // inclusive
	StalkerRepelRange  = 2  // Chebyshev, inclusive
	StalkerRepelPush   = 3
	StalkerShyRange    = 5 // exclusive
)

// U-dodger
const (
	UDodgerFleeRange = 8 // exclusive
	UDodgerWindow    = 4 // segments inspected behind the head
	UDodgerMinTurns  = 2
	UDodgerMinLength = 5
)

// Ambusher
const (
	AmbushFruitRange  = 10 // fruit to head, exclusive
	AmbushStrikeRange = 4  // bug to fruit, exclusive
)

// Trap-master
const (
	TrapWallRange = 10 // wall to head, exclusive
)

// Aggressive
const (
	AggroReach       = 3 // leading segments considered for attack
	AggroStrikeRange = 5 // inclusive
	AggroRepelRange  = 2 // Chebyshev, inclusive
)

// Pack-hunter
const (
	// PackFarDivisor: both bugs farther than width/PackFarDivisor horizontally triggers a pincer
	PackFarDivisor = 3
)
