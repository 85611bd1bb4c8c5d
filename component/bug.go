package component

import "github.com/lixenwraith/bug-snake/core"

// BugMode is the adversary behavioural strategy
type BugMode uint8

const (
	BugErratic BugMode = iota
	BugStalker
	BugAmbusher
	BugPanic
	BugPackHunter
	BugTrapMaster
	BugUDodger
	BugAggressive

	BugModeCount
)

var bugModeNames = [BugModeCount]string{
	BugErratic:    "Erratic",
	BugStalker:    "Stalker",
	BugAmbusher:   "Ambusher",
	BugPanic:      "Panicked",
	BugPackHunter: "Pack Hunter",
	BugTrapMaster: "Trap Master",
	BugUDodger:    "U-Dodger",
	BugAggressive: "Aggressive",
}

var bugModeTags = [BugModeCount]string{
	BugErratic:    "ERR",
	BugStalker:    "STK",
	BugAmbusher:   "AMB",
	BugPanic:      "PAN",
	BugPackHunter: "PKH",
	BugTrapMaster: "TRP",
	BugUDodger:    "UDG",
	BugAggressive: "AGR",
}

func (m BugMode) String() string {
	if m >= BugModeCount {
		return "Unknown"
	}
	return bugModeNames[m]
}

// Tag returns the three-letter debug abbreviation
func (m BugMode) Tag() string {
	if m >= BugModeCount {
		return "???"
	}
	return bugModeTags[m]
}

// NoRef marks an unset target/partner index
const NoRef = -1

// BugComponent is one adversary slot
// Target and Partner are indices into the fruit and bug arenas, re-validated on every use
type BugComponent struct {
	Pos          core.Point
	Heading      core.Direction
	Active       bool
	Mode         BugMode
	PreviousMode BugMode
	ModeTimer    int
	Target       int
	Partner      int
}
