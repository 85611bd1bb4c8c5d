package component

import "github.com/lixenwraith/bug-snake/core"

// FruitComponent is a reusable food slot
// Eaten fruit is relocated in place, the slot is never released
type FruitComponent struct {
	Pos    core.Point
	Active bool
}
