package core

// Direction is one of the four cardinal headings
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	DirCount
)

var directionDeltas = [DirCount]Point{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

var directionNames = [DirCount]string{
	DirUp:    "UP",
	DirDown:  "DOWN",
	DirLeft:  "LEFT",
	DirRight: "RIGHT",
}

// Delta returns the unit offset for the direction
func (d Direction) Delta() Point {
	if d >= DirCount {
		return Point{}
	}
	return directionDeltas[d]
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	if d >= DirCount {
		return "?"
	}
	return directionNames[d]
}

// DirectionOf classifies a unit step from a to b
// Non-adjacent pairs fall through to DirUp, matching how body glyphs treat degenerate input
func DirectionOf(from, to Point) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 1:
		return DirRight
	case dx == -1:
		return DirLeft
	case dy == 1:
		return DirDown
	default:
		return DirUp
	}
}

// Toward picks the heading that closes the larger of the two deltas
// Ties resolve to the vertical axis
func Toward(dx, dy int) Direction {
	if Abs(dx) > Abs(dy) {
		if dx > 0 {
			return DirRight
		}
		return DirLeft
	}
	if dy > 0 {
		return DirDown
	}
	return DirUp
}

// Away picks the heading that opens the larger of the two deltas
func Away(dx, dy int) Direction {
	return Toward(dx, dy).Opposite()
}

// HorizontalToward returns Right for positive dx, Left otherwise
func HorizontalToward(dx int) Direction {
	if dx > 0 {
		return DirRight
	}
	return DirLeft
}

// VerticalToward returns Down for positive dy, Up otherwise
func VerticalToward(dy int) Direction {
	if dy > 0 {
		return DirDown
	}
	return DirUp
}
