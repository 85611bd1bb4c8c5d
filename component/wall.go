package component

import "github.com/lixenwraith/bug-snake/core"

// Tile identifies what occupies a non-free cell
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileBorder
	TileCorner
)

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileBorder:
		return "border"
	case TileCorner:
		return "corner"
	default:
		return "empty"
	}
}

// WallComponent is a single permanent obstacle cell
type WallComponent struct {
	Pos core.Point
}
