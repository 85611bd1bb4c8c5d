package render

import (
	"github.com/lixenwraith/bug-snake/core"
)

// BodyGlyph returns the connector for segment idx from the directions to its neighbours
// in is the step from the previous segment, out the step to the next one
func BodyGlyph(segs []core.Point, idx int, sym *SymbolSet) rune {
	if idx < 0 || idx >= len(segs) {
		return ' '
	}
	if idx == 0 {
		return sym.Head
	}

	in := core.DirectionOf(segs[idx-1], segs[idx])

	// Tail only has a predecessor
	if idx == len(segs)-1 {
		if in == core.DirLeft || in == core.DirRight {
			return sym.BodyHorizontal
		}
		return sym.BodyVertical
	}

	out := core.DirectionOf(segs[idx], segs[idx+1])

	switch {
	case in == out:
		if in == core.DirUp || in == core.DirDown {
			return sym.BodyVertical
		}
		return sym.BodyHorizontal
	case (in == core.DirUp && out == core.DirRight) || (in == core.DirLeft && out == core.DirDown):
		return sym.BodyTopRight
	case (in == core.DirUp && out == core.DirLeft) || (in == core.DirRight && out == core.DirDown):
		return sym.BodyTopLeft
	case (in == core.DirDown && out == core.DirRight) || (in == core.DirLeft && out == core.DirUp):
		return sym.BodyBotRight
	case (in == core.DirDown && out == core.DirLeft) || (in == core.DirRight && out == core.DirUp):
		return sym.BodyBotLeft
	}
	return ' '
}
