package engine

import "github.com/lixenwraith/bug-snake/core"

// Command is one decoded player input
type Command uint8

const (
	CmdNone Command = iota
	CmdTurnUp
	CmdTurnDown
	CmdTurnLeft
	CmdTurnRight
	CmdPause
	CmdQuit
	CmdToggleDebug
)

func (c Command) String() string {
	switch c {
	case CmdTurnUp:
		return "turn-up"
	case CmdTurnDown:
		return "turn-down"
	case CmdTurnLeft:
		return "turn-left"
	case CmdTurnRight:
		return "turn-right"
	case CmdPause:
		return "pause"
	case CmdQuit:
		return "quit"
	case CmdToggleDebug:
		return "toggle-debug"
	default:
		return "none"
	}
}

// Direction returns the heading of a turn command
func (c Command) Direction() (core.Direction, bool) {
	switch c {
	case CmdTurnUp:
		return core.DirUp, true
	case CmdTurnDown:
		return core.DirDown, true
	case CmdTurnLeft:
		return core.DirLeft, true
	case CmdTurnRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}
