package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/engine"
)

// Intent discriminates what a key means before it reaches the engine
type Intent uint8

const (
	IntentNone       Intent = iota
	IntentCommand           // forward Command to the scheduler
	IntentToggleMute        // handled locally by the reader
)

// KeyEntry describes one binding
type KeyEntry struct {
	Intent  Intent
	Command engine.Command
}

func cmd(c engine.Command) KeyEntry {
	return KeyEntry{Intent: IntentCommand, Command: c}
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings, matched case-sensitively
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyUp:     cmd(engine.CmdTurnUp),
			tcell.KeyDown:   cmd(engine.CmdTurnDown),
			tcell.KeyLeft:   cmd(engine.CmdTurnLeft),
			tcell.KeyRight:  cmd(engine.CmdTurnRight),
			tcell.KeyEnter:  cmd(engine.CmdPause),
			tcell.KeyEscape: cmd(engine.CmdQuit),
			tcell.KeyCtrlC:  cmd(engine.CmdQuit),
			tcell.KeyCtrlQ:  cmd(engine.CmdQuit),
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
		},
		Runes: map[rune]KeyEntry{
			'w': cmd(engine.CmdTurnUp),
			'W': cmd(engine.CmdTurnUp),
			's': cmd(engine.CmdTurnDown),
			'S': cmd(engine.CmdTurnDown),
			'a': cmd(engine.CmdTurnLeft),
			'A': cmd(engine.CmdTurnLeft),
			'd': cmd(engine.CmdTurnRight),
			'D': cmd(engine.CmdTurnRight),
			' ': cmd(engine.CmdPause),
			'q': cmd(engine.CmdQuit),
			'Q': cmd(engine.CmdQuit),
			'~': cmd(engine.CmdToggleDebug),
			'm': {Intent: IntentToggleMute},
		},
	}
}

// Lookup resolves a key event
// Unbound keys forward CmdNone, which only matters to a paused game where any key resumes
func (kt *KeyTable) Lookup(ev *tcell.EventKey) KeyEntry {
	var (
		e  KeyEntry
		ok bool
	)
	if ev.Key() == tcell.KeyRune {
		e, ok = kt.Runes[ev.Rune()]
	} else {
		e, ok = kt.SpecialKeys[ev.Key()]
	}
	if !ok {
		return cmd(engine.CmdNone)
	}
	return e
}
