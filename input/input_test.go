package input

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/engine"
)

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want engine.Command
	}{
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), engine.CmdTurnUp},
		{"W", tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), engine.CmdTurnUp},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), engine.CmdTurnLeft},
		{"s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), engine.CmdTurnDown},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), engine.CmdTurnRight},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), engine.CmdTurnUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), engine.CmdTurnDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), engine.CmdTurnLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), engine.CmdTurnRight},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), engine.CmdPause},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), engine.CmdPause},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), engine.CmdQuit},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), engine.CmdQuit},
		{"esc", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.CmdQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.CmdQuit},
		{"tilde", tcell.NewEventKey(tcell.KeyRune, '~', tcell.ModNone), engine.CmdToggleDebug},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), engine.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := kt.Lookup(tt.ev)
			if e.Intent != IntentCommand {
				t.Fatalf("intent = %v, want command", e.Intent)
			}
			if e.Command != tt.want {
				t.Errorf("command = %v, want %v", e.Command, tt.want)
			}
		})
	}

	if e := kt.Lookup(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)); e.Intent != IntentToggleMute {
		t.Errorf("m intent = %v, want mute", e.Intent)
	}
}

// scriptedSource replays events then reports a finalized screen
type scriptedSource struct {
	events []tcell.Event
	syncs  int
}

func (s *scriptedSource) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *scriptedSource) Sync() { s.syncs++ }

func TestReaderForwardsCommands(t *testing.T) {
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone),
		tcell.NewEventResize(80, 24),
		tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
	}}
	out := make(chan engine.Command, 8)
	muted := 0
	r := NewReader(src, nil, out, func() bool { muted++; return true })

	r.Run(context.Background())

	var got []engine.Command
	for c := range out {
		got = append(got, c)
	}
	want := []engine.Command{engine.CmdTurnUp, engine.CmdNone, engine.CmdQuit}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
	if muted != 1 {
		t.Errorf("mute called %d times, want 1", muted)
	}
	if src.syncs != 1 {
		t.Errorf("resize synced %d times, want 1", src.syncs)
	}
}

func TestReaderStopsOnCancel(t *testing.T) {
	src := &scriptedSource{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone),
	}}
	out := make(chan engine.Command) // unbuffered, nobody reads
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewReader(src, nil, out, nil).Run(ctx)

	if _, ok := <-out; ok {
		t.Error("output should be closed after cancel")
	}
	if len(src.events) != 1 {
		t.Errorf("reader consumed %d events after cancel", 2-len(src.events))
	}
}
