package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("sim screen init: %v", err)
	}
	screen.SetSize(100, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func testSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Width:  40,
		Height: 10,
		Snake: []core.Point{
			{X: 20, Y: 4}, {X: 20, Y: 5}, {X: 19, Y: 5}, {X: 18, Y: 5}, {X: 17, Y: 5},
		},
		Heading:  core.DirUp,
		Walls:    []core.Point{{X: 5, Y: 5}},
		Fruits:   []core.Point{{X: 30, Y: 2}},
		Bugs:     []engine.BugView{{Index: 3, Pos: core.Point{X: 10, Y: 8}, Mode: component.BugStalker}},
		PowerUps: []engine.PowerUpView{{Pos: core.Point{X: 33, Y: 7}, Kind: component.PowerUpSlowBugs}},
		Elapsed:  7 * time.Second,
		Score:    3,
	}
}

func TestBodyGlyph(t *testing.T) {
	sym := &UnicodeSymbols
	tests := []struct {
		name string
		segs []core.Point
		idx  int
		want rune
	}{
		{"head", []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, 0, sym.Head},
		{"straight horizontal", []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, 1, sym.BodyHorizontal},
		{"straight vertical", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}}, 1, sym.BodyVertical},
		// Head above, tail to the left: the cell joins up and left
		{"up-left corner", []core.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 4, Y: 5}}, 1, sym.BodyBotLeft},
		{"up-right corner", []core.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 6, Y: 5}}, 1, sym.BodyBotRight},
		{"down-left corner", []core.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 4, Y: 5}}, 1, sym.BodyTopLeft},
		{"down-right corner", []core.Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 6, Y: 5}}, 1, sym.BodyTopRight},
		{"horizontal tail", []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, 1, sym.BodyHorizontal},
		{"vertical tail", []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}, 1, sym.BodyVertical},
		{"out of range", []core.Point{{X: 5, Y: 5}}, 3, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BodyGlyph(tt.segs, tt.idx, sym); got != tt.want {
				t.Errorf("BodyGlyph = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbolSelection(t *testing.T) {
	if SymbolsFor(89) != &ASCIISymbols {
		t.Error("narrow terminal should use ASCII")
	}
	if SymbolsFor(90) != &UnicodeSymbols {
		t.Error("90 columns should use Unicode")
	}

	got, err := ParseSymbols("ASCII", 200)
	if err != nil || got != &ASCIISymbols {
		t.Errorf("ParseSymbols(ASCII) = %v, %v", got, err)
	}
	got, err = ParseSymbols("auto", 120)
	if err != nil || got != &UnicodeSymbols {
		t.Errorf("ParseSymbols(auto) = %v, %v", got, err)
	}
	if _, err := ParseSymbols("emoji", 120); err == nil {
		t.Error("unknown set should fail")
	}
}

func TestPresentDrawsField(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, &ASCIISymbols, NewPalette(true))
	snap := testSnapshot()
	r.Present(snap)

	top := r.FieldOrigin()
	checks := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left corner", 0, 0, '+'},
		{"bottom-right corner", 40, 10, '+'},
		{"top border", 10, 0, '-'},
		{"left border", 0, 5, '|'},
		{"head", 20, 4, '@'},
		{"corner body", 20, 5, '/'},
		{"body", 18, 5, '-'},
		{"wall", 5, 5, '#'},
		{"fruit", 30, 2, '*'},
		{"bug", 10, 8, 'X'},
		{"power-up", 33, 7, 'L'},
		{"empty", 25, 8, ' '},
	}
	for _, c := range checks {
		if got := runeAt(screen, c.x, top+c.y); got != c.want {
			t.Errorf("%s at (%d,%d) = %q, want %q", c.name, c.x, c.y, got, c.want)
		}
	}

	_, _, style, _ := screen.GetContent(10, top+8)
	if style != NewPalette(true).BugStyle(component.BugStalker) {
		t.Error("bug not drawn in its mode color")
	}

	// Logo occupies the rows above the field
	var logo strings.Builder
	for x := 0; x < 60; x++ {
		logo.WriteRune(runeAt(screen, x, 2))
	}
	if !strings.Contains(logo.String(), "{ }") {
		t.Errorf("logo row missing: %q", logo.String())
	}
}

func TestPresentBlockedAndPaused(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, &ASCIISymbols, nil)

	snap := testSnapshot()
	snap.Blocked = true
	snap.BlockedAt = core.Point{X: 20, Y: 0}
	snap.Paused = true
	r.Present(snap)

	top := r.FieldOrigin()
	if got := runeAt(screen, 20, top); got != ASCIISymbols.Collision {
		t.Errorf("collision glyph = %q", got)
	}

	var row strings.Builder
	for x := 0; x < 41; x++ {
		row.WriteRune(runeAt(screen, x, top+snap.Height/2))
	}
	if !strings.Contains(row.String(), "PAUSED") {
		t.Errorf("paused banner missing: %q", row.String())
	}
}

func TestStatusLine(t *testing.T) {
	snap := testSnapshot()
	want := "Time:   7s  Score: 3  Walls: 1  Bugs: 1"
	if got := StatusLine(snap); got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}

	var mods engine.Modifiers
	if ModifierIcons(mods, &ASCIISymbols) != "" {
		t.Error("no modifiers should give no icons")
	}
	mods.Invulnerable.Activate(10)
	mods.SlowBugs.Activate(10)
	if got := ModifierIcons(mods, &ASCIISymbols); got != "I L " {
		t.Errorf("icons = %q", got)
	}
}

func TestDebugLines(t *testing.T) {
	snap := testSnapshot()
	snap.Modifiers.Invulnerable.Activate(5)
	first, second := DebugLines(snap)
	if first != "DEBUG: Head(20,4) Dir: UP Invul: 1" {
		t.Errorf("first = %q", first)
	}
	if second != "Bugs: 3:(10,8,STK)" {
		t.Errorf("second = %q", second)
	}
}

func TestDebugDrawnOnlyWhenEnabled(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen, &ASCIISymbols, nil)
	snap := testSnapshot()
	y := r.FieldOrigin() + snap.Height + 2

	r.Present(snap)
	if runeAt(screen, 0, y) == 'D' {
		t.Error("debug line drawn while disabled")
	}

	snap.Debug = true
	r.Present(snap)
	if runeAt(screen, 0, y) != 'D' {
		t.Error("debug line missing while enabled")
	}
}

func TestMonochromePalette(t *testing.T) {
	p := NewPalette(false)
	if p.Snake != tcell.StyleDefault || p.BugStyle(component.BugAggressive) != tcell.StyleDefault {
		t.Error("monochrome palette should use the default style")
	}
	if NewPalette(true).Snake == tcell.StyleDefault {
		t.Error("color palette should set the snake color")
	}
}

func TestFormatSummary(t *testing.T) {
	sum := engine.Summary{
		RunID:             "run-1",
		Elapsed:           83 * time.Second,
		FruitsEaten:       12,
		MaxLength:         17,
		DirectionChanges:  1234,
		PowerUpsCollected: 2,
		Ticks:             830,
		BugsRemaining:     4,
	}
	sum.KillsByMode[component.BugStalker] = 2
	sum.KillsByMode[component.BugAggressive] = 1

	out := FormatSummary(sum)
	for _, want := range []string{
		"FINAL STATISTICS",
		"Total time",
		" 83s",
		"Bugs eliminated",
		"   Stalker",
		"   Aggressive",
		"1,234",
		"Bugs remaining",
		"run run-1, 830 ticks",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Erratic") {
		t.Error("modes without kills should be omitted")
	}

	// Every box row has the same rune width
	lines := strings.Split(strings.TrimSpace(out), "\n")
	width := len([]rune(lines[0]))
	for _, l := range lines {
		if strings.HasPrefix(l, "run ") {
			continue
		}
		if n := len([]rune(l)); n != width {
			t.Errorf("row width %d, want %d: %q", n, width, l)
		}
	}
}
