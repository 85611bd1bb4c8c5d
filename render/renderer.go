package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/core"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/parameter"
)

// Renderer draws snapshots onto a tcell screen
// Field cell (x, y) maps to screen (x, top+y); the status and debug lines sit below the bottom border
type Renderer struct {
	mu     sync.Mutex
	screen tcell.Screen
	sym    *SymbolSet
	pal    *Palette
	top    int
}

// NewRenderer creates a renderer, nil arguments select ASCII glyphs and a monochrome palette
func NewRenderer(screen tcell.Screen, sym *SymbolSet, pal *Palette) *Renderer {
	if sym == nil {
		sym = &ASCIISymbols
	}
	if pal == nil {
		pal = NewPalette(false)
	}
	return &Renderer{
		screen: screen,
		sym:    sym,
		pal:    pal,
		top:    parameter.FieldTop,
	}
}

// Symbols returns the active glyph set
func (r *Renderer) Symbols() *SymbolSet {
	return r.sym
}

// FieldOrigin returns the screen row of field row 0
func (r *Renderer) FieldOrigin() int {
	return r.top
}

// Present implements engine.FrameSink
func (r *Renderer) Present(s engine.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.screen.Clear()

	drawLogo(r.screen, r.pal.Snake)
	r.drawBorder(s)
	r.drawPowerUps(s)
	r.drawWalls(s)
	r.drawFruits(s)
	r.drawBugs(s)
	r.drawSnake(s)
	r.drawStatus(s)
	if s.Debug {
		r.drawDebug(s)
	}
	if s.Paused {
		r.drawCentered(s, " PAUSED - press any key ", r.pal.Paused)
	}

	r.screen.Show()
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, r.top+y, ch, nil, style)
}

func (r *Renderer) drawBorder(s engine.Snapshot) {
	st := r.pal.Border
	for x := 1; x < s.Width; x++ {
		r.set(x, 0, r.sym.BorderHorizontal, st)
		r.set(x, s.Height, r.sym.BorderHorizontal, st)
	}
	for y := 1; y < s.Height; y++ {
		r.set(0, y, r.sym.BorderVertical, st)
		r.set(s.Width, y, r.sym.BorderVertical, st)
	}
	r.set(0, 0, r.sym.BorderTopLeft, st)
	r.set(s.Width, 0, r.sym.BorderTopRight, st)
	r.set(0, s.Height, r.sym.BorderBotLeft, st)
	r.set(s.Width, s.Height, r.sym.BorderBotRight, st)
}

func (r *Renderer) drawWalls(s engine.Snapshot) {
	for _, p := range s.Walls {
		r.set(p.X, p.Y, r.sym.Wall, r.pal.Wall)
	}
}

func (r *Renderer) drawFruits(s engine.Snapshot) {
	for _, p := range s.Fruits {
		r.set(p.X, p.Y, r.sym.Fruit, r.pal.Fruit)
	}
}

func (r *Renderer) drawPowerUps(s engine.Snapshot) {
	for _, pu := range s.PowerUps {
		ch := '?'
		if int(pu.Kind) < len(r.sym.PowerUps) {
			ch = r.sym.PowerUps[pu.Kind]
		}
		r.set(pu.Pos.X, pu.Pos.Y, ch, r.pal.Default)
	}
}

func (r *Renderer) drawBugs(s engine.Snapshot) {
	for _, b := range s.Bugs {
		r.set(b.Pos.X, b.Pos.Y, r.sym.Bug, r.pal.BugStyle(b.Mode))
	}
}

// drawSnake paints tail first so the head wins on overlap after a lethal move
func (r *Renderer) drawSnake(s engine.Snapshot) {
	for i := len(s.Snake) - 1; i >= 0; i-- {
		p := s.Snake[i]
		r.set(p.X, p.Y, BodyGlyph(s.Snake, i, r.sym), r.pal.Snake)
	}
	if s.Blocked {
		r.set(s.BlockedAt.X, s.BlockedAt.Y, r.sym.Collision, r.pal.Snake)
	}
}

// StatusLine formats the score bar
func StatusLine(s engine.Snapshot) string {
	return fmt.Sprintf("Time: %3ds  Score: %d  Walls: %d  Bugs: %d",
		int(s.Elapsed.Seconds()), s.Score, len(s.Walls), len(s.Bugs))
}

// ModifierIcons lists the glyphs of the active timed effects
func ModifierIcons(m engine.Modifiers, sym *SymbolSet) string {
	var b strings.Builder
	if m.Invulnerable.Active {
		b.WriteRune(sym.PowerUps[component.PowerUpInvulnerability])
		b.WriteByte(' ')
	}
	if m.SpeedBoost.Active {
		b.WriteRune(sym.PowerUps[component.PowerUpSpeedBoost])
		b.WriteByte(' ')
	}
	if m.SlowBugs.Active {
		b.WriteRune(sym.PowerUps[component.PowerUpSlowBugs])
		b.WriteByte(' ')
	}
	return b.String()
}

func (r *Renderer) drawStatus(s engine.Snapshot) {
	y := s.Height + 1
	drawString(r.screen, 1, r.top+y, StatusLine(s), r.pal.Status)

	iconX := max(s.Width-parameter.ModifierIconsInset, 1)
	drawString(r.screen, iconX, r.top+y, ModifierIcons(s.Modifiers, r.sym), r.pal.Status)
}

// DebugLines formats the two diagnostic rows
func DebugLines(s engine.Snapshot) (string, string) {
	head := core.Point{}
	if len(s.Snake) > 0 {
		head = s.Snake[0]
	}
	invul := 0
	if s.Modifiers.Invulnerable.Active {
		invul = 1
	}
	first := fmt.Sprintf("DEBUG: Head(%d,%d) Dir: %s Invul: %d", head.X, head.Y, s.Heading, invul)

	var b strings.Builder
	b.WriteString("Bugs: ")
	for _, bug := range s.Bugs {
		fmt.Fprintf(&b, "%d:(%d,%d,%s) ", bug.Index, bug.Pos.X, bug.Pos.Y, bug.Mode.Tag())
	}
	return first, strings.TrimRight(b.String(), " ")
}

func (r *Renderer) drawDebug(s engine.Snapshot) {
	first, second := DebugLines(s)
	drawString(r.screen, 0, r.top+s.Height+2, first, r.pal.Debug)
	drawString(r.screen, 0, r.top+s.Height+3, second, r.pal.Debug)
}

func (r *Renderer) drawCentered(s engine.Snapshot, msg string, style tcell.Style) {
	x := max((s.Width+1-len([]rune(msg)))/2, 1)
	drawString(r.screen, x, r.top+s.Height/2, msg, style)
}
