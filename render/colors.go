package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/parameter"
)

// Palette holds the styles for every drawable
// A monochrome palette uses the terminal default for everything
type Palette struct {
	Default tcell.Style
	Snake   tcell.Style
	Fruit   tcell.Style
	Wall    tcell.Style
	Border  tcell.Style
	Debug   tcell.Style
	Status  tcell.Style
	Paused  tcell.Style
	Bugs    [component.BugModeCount]tcell.Style
}

// NewPalette builds the 256-color palette, or a monochrome one when color is false
func NewPalette(color bool) *Palette {
	def := tcell.StyleDefault
	p := &Palette{
		Default: def,
		Snake:   def,
		Fruit:   def,
		Wall:    def,
		Border:  def,
		Debug:   def,
		Status:  def,
		Paused:  def.Reverse(true),
	}
	for i := range p.Bugs {
		p.Bugs[i] = def
	}
	if !color {
		return p
	}

	p.Snake = def.Foreground(tcell.PaletteColor(parameter.ColorSnake))
	p.Fruit = def.Foreground(tcell.PaletteColor(parameter.ColorFruit))
	p.Wall = def.Foreground(tcell.PaletteColor(parameter.ColorWall))
	p.Border = def.Foreground(tcell.PaletteColor(parameter.ColorBorder))
	p.Debug = def.Foreground(tcell.PaletteColor(parameter.ColorDebug))
	p.Paused = p.Snake.Reverse(true).Bold(true)
	for i := range p.Bugs {
		p.Bugs[i] = def.Foreground(tcell.PaletteColor(parameter.BugColors[i]))
	}
	return p
}

// BugStyle returns the style for a mode, falling back to the debug color for unknown modes
func (p *Palette) BugStyle(m component.BugMode) tcell.Style {
	if m >= component.BugModeCount {
		return p.Debug
	}
	return p.Bugs[m]
}
