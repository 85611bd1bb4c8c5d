package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/parameter"
)

// SymbolSet is the glyph table for one terminal capability level
// Body corners are named by the screen corner they occupy in the turn
type SymbolSet struct {
	Name string

	Head           rune
	BodyHorizontal rune
	BodyVertical   rune
	BodyTopRight   rune
	BodyTopLeft    rune
	BodyBotRight   rune
	BodyBotLeft    rune

	Fruit     rune
	Wall      rune
	Bug       rune
	Collision rune

	BorderTopLeft    rune
	BorderTopRight   rune
	BorderBotLeft    rune
	BorderBotRight   rune
	BorderHorizontal rune
	BorderVertical   rune

	PowerUps [component.PowerUpKindCount]rune
}

var UnicodeSymbols = SymbolSet{
	Name:             "unicode",
	Head:             '●',
	BodyHorizontal:   '─',
	BodyVertical:     '│',
	BodyTopRight:     '┌',
	BodyTopLeft:      '┐',
	BodyBotRight:     '└',
	BodyBotLeft:      '┘',
	Fruit:            '●',
	Wall:             '█',
	Bug:              '⬤',
	Collision:        '◈',
	BorderTopLeft:    '╭',
	BorderTopRight:   '╮',
	BorderBotLeft:    '╰',
	BorderBotRight:   '╯',
	BorderHorizontal: '═',
	BorderVertical:   '│',
	PowerUps: [component.PowerUpKindCount]rune{
		component.PowerUpInvulnerability: '🛡',
		component.PowerUpSpeedBoost:      '⚡',
		component.PowerUpSlowBugs:        '🐌',
		component.PowerUpExplosion:       '💥',
	},
}

var ASCIISymbols = SymbolSet{
	Name:             "ascii",
	Head:             '@',
	BodyHorizontal:   '-',
	BodyVertical:     '|',
	BodyTopRight:     '/',
	BodyTopLeft:      '\\',
	BodyBotRight:     '\\',
	BodyBotLeft:      '/',
	Fruit:            '*',
	Wall:             '#',
	Bug:              'X',
	Collision:        '#',
	BorderTopLeft:    '+',
	BorderTopRight:   '+',
	BorderBotLeft:    '+',
	BorderBotRight:   '+',
	BorderHorizontal: '-',
	BorderVertical:   '|',
	PowerUps: [component.PowerUpKindCount]rune{
		component.PowerUpInvulnerability: 'I',
		component.PowerUpSpeedBoost:      'S',
		component.PowerUpSlowBugs:        'L',
		component.PowerUpExplosion:       'E',
	},
}

// SymbolsFor picks the set for a terminal width
func SymbolsFor(columns int) *SymbolSet {
	if columns < parameter.UnicodeMinColumns {
		return &ASCIISymbols
	}
	return &UnicodeSymbols
}

// ParseSymbols resolves a configured set name, "auto" or "" defers to the terminal width
func ParseSymbols(name string, columns int) (*SymbolSet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return SymbolsFor(columns), nil
	case "unicode":
		return &UnicodeSymbols, nil
	case "ascii":
		return &ASCIISymbols, nil
	default:
		return nil, fmt.Errorf("unknown symbol set %q", name)
	}
}
