package render

import "github.com/gdamore/tcell/v2"

var logoLines = []string{
	"",
	"      _                   .-=-.         .-==-.",
	"     { }    .-=-.       .' O o '.      /  -<' )--_-<",
	"     { }__ /.' O'.\\ ___/ o .-. O \\___ /  .--v`",
	"      \\ `-` /   \\ O`-'o  /     \\  O`-`o /",
	"       `-.-`     '.____.'       `.____.'",
}

// drawLogo writes the banner above the play field
func drawLogo(screen tcell.Screen, style tcell.Style) {
	for y, line := range logoLines {
		drawString(screen, 0, y, line, style)
	}
}

// drawString writes s left to right from (x, y), returning the column after the last rune
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
