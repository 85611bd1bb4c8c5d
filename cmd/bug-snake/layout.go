package main

import (
	"fmt"

	"github.com/lixenwraith/bug-snake/parameter"
)

// gridSize derives the play field from the terminal size
// The field is clamped to the minimum grid; too few rows is an error
func gridSize(cols, rows int) (width, height int, err error) {
	if rows < parameter.MinTerminalRows {
		return 0, 0, fmt.Errorf("terminal too small: needs at least %d lines, have %d",
			parameter.MinTerminalRows, rows)
	}
	width = max(cols-parameter.GridColumnMargin, parameter.MinGridWidth)
	height = max(rows-parameter.GridRowMargin, parameter.MinGridHeight)
	return width, height, nil
}
