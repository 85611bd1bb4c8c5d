package parameter

// Layout
const (
	// FieldTop is the screen row of the play field's top border, rows above hold the logo
	FieldTop = 7

	// GridColumnMargin is subtracted from terminal columns to get the grid width
	GridColumnMargin = 2

	// GridRowMargin is subtracted from terminal rows to get the grid height
	GridRowMargin = 11

	// MinTerminalRows is the hard floor below which startup fails
	MinTerminalRows = 19

	// UnicodeMinColumns selects the Unicode symbol set when the terminal is at least this wide
	UnicodeMinColumns = 90

	// ModifierIconsInset is the distance of the modifier icons from the right border
	ModifierIconsInset = 15
)

// 256-color palette indexes
const (
	ColorSnake  = 156
	ColorFruit  = 217
	ColorWall   = 180
	ColorBorder = 223
	ColorDebug  = 153
)

// BugColors indexes the palette by bug mode (Erratic .. Aggressive)
var BugColors = [8]int{75, 166, 124, 178, 36, 55, 15, 88}

// Summary
const (
	// SummaryBoxWidth is the outer width of the end-of-run box
	SummaryBoxWidth = 40

	// SummaryValueColumn is the column values are aligned to
	SummaryValueColumn = 28
)
