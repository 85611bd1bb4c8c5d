package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/bug-snake/component"
	"github.com/lixenwraith/bug-snake/engine"
	"github.com/lixenwraith/bug-snake/parameter"
)

// FormatSummary renders the end-of-run statistics box printed after the screen is released
// Per-mode kill lines appear only for modes with at least one kill
func FormatSummary(sum engine.Summary) string {
	inner := parameter.SummaryBoxWidth - 2
	var b strings.Builder

	b.WriteString("╔" + strings.Repeat("═", inner) + "╗\n")
	b.WriteString(boxRow("", inner))
	b.WriteString(boxRow(center("FINAL STATISTICS", inner), inner))
	b.WriteString(boxRow("", inner))

	b.WriteString(statRow("Total time", fmt.Sprintf("%ds", int(sum.Elapsed.Seconds())), false, inner))
	b.WriteString(statRow("Fruits eaten", count(sum.FruitsEaten), false, inner))
	b.WriteString(statRow("Max length", count(sum.MaxLength), false, inner))
	b.WriteString(statRow("Bugs eliminated", count(sum.TotalKills()), false, inner))
	for m := component.BugMode(0); m < component.BugModeCount; m++ {
		if n := sum.KillsByMode[m]; n > 0 {
			b.WriteString(statRow(m.String(), count(n), true, inner))
		}
	}
	b.WriteString(statRow("Direction changes", count(sum.DirectionChanges), false, inner))
	b.WriteString(statRow("Power-ups collected", count(sum.PowerUpsCollected), false, inner))
	b.WriteString(statRow("Bugs remaining", count(sum.BugsRemaining), false, inner))

	b.WriteString(boxRow("", inner))
	b.WriteString("╚" + strings.Repeat("═", inner) + "╝\n")

	if sum.RunID != "" {
		fmt.Fprintf(&b, "run %s, %s ticks\n", sum.RunID, count(sum.Ticks))
	}
	return b.String()
}

func count(n int) string {
	return humanize.Comma(int64(n))
}

func center(s string, width int) string {
	pad := max((width-len(s))/2, 0)
	return strings.Repeat(" ", pad) + s
}

func statRow(label, value string, sub bool, inner int) string {
	text := " "
	if sub {
		text += "  "
	}
	text += label
	dots := max(parameter.SummaryValueColumn-len(text), 1)
	text += strings.Repeat(".", dots) + " " + value
	return boxRow(text, inner)
}

func boxRow(text string, inner int) string {
	if len(text) > inner {
		text = text[:inner]
	}
	return "║" + text + strings.Repeat(" ", inner-len(text)) + "║\n"
}
