package chart

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/coilworks/gosolenoid/internal/sweep"
)

// Preview renders the swept series as stacked terminal line graphs, one
// per quantity, headed by a box of the held parameters.
func Preview(res *sweep.Result, width, height int) string {
	if width <= 0 {
		width = 72
	}
	if height <= 0 {
		height = 8
	}

	var sb strings.Builder

	header := append([]string{}, res.Fixed...)
	header = append(header, fmt.Sprintf("%s: %g to %g over %d samples",
		res.XLabel(), res.X[0], res.X[len(res.X)-1], len(res.X)))
	sb.WriteString(DrawSummaryBox(fmt.Sprintf("SWEEP vs. %s", strings.ToUpper(res.Axis)), header))

	for _, q := range Quantities {
		ys, label, _, err := series(res, q)
		if err != nil {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(asciigraph.Plot(ys,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(label),
		))
		sb.WriteString("\n")
	}

	return sb.String()
}

// DrawSummaryBox frames a title and content lines in a box for terminal
// output.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
