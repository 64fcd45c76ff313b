package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// BalanceData holds one axis of a sliding check for drawing
type BalanceData struct {
	Title     string
	Design    float64 // design force
	Restraint float64 // lashings + friction
	Friction  float64 // friction part of Restraint

	// Remedy
	Additional int
	Unit       float64 // restraint per added lashing
}

// DrawForceBalance draws design force against restraint as horizontal bars
func DrawForceBalance(data BalanceData) string {
	var sb strings.Builder

	width := 40
	largest := max(data.Design, data.Restraint+float64(data.Additional)*data.Unit)
	if largest <= 0 {
		largest = 1
	}
	bar := func(v float64) int {
		n := int(v / largest * float64(width))
		if n < 0 {
			return 0
		}
		return n
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(data.Title)))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", len(data.Title))))

	frictionLen := bar(data.Friction)
	lashingLen := max(bar(data.Restraint)-frictionLen, 0)

	sb.WriteString(fmt.Sprintf("  Design     │%s %.2f\n", strings.Repeat("█", bar(data.Design)), data.Design))
	sb.WriteString(fmt.Sprintf("  Restraint  │%s%s %.2f\n", strings.Repeat("▒", frictionLen), strings.Repeat("█", lashingLen), data.Restraint))
	if data.Additional > 0 {
		fixed := data.Restraint + float64(data.Additional)*data.Unit
		sb.WriteString(fmt.Sprintf("  + %-3d      │%s %.2f\n", data.Additional, strings.Repeat("░", bar(fixed)), fixed))
	}
	sb.WriteString("\n  ▒ friction  █ lashings  ░ with additional lashings\n")

	return sb.String()
}

// DrawRemedyGraph plots restraint against the number of added lashings,
// with the design force as a horizontal reference line.
func DrawRemedyGraph(data BalanceData) string {
	if data.Additional <= 0 || data.Unit <= 0 {
		return ""
	}

	// Keep the graph readable for large counts
	steps := data.Additional
	stride := 1
	if steps > 60 {
		stride = (steps + 59) / 60
	}

	var restraint, design []float64
	for k := 0; k <= steps; k += stride {
		restraint = append(restraint, data.Restraint+float64(k)*data.Unit)
		design = append(design, data.Design)
	}
	if (steps % stride) != 0 {
		restraint = append(restraint, data.Restraint+float64(steps)*data.Unit)
		design = append(design, data.Design)
	}

	graph := asciigraph.PlotMany([][]float64{restraint, design},
		asciigraph.Height(12),
		asciigraph.Caption(fmt.Sprintf("%s: restraint vs. added lashings (0-%d)", data.Title, steps)),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
