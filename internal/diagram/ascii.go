package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// FloorData is one story of the elevation diagram
type FloorData struct {
	Number       int
	Length       float64 // m
	Width        float64 // m
	Area         float64 // m²
	OccupantLoad int
}

// ElevationData holds data for drawing a building elevation
type ElevationData struct {
	Title       string
	Floors      []FloorData // bottom floor first
	StoryHeight float64     // m
}

// DrawASCIIElevation creates an ASCII elevation with floors stacked bottom-up.
// Floor widths are drawn proportional to floor length.
func DrawASCIIElevation(data ElevationData) string {
	var sb strings.Builder

	maxChars := 36
	minChars := 8

	sb.WriteString("\n")
	title := data.Title
	if title == "" {
		title = "BUILDING ELEVATION"
	}
	sb.WriteString("  " + strings.ToUpper(title) + "\n")
	sb.WriteString("  " + strings.Repeat("─", utf8.RuneCountInString(title)) + "\n\n")

	if len(data.Floors) == 0 {
		sb.WriteString("  (no floors)\n")
		return sb.String()
	}

	var maxLength float64
	totalLoad := 0
	for _, f := range data.Floors {
		maxLength = math.Max(maxLength, f.Length)
		totalLoad += f.OccupantLoad
	}

	charsFor := func(length float64) int {
		if maxLength <= 0 {
			return minChars
		}
		return max(int(math.Round(length/maxLength*float64(maxChars))), minChars)
	}

	// Top floor first
	for i := len(data.Floors) - 1; i >= 0; i-- {
		f := data.Floors[i]
		w := charsFor(f.Length)
		pad := strings.Repeat(" ", maxChars-w)
		elevation := float64(i+1) * data.StoryHeight

		if i == len(data.Floors)-1 {
			sb.WriteString(fmt.Sprintf("  %6.1f m ┌%s┐\n", elevation, strings.Repeat("─", w)))
		} else {
			above := charsFor(data.Floors[i+1].Length)
			sb.WriteString(fmt.Sprintf("  %6.1f m ├%s┤\n", elevation, strings.Repeat("─", max(w, above))))
		}

		label := fmt.Sprintf(" F%d", f.Number)
		fill := label + strings.Repeat(" ", max(w-utf8.RuneCountInString(label), 0))
		sb.WriteString(fmt.Sprintf("           │%s│%s  %8.2f m²  %5d persons\n", fill, pad, f.Area, f.OccupantLoad))
	}
	w := charsFor(data.Floors[0].Length)
	sb.WriteString(fmt.Sprintf("     0.0 m └%s┘\n", strings.Repeat("─", w)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("▀", maxChars+12)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  Stories: %d   Estimated height: %.1f m (%.1f m per story)\n",
		len(data.Floors), float64(len(data.Floors))*data.StoryHeight, data.StoryHeight))
	sb.WriteString(fmt.Sprintf("  Total occupant load: %d persons\n", totalLoad))

	return sb.String()
}

// DrawASCIIFireFlowCurve plots required fire flow against percent involvement
func DrawASCIIFireFlowCurve(gpm []float64) string {
	if len(gpm) == 0 {
		return ""
	}
	graph := asciigraph.Plot(gpm,
		asciigraph.Height(10),
		asciigraph.Width(50),
		asciigraph.Offset(3),
		asciigraph.Precision(0),
		asciigraph.Caption("Required fire flow (gpm) vs involvement, 10% to 100%"),
	)
	return "\n" + indent(graph, "  ") + "\n"
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
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
