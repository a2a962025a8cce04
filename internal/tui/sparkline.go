package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sparkBlocks is the 8-level block character set used by sparklines and the area chart.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline converts a slice of float64 values into a block sparkline
// string of exactly `width` characters, colored with color.
//
// Rules:
//   - Empty values → return width spaces
//   - All zeros → return all '▁' (floor level)
//   - Values longer than width → use last width values
//   - Fewer values than width → left-pad with spaces
func RenderSparkline(values []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	maxVal := slices.Max(values)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(values)))
	for _, v := range values {
		var idx int
		if maxVal > 0 {
			idx = int(v / maxVal * 7)
		}
		sb.WriteRune(sparkBlocks[max(0, min(idx, 7))])
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}

// areaChartRows renders values as a filled area chart of height rows and
// width columns, top row first. The baseline is zero and the tallest value
// reaches the top row. Each value is stretched over width/len(values) columns;
// when there are more values than columns the most recent width values are kept.
func areaChartRows(values []float64, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	rows := make([][]rune, height)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", width))
	}
	if len(values) == 0 {
		return runesToStrings(rows)
	}

	maxVal := slices.Max(values)
	colWidth := width / len(values)
	levels := height * 8

	for i, v := range values {
		var filled int
		if maxVal > 0 && v > 0 {
			filled = int(v / maxVal * float64(levels))
		}
		// Keep a visible floor for any positive sample.
		if v > 0 && filled == 0 {
			filled = 1
		}
		for r := 0; r < height; r++ {
			// r counts from the bottom.
			cell := filled - r*8
			var ch rune
			switch {
			case cell <= 0:
				ch = ' '
			case cell >= 8:
				ch = '█'
			default:
				ch = sparkBlocks[cell-1]
			}
			row := rows[height-1-r]
			for c := i * colWidth; c < (i+1)*colWidth; c++ {
				row[c] = ch
			}
		}
	}
	return runesToStrings(rows)
}

func runesToStrings(rows [][]rune) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = string(r)
	}
	return out
}
