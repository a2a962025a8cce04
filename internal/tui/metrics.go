package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/format"
	"github.com/dataprotect/dpdash/internal/model"
)

// summaryCard is one of the four headline cards.
type summaryCard struct {
	title   string
	value   string
	caption string
	spark   []float64
	color   lipgloss.Color
}

// renderMetricCard renders a single summary card.
//
// Layout (inside a rounded border):
//
//	╭──────────────────╮
//	│ Title            │   ← dim
//	│ 45.0 TB          │   ← bold, card color
//	│ 45.0% of capacity│   ← dim caption
//	│ ▁▂▃▅▇█▇▅▃▂       │   ← refresh history, only when withSpark
//	╰──────────────────╯
func renderMetricCard(c summaryCard, cardWidth int, withSpark bool) string {
	const minCardWidth = 8
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	// Inner width = card width minus border (2) and padding (2), see the
	// Width(cardWidth-4) below which already includes padding.
	innerWidth := max(cardWidth-6, 1)

	lines := []string{
		StyleDim.Render(c.title),
		lipgloss.NewStyle().Bold(true).Foreground(c.color).Render(c.value),
		StyleDim.Render(c.caption),
	}
	if withSpark {
		lines = append(lines, RenderSparkline(c.spark, innerWidth, c.color))
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// summaryCards builds the four headline cards from derived stats.
// history may be nil, in which case the sparklines are empty.
func summaryCards(m model.MetricsSnapshot, stats engine.Stats, history *model.RefreshHistory) []summaryCard {
	var activeSpark, successSpark, storageSpark []float64
	if history != nil {
		activeSpark = history.Values(model.FieldActiveJobs)
		successSpark = history.Values(model.FieldSuccessRate)
		storageSpark = history.Values(model.FieldStorageUsed)
	}
	return []summaryCard{
		{
			title:   "Active Jobs",
			value:   format.FormatNumber(int64(stats.ActiveJobs)),
			caption: "in progress",
			spark:   activeSpark,
			color:   colorBlue,
		},
		{
			title:   "Success Rate (30d)",
			value:   format.FormatPercent(stats.SuccessRate),
			caption: "completed without error",
			spark:   successSpark,
			color:   severityColor(successSeverity(stats.SuccessRate), colorGreen),
		},
		{
			title:   "Storage Used",
			value:   format.FormatTB(m.StorageUsedGB),
			caption: format.FormatPercent(stats.StoragePercent) + " of capacity",
			spark:   storageSpark,
			color:   severityColor(storageSeverity(stats.StoragePercent), colorPurple),
		},
		{
			title:   "Monthly Savings",
			value:   format.FormatCurrency(stats.CostSavings),
			caption: "vs traditional solutions",
			color:   colorGreen,
		},
	}
}

// renderMetricsRow renders the summary cards.
// Wide terminals (>= 80 cols): 1x4 horizontal row.
// Narrow terminals (< 80 cols): 2x2 grid.
func renderMetricsRow(cards []summaryCard, width int, withSpark bool) string {
	if width < 80 {
		// Each card renders at (cardWidth-2) chars wide, so two cards fill width
		// when cardWidth = (width+4)/2.
		cardWidth := max((width+4)/2, 8)
		rendered := make([]string, len(cards))
		for i, c := range cards {
			rendered[i] = renderMetricCard(c, cardWidth, withSpark)
		}
		top := lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], rendered[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, rendered[2], rendered[3])
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}

	// Four cards fill width when 4*(cardWidth-2) = width.
	cardWidth := max((width+8)/4, 20)
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = renderMetricCard(c, cardWidth, withSpark)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
