package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dataprotect/dpdash/internal/format"
	"github.com/dataprotect/dpdash/internal/model"
)

const trendChartHeight = 6

// renderTrendsPanel renders the storage trend area chart with a GB axis on
// the left and the first and last dates underneath.
func renderTrendsPanel(points []model.TrendPoint, width int) string {
	inner := max(width-4, 20)

	title := "Storage Usage Trends"
	if len(points) > 0 {
		title += fmt.Sprintf(" (%d Days)", len(points))
	}
	parts := []string{StylePanelTitle.Render(title), ""}

	if len(points) == 0 {
		parts = append(parts, StyleDim.Render("No storage trend data"))
		return StylePanel.Width(inner + 2).Render(strings.Join(parts, "\n"))
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.StorageGB
	}
	top := format.FormatNumber(int64(slices.Max(values))) + " GB"
	bottom := "0 GB"
	axisW := max(lipgloss.Width(top), lipgloss.Width(bottom)) + 1
	chartW := max(inner-axisW-1, 1)

	area := lipgloss.NewStyle().Foreground(colorBrand)
	for i, row := range areaChartRows(values, chartW, trendChartHeight) {
		label := ""
		switch i {
		case 0:
			label = top
		case trendChartHeight - 1:
			label = bottom
		}
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%*s", axisW, label))+"│"+area.Render(row))
	}
	parts = append(parts, strings.Repeat(" ", axisW)+"└"+strings.Repeat("─", chartW))
	parts = append(parts, strings.Repeat(" ", axisW+1)+dateAxis(points, chartW))

	return StylePanel.Width(inner + 2).Render(strings.Join(parts, "\n"))
}

// dateAxis lays out the first and last dates of the series across width
// columns. A single point shows only its own date.
func dateAxis(points []model.TrendPoint, width int) string {
	first := points[0].Date
	if len(points) == 1 {
		return StyleDim.MaxWidth(width).Render(first)
	}
	last := points[len(points)-1].Date
	gap := width - lipgloss.Width(first) - lipgloss.Width(last)
	if gap < 1 {
		return StyleDim.MaxWidth(width).Render(first)
	}
	return StyleDim.Render(first + strings.Repeat(" ", gap) + last)
}
