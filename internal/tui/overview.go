package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/model"
)

// loadingText is shown alone until the first load cycle settles.
const loadingText = "Loading dashboard metrics..."

// sideBySideWidth is the terminal width from which the job list and the SLA
// panel share a row.
const sideBySideWidth = 100

// RenderDashboard renders the dashboard page body for view. It is a pure
// function of its arguments: a nil view renders every default value, and
// loading renders only the loading indicator.
func RenderDashboard(view *model.DashboardView, loading bool, width int) string {
	return renderDashboard(view, loading, width, nil, spinner.Dot.Frames[0])
}

// renderDashboard is RenderDashboard with the live spinner frame and the
// refresh history used by the card sparklines.
func renderDashboard(view *model.DashboardView, loading bool, width int, history *model.RefreshHistory, spin string) string {
	if width <= 0 {
		width = 80
	}
	if loading {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			StyleSpinner.Render(spin)+" "+loadingText)
	}

	m := model.DefaultMetrics()
	var jobs []model.JobSummary
	var trends []model.TrendPoint
	if view != nil {
		m = view.Metrics
		jobs = view.Jobs
		trends = view.Trends
	}
	stats := engine.Derive(m)

	cards := renderMetricsRow(summaryCards(m, stats, history), width, history != nil)

	var middle string
	if width >= sideBySideWidth {
		left := width * 3 / 5
		middle = lipgloss.JoinHorizontal(lipgloss.Top,
			renderJobsPanel(jobs, left),
			renderSLAPanel(stats, width-left),
		)
	} else {
		middle = lipgloss.JoinVertical(lipgloss.Left,
			renderJobsPanel(jobs, width),
			renderSLAPanel(stats, width),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		StylePageTitle.Render(pages[pageDashboard].Title),
		cards,
		middle,
		renderTrendsPanel(trends, width),
	)
}
