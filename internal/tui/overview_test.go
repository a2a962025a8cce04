package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dataprotect/dpdash/internal/model"
)

func TestRenderDashboard_LoadingShowsOnlyIndicator(t *testing.T) {
	out := stripANSI(RenderDashboard(makeFixtureView(), true, 120))

	assert.Contains(t, out, "Loading dashboard metrics...")
	assert.NotContains(t, out, "Active Jobs")
	assert.NotContains(t, out, "SLA Compliance")
	assert.NotContains(t, out, "prod-db-01")
}

func TestRenderDashboard_FullView(t *testing.T) {
	out := stripANSI(RenderDashboard(makeFixtureView(), false, 140))

	assert.Contains(t, out, "Dashboard Overview")

	// Summary cards.
	assert.Contains(t, out, "Active Jobs")
	assert.Contains(t, out, "Success Rate (30d)")
	assert.Contains(t, out, "97.3%")
	assert.Contains(t, out, "45.0 TB")
	assert.Contains(t, out, "45.0% of capacity")
	assert.Contains(t, out, "$5,300")
	assert.Contains(t, out, "vs traditional solutions")

	// Job list.
	assert.Contains(t, out, "Recent Backup Jobs")
	assert.Contains(t, out, "prod-db-01")
	assert.Contains(t, out, "prod-app-02")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Running")
	assert.Contains(t, out, "Failed")
	assert.Contains(t, out, "42%")

	// SLA panel.
	assert.Contains(t, out, "✓ 0.5h / 2h target")
	assert.Contains(t, out, "✓ 15min / 60min target")
	assert.Contains(t, out, "✓ 99.99%")

	// Trend chart.
	assert.Contains(t, out, "Storage Usage Trends (2 Days)")
	assert.Contains(t, out, "2025-01-05")
	assert.Contains(t, out, "2025-01-06")
	assert.Contains(t, out, "45,000 GB")
}

func TestRenderDashboard_NilViewRendersDefaults(t *testing.T) {
	var out string
	assert.NotPanics(t, func() {
		out = stripANSI(RenderDashboard(nil, false, 140))
	})

	assert.Contains(t, out, "0.0%")
	assert.Contains(t, out, "0.0 TB")
	assert.Contains(t, out, "$0")
	assert.Contains(t, out, "0.5h / 2h target")
	assert.Contains(t, out, "15min / 60min target")
	assert.Contains(t, out, "99.99%")
	assert.Contains(t, out, "No recent jobs")
	assert.Contains(t, out, "No storage trend data")
}

func TestRenderDashboard_IsPure(t *testing.T) {
	view := makeFixtureView()
	assert.Equal(t, RenderDashboard(view, false, 120), RenderDashboard(view, false, 120))
}

func TestRenderDashboard_MissedObjectiveMarked(t *testing.T) {
	view := makeFixtureView()
	view.Metrics.SLA.RTOHours = 3

	out := stripANSI(RenderDashboard(view, false, 140))
	assert.Contains(t, out, "✗ 3h / 2h target")
}

func TestRenderDashboard_NarrowAndZeroWidth(t *testing.T) {
	view := makeFixtureView()
	for _, w := range []int{0, 40, 79} {
		out := stripANSI(RenderDashboard(view, false, w))
		assert.Contains(t, out, "Recent Backup Jobs", "width=%d", w)
		assert.Contains(t, out, "SLA Compliance", "width=%d", w)
	}
}

func TestRenderDashboard_UnknownStatusBadge(t *testing.T) {
	view := makeFixtureView()
	view.Jobs = []model.JobSummary{{ID: "backup-x", Status: model.JobUnknown}}

	out := stripANSI(RenderDashboard(view, false, 140))
	assert.Contains(t, out, "backup-x", "job ID is shown when the instance name is missing")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "Started: ---")
}

func TestRenderDashboard_SparklinesOnlyWithHistory(t *testing.T) {
	view := makeFixtureView()
	history := model.NewRefreshHistory(0)
	history.Push(model.PointFromView(view))

	with := stripANSI(renderDashboard(view, false, 140, history, "*"))
	without := stripANSI(RenderDashboard(view, false, 140))
	assert.Greater(t, strings.Count(with, "█"), strings.Count(without, "█"))
}

func TestRenderMiniBar(t *testing.T) {
	cases := []struct {
		percent  float64
		width    int
		wantFill int
	}{
		{0, 10, 0},
		{100, 10, 10},
		{75, 8, 6},
		{99.99, 10, 9},
		{150, 4, 4},
		{-5, 4, 0},
	}
	for _, tc := range cases {
		result := renderMiniBar(tc.percent, tc.width)
		assert.Len(t, []rune(result), tc.width, "total bar width percent=%v", tc.percent)
		assert.Equal(t, tc.wantFill, strings.Count(result, "█"), "filled count percent=%v width=%v", tc.percent, tc.width)
	}
	assert.Equal(t, "", renderMiniBar(50, 0))
}
