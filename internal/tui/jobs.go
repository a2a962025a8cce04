package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/dataprotect/dpdash/internal/format"
	"github.com/dataprotect/dpdash/internal/model"
)

// statusBadge renders the status chip shown at the right of a job row.
func statusBadge(s model.JobStatus) string {
	switch s {
	case model.JobCompleted:
		return StyleBadgeCompleted.Render("✓ Completed")
	case model.JobRunning:
		return StyleBadgeRunning.Render("● Running")
	case model.JobFailed:
		return StyleBadgeFailed.Render("✗ Failed")
	default:
		return StyleBadgeUnknown.Render("? Unknown")
	}
}

// renderProgress draws the determinate progress bar of a running job,
// followed by its percentage.
func renderProgress(pct float64, width int) string {
	bar := progress.New(
		progress.WithSolidFill(string(colorBlue)),
		progress.WithWidth(width),
	)
	return bar.ViewAs(clampUnit(pct / 100))
}

func clampUnit(f float64) float64 {
	return max(0, min(f, 1))
}

// renderJobRow renders one job: name and badge, start time, and a progress
// bar while the job is running.
func renderJobRow(j model.JobSummary, width int) string {
	name := j.InstanceName
	if name == "" {
		name = j.ID
	}
	badge := statusBadge(j.Status)

	nameW := max(width-lipgloss.Width(badge)-1, 1)
	left := StyleBold.MaxWidth(nameW).Render(name)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(badge), 1)

	lines := []string{
		left + strings.Repeat(" ", gap) + badge,
		StyleDim.Render("Started: " + format.FormatTimestamp(j.StartTime)),
	}
	if j.Status == model.JobRunning {
		lines = append(lines, renderProgress(j.ProgressPercent, width))
	}
	return strings.Join(lines, "\n")
}

// renderJobsPanel renders the "Recent Backup Jobs" panel at the given outer width.
func renderJobsPanel(jobs []model.JobSummary, width int) string {
	// Border (2) and padding (2) surround the content.
	inner := max(width-4, 10)

	parts := []string{StylePanelTitle.Render("Recent Backup Jobs"), ""}
	if len(jobs) == 0 {
		parts = append(parts, StyleDim.Render("No recent jobs"))
	}
	for i, j := range jobs {
		if i > 0 {
			parts = append(parts, StyleDim.Render(strings.Repeat("─", inner)))
		}
		parts = append(parts, renderJobRow(j, inner))
	}
	return StylePanel.Width(inner + 2).Render(strings.Join(parts, "\n"))
}
