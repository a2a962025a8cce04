package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// page identifies one top-level screen.
type page int

const (
	pageDashboard page = iota
	pageBackupJobs
	pagePolicies
	pageValidation
	pageCostAnalytics
	pageCount
)

// pageInfo is the static description of a page.
type pageInfo struct {
	Key     string
	Label   string
	Title   string
	Summary string
	Bullets []string
}

var pages = [pageCount]pageInfo{
	pageDashboard: {
		Key:   "1",
		Label: "Dashboard",
		Title: "Dashboard Overview",
	},
	pageBackupJobs: {
		Key:     "2",
		Label:   "Backup Jobs",
		Title:   "Backup Jobs",
		Summary: "Backup jobs list and management interface will be displayed here.",
		Bullets: []string{
			"Active and completed backup jobs",
			"Job progress and status",
			"Job history and logs",
			"Start new backup operations",
		},
	},
	pagePolicies: {
		Key:     "3",
		Label:   "Policies",
		Title:   "Backup Policies",
		Summary: "Policy management interface will be displayed here.",
		Bullets: []string{
			"List of all backup policies",
			"Create and edit policies",
			"Schedule and retention settings",
			"Policy enforcement status",
		},
	},
	pageValidation: {
		Key:     "4",
		Label:   "Validation",
		Title:   "Backup Validation",
		Summary: "Validation reports and compliance dashboard will be displayed here.",
		Bullets: []string{
			"Backup integrity checks",
			"Compliance reports (SOC 2, HIPAA)",
			"Validation success rates",
			"Failed validations and recommendations",
		},
	},
	pageCostAnalytics: {
		Key:     "5",
		Label:   "Cost Analytics",
		Title:   "Cost Analytics",
		Summary: "Cost analysis and savings comparison dashboard will be displayed here.",
		Bullets: []string{
			"Monthly and annual cost breakdown",
			"Cost savings vs traditional solutions",
			"Storage lifecycle cost optimization",
			"Cost trends and projections",
		},
	},
}

// next returns the page after p, wrapping around.
func (p page) next() page { return (p + 1) % pageCount }

// prev returns the page before p, wrapping around.
func (p page) prev() page { return (p + pageCount - 1) % pageCount }

// renderNav renders the page tabs. The active page is shown inverted;
// inactive pages show their number key.
func renderNav(active page) string {
	items := make([]string, 0, pageCount)
	for i, info := range pages {
		if page(i) == active {
			items = append(items, StyleNavActive.Render(info.Label))
			continue
		}
		items = append(items, StyleNavKey.Render("["+info.Key+"]")+" "+StyleNavInactive.Render(info.Label))
	}
	return strings.Join(items, StyleNavKey.Render("  /  "))
}

// renderPlaceholder renders the static body of a page that has no live data yet.
func renderPlaceholder(p page, width int) string {
	info := pages[p]
	lines := []string{StyleDim.Render(info.Summary), "", "This page will show:"}
	for _, b := range info.Bullets {
		lines = append(lines, "  • "+b)
	}
	body := StylePanel.Width(max(width-2, 20)).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, StylePageTitle.Render(info.Title), body)
}
