package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   product name and tagline
//	center: compartment being watched
//	right:  "Last: HH:MM:SS  Poll: Ns", or "Connecting to <URL>..." before the first success
//
// Failed cycles never change the header; it keeps showing the last successful refresh.
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := StyleTitle.Render("DataProtect") + StyleDim.Render("  Enterprise Backup Management")
	center := StyleDim.Render("Compartment: " + app.req.CompartmentID)

	var right string
	if app.lastUpdated.IsZero() {
		baseURL := ""
		if app.api != nil {
			baseURL = app.api.BaseURL()
		}
		right = StyleDim.Render("Connecting to " + baseURL + "...")
	} else {
		right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s",
			app.lastUpdated.Format("15:04:05"), formatDuration(app.interval)))
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	spacing := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right), 0)
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).Render(row)
}

// formatDuration formats a poll interval as a compact string, e.g. "30s" or "2m".
func formatDuration(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
