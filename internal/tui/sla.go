package tui

import (
	"strings"

	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/format"
)

// slaLine is one row of the SLA panel.
type slaLine struct {
	label string
	value string
	bar   float64 // 0..100
	sev   severity
}

func slaLines(stats engine.Stats) []slaLine {
	return []slaLine{
		{
			label: "RTO (Recovery Time Objective)",
			value: format.FormatHours(stats.RTO.Actual) + " / " + format.FormatHours(stats.RTO.Target) + " target",
			bar:   stats.RTO.Headroom,
			sev:   objectiveSeverity(stats.RTO),
		},
		{
			label: "RPO (Recovery Point Objective)",
			value: format.FormatMinutes(stats.RPO.Actual) + " / " + format.FormatMinutes(stats.RPO.Target) + " target",
			bar:   stats.RPO.Headroom,
			sev:   objectiveSeverity(stats.RPO),
		},
		{
			label: "Availability",
			value: format.FormatAvailability(stats.Availability),
			bar:   stats.Availability,
			sev:   availabilitySeverity(stats.Availability),
		},
	}
}

// renderSLAPanel renders the "SLA Compliance" panel at the given outer width.
func renderSLAPanel(stats engine.Stats, width int) string {
	inner := max(width-4, 10)

	parts := []string{StylePanelTitle.Render("SLA Compliance"), ""}
	for i, l := range slaLines(stats) {
		if i > 0 {
			parts = append(parts, "")
		}
		mark := "✓ "
		if l.sev == severityCritical {
			mark = "✗ "
		}
		style := severityToStyle(l.sev)
		parts = append(parts,
			l.label,
			style.Bold(true).Render(mark+l.value),
			style.Render(renderMiniBar(l.bar, inner)),
		)
	}
	return StylePanel.Width(inner + 2).Render(strings.Join(parts, "\n"))
}

// renderMiniBar renders a progress bar using Unicode block characters.
// Fills proportionally using "█" for filled and "░" for empty cells.
func renderMiniBar(percent float64, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(percent, 100))
	filled := min(int(percent/100.0*float64(width)), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
