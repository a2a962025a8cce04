package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dataprotect/dpdash/internal/engine"
)

// severity represents the alert level for a metric value.
type severity int

const (
	severityNormal   severity = iota
	severityWarning           // yellow
	severityCritical          // red
)

// availabilityTarget is the availability below which the SLA line is marked as missed.
const availabilityTarget = 99.9

// storageSeverity returns Warning when storage > 80%, Critical when > 90%.
func storageSeverity(pct float64) severity {
	switch {
	case pct > 90:
		return severityCritical
	case pct > 80:
		return severityWarning
	default:
		return severityNormal
	}
}

// successSeverity returns Warning when the success rate drops below 95%, Critical below 90%.
func successSeverity(pct float64) severity {
	switch {
	case pct < 90:
		return severityCritical
	case pct < 95:
		return severityWarning
	default:
		return severityNormal
	}
}

// objectiveSeverity is Critical for a missed objective and Warning when less
// than 10% of the target remains.
func objectiveSeverity(o engine.Objective) severity {
	switch {
	case !o.Met:
		return severityCritical
	case o.Headroom < 10:
		return severityWarning
	default:
		return severityNormal
	}
}

// availabilitySeverity returns Critical below availabilityTarget.
func availabilitySeverity(pct float64) severity {
	if pct < availabilityTarget {
		return severityCritical
	}
	return severityNormal
}

// severityToStyle maps a severity level to the appropriate lipgloss style.
func severityToStyle(s severity) lipgloss.Style {
	switch s {
	case severityWarning:
		return StyleYellow
	case severityCritical:
		return StyleRed
	default:
		return StyleGreen
	}
}

// severityColor returns the foreground color for a severity, falling back to base.
func severityColor(s severity, base lipgloss.Color) lipgloss.Color {
	switch s {
	case severityWarning:
		return colorYellow
	case severityCritical:
		return colorRed
	default:
		return base
	}
}
