package tui

import (
	"testing"

	"github.com/dataprotect/dpdash/internal/engine"
)

func TestThreshold_Storage(t *testing.T) {
	cases := []struct {
		pct  float64
		want severity
	}{
		{0, severityNormal},
		{45, severityNormal},
		{80, severityNormal}, // boundary: >80 triggers warning
		{80.1, severityWarning},
		{90, severityWarning}, // boundary: >90 triggers critical
		{90.1, severityCritical},
		{100, severityCritical},
	}
	for _, tc := range cases {
		got := storageSeverity(tc.pct)
		if got != tc.want {
			t.Errorf("storageSeverity(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestThreshold_SuccessRate(t *testing.T) {
	cases := []struct {
		pct  float64
		want severity
	}{
		{100, severityNormal},
		{97.3, severityNormal},
		{95, severityNormal}, // boundary: <95 triggers warning
		{94.9, severityWarning},
		{90, severityWarning}, // boundary: <90 triggers critical
		{89.9, severityCritical},
		{0, severityCritical},
	}
	for _, tc := range cases {
		got := successSeverity(tc.pct)
		if got != tc.want {
			t.Errorf("successSeverity(%v) = %v, want %v", tc.pct, got, tc.want)
		}
	}
}

func TestThreshold_Objective(t *testing.T) {
	cases := []struct {
		name string
		obj  engine.Objective
		want severity
	}{
		{"default rto", engine.CalcObjective(0.5, 2), severityNormal},
		{"close to target", engine.CalcObjective(1.9, 2), severityWarning},
		{"exactly at target", engine.CalcObjective(2, 2), severityWarning},
		{"missed", engine.CalcObjective(3, 2), severityCritical},
	}
	for _, tc := range cases {
		if got := objectiveSeverity(tc.obj); got != tc.want {
			t.Errorf("%s: objectiveSeverity = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestThreshold_Availability(t *testing.T) {
	if got := availabilitySeverity(99.99); got != severityNormal {
		t.Errorf("availabilitySeverity(99.99) = %v, want normal", got)
	}
	if got := availabilitySeverity(99.9); got != severityNormal {
		t.Errorf("availabilitySeverity(99.9) = %v, want normal", got)
	}
	if got := availabilitySeverity(98.5); got != severityCritical {
		t.Errorf("availabilitySeverity(98.5) = %v, want critical", got)
	}
}
