package engine

import "github.com/dataprotect/dpdash/internal/model"

// gbPerTB matches the backend's decimal storage units.
const gbPerTB = 1000.0

// Stats holds display-ready values derived from a MetricsSnapshot.
type Stats struct {
	ActiveJobs     int
	SuccessRate    float64
	StorageUsedTB  float64
	StoragePercent float64
	CostSavings    float64

	RTO          Objective
	RPO          Objective
	Availability float64
}

// Objective is one actual-vs-target SLA line.
type Objective struct {
	Actual   float64
	Target   float64
	Met      bool
	Headroom float64 // percent of the target still unused, 0..100
}

// safeDivide returns a/b, or 0 when b is zero.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// clampPercent limits p to [0, 100].
func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// StoragePercent returns used/capacity*100 (0 when capacity is zero).
func StoragePercent(usedGB, capacityGB float64) float64 {
	return safeDivide(usedGB, capacityGB) * 100
}

// CalcObjective compares an actual value against a lower-is-better target.
func CalcObjective(actual, target float64) Objective {
	o := Objective{Actual: actual, Target: target, Met: actual <= target}
	if target > 0 {
		o.Headroom = clampPercent((1 - actual/target) * 100)
	}
	return o
}

// Derive computes Stats from a snapshot. It is a pure function of m.
func Derive(m model.MetricsSnapshot) Stats {
	return Stats{
		ActiveJobs:     m.ActiveJobs,
		SuccessRate:    m.SuccessRate,
		StorageUsedTB:  m.StorageUsedGB / gbPerTB,
		StoragePercent: StoragePercent(m.StorageUsedGB, m.StorageCapacityGB),
		CostSavings:    m.CostSavings,
		RTO:            CalcObjective(m.SLA.RTOHours, m.SLA.RTOTargetHours),
		RPO:            CalcObjective(m.SLA.RPOMinutes, m.SLA.RPOTargetMinutes),
		Availability:   m.SLA.AvailabilityPercent,
	}
}

// DeriveView is Derive over an optional view; nil yields the defaults.
func DeriveView(v *model.DashboardView) Stats {
	if v == nil {
		return Derive(model.DefaultMetrics())
	}
	return Derive(v.Metrics)
}
