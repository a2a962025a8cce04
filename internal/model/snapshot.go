package model

import "time"

// Documented fallbacks for fields the backend omits.
const (
	DefaultStorageCapacityGB   = 100000.0
	DefaultRTOHours            = 0.5
	DefaultRTOTargetHours      = 2.0
	DefaultRPOMinutes          = 15.0
	DefaultRPOTargetMinutes    = 60.0
	DefaultAvailabilityPercent = 99.99
)

// MetricsSnapshot holds aggregate counters for one point in time.
type MetricsSnapshot struct {
	ActiveJobs        int           `json:"active_jobs"`
	SuccessRate       float64       `json:"success_rate"` // percent, 30-day window
	StorageUsedGB     float64       `json:"storage_used_gb"`
	StorageCapacityGB float64       `json:"storage_capacity_gb"`
	CostSavings       float64       `json:"cost_savings"` // currency per month
	SLA               SLACompliance `json:"sla_compliance"`
}

// SLACompliance holds actual-vs-target recovery objectives.
type SLACompliance struct {
	RTOHours            float64 `json:"rto_hours"`
	RTOTargetHours      float64 `json:"rto_target"`
	RPOMinutes          float64 `json:"rpo_minutes"`
	RPOTargetMinutes    float64 `json:"rpo_target"`
	AvailabilityPercent float64 `json:"availability_percent"`
}

// DefaultSLA returns the SLA record shown when the backend sends none.
func DefaultSLA() SLACompliance {
	return SLACompliance{
		RTOHours:            DefaultRTOHours,
		RTOTargetHours:      DefaultRTOTargetHours,
		RPOMinutes:          DefaultRPOMinutes,
		RPOTargetMinutes:    DefaultRPOTargetMinutes,
		AvailabilityPercent: DefaultAvailabilityPercent,
	}
}

// DefaultMetrics returns the snapshot rendered before any data is available.
func DefaultMetrics() MetricsSnapshot {
	return MetricsSnapshot{
		StorageCapacityGB: DefaultStorageCapacityGB,
		SLA:               DefaultSLA(),
	}
}

// DashboardView is the result of one load cycle. The three collections are
// always fetched together and replaced wholesale.
type DashboardView struct {
	Metrics   MetricsSnapshot `json:"metrics"`
	Jobs      []JobSummary    `json:"jobs"`
	Trends    []TrendPoint    `json:"trends"`
	Cycle     uint64          `json:"cycle"`
	FetchedAt time.Time       `json:"fetched_at"`
}
