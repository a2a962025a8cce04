package client

// MetricsResponse represents the response from /dashboard/metrics.
// Scalars are pointers so a missing field can be told apart from zero.
type MetricsResponse struct {
	ActiveJobs        *int           `json:"active_jobs"`
	SuccessRate       *float64       `json:"success_rate"`
	StorageUsedGB     *float64       `json:"storage_used_gb"`
	StorageCapacityGB *float64       `json:"storage_capacity_gb"`
	CostSavings       *float64       `json:"cost_savings"`
	SLACompliance     *SLACompliance `json:"sla_compliance,omitempty"`
}

// SLACompliance is the nested SLA record of MetricsResponse.
type SLACompliance struct {
	RTOHours            *float64 `json:"rto_hours"`
	RTOTarget           *float64 `json:"rto_target"`
	RPOMinutes          *float64 `json:"rpo_minutes"`
	RPOTarget           *float64 `json:"rpo_target"`
	AvailabilityPercent *float64 `json:"availability_percent"`
}

// RecentJobsResponse represents the response from /dashboard/recent-jobs.
type RecentJobsResponse struct {
	Jobs []JobEntry `json:"jobs"`
}

// JobEntry is a single job in RecentJobsResponse.
type JobEntry struct {
	JobID           string   `json:"job_id"`
	InstanceName    string   `json:"instance_name"`
	StartTime       NullTime `json:"start_time"`
	Status          string   `json:"status"`
	ProgressPercent *float64 `json:"progress_percent"`
}

// StorageTrendsResponse represents the response from /dashboard/storage-trends.
type StorageTrendsResponse struct {
	Trends []TrendEntry `json:"trends"`
}

// TrendEntry is a single (date, storage) pair.
type TrendEntry struct {
	Date      string   `json:"date"`
	StorageGB *float64 `json:"storage_gb"`
}
