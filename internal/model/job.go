package model

import (
	"strings"
	"time"
)

// JobStatus is the lifecycle state of a backup job.
type JobStatus string

const (
	JobCompleted JobStatus = "completed"
	JobRunning   JobStatus = "running"
	JobFailed    JobStatus = "failed"
	JobUnknown   JobStatus = "unknown"
)

// ParseJobStatus maps a backend status string onto JobStatus.
// Anything outside completed/running/failed becomes JobUnknown.
func ParseJobStatus(s string) JobStatus {
	switch JobStatus(strings.ToLower(strings.TrimSpace(s))) {
	case JobCompleted:
		return JobCompleted
	case JobRunning:
		return JobRunning
	case JobFailed:
		return JobFailed
	default:
		return JobUnknown
	}
}

// JobSummary describes one recent backup operation.
type JobSummary struct {
	ID              string    `json:"job_id"`
	InstanceName    string    `json:"instance_name"`
	StartTime       time.Time `json:"start_time"`
	Status          JobStatus `json:"status"`
	ProgressPercent float64   `json:"progress_percent"` // meaningful only while running
}

// TrendPoint is a single (date, storage) sample of the storage trend series.
type TrendPoint struct {
	Date      string  `json:"date"`
	StorageGB float64 `json:"storage_gb"`
}
