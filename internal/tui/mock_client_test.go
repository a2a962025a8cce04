package tui

import (
	"context"
	"errors"
	"time"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int         { return &v }

// MockAPI implements client.DashboardAPI for testing.
type MockAPI struct {
	MetricsFn func(ctx context.Context, compartmentID string) (*client.MetricsResponse, error)
}

func (m *MockAPI) GetDashboardMetrics(ctx context.Context, compartmentID string) (*client.MetricsResponse, error) {
	if m.MetricsFn != nil {
		return m.MetricsFn(ctx, compartmentID)
	}
	return &client.MetricsResponse{ActiveJobs: intp(3), SuccessRate: f64(99.9)}, nil
}

func (m *MockAPI) GetRecentJobs(_ context.Context, _ string, _ int) (*client.RecentJobsResponse, error) {
	return &client.RecentJobsResponse{Jobs: []client.JobEntry{{JobID: "backup-1", InstanceName: "prod-db-01", Status: "completed"}}}, nil
}

func (m *MockAPI) GetStorageTrends(_ context.Context, _ string, _ int) (*client.StorageTrendsResponse, error) {
	return &client.StorageTrendsResponse{Trends: []client.TrendEntry{{Date: "2025-01-01", StorageGB: f64(40000)}}}, nil
}

func (m *MockAPI) BaseURL() string {
	return "http://mock:8000/api/v1"
}

var errMockFailure = errors.New("mock failure")

// makeFixtureView returns a populated DashboardView for rendering tests.
func makeFixtureView() *model.DashboardView {
	start := time.Date(2025, 1, 6, 10, 0, 0, 0, time.UTC)
	return &model.DashboardView{
		Metrics: model.MetricsSnapshot{
			ActiveJobs:        3,
			SuccessRate:       97.345,
			StorageUsedGB:     45000,
			StorageCapacityGB: 100000,
			CostSavings:       5300,
			SLA:               model.DefaultSLA(),
		},
		Jobs: []model.JobSummary{
			{ID: "backup-abc123", InstanceName: "prod-db-01", StartTime: start, Status: model.JobCompleted, ProgressPercent: 100},
			{ID: "backup-def456", InstanceName: "prod-app-02", StartTime: start, Status: model.JobRunning, ProgressPercent: 42},
			{ID: "backup-ghi789", InstanceName: "staging-db", StartTime: start, Status: model.JobFailed},
		},
		Trends: []model.TrendPoint{
			{Date: "2025-01-05", StorageGB: 44000},
			{Date: "2025-01-06", StorageGB: 45000},
		},
		Cycle:     1,
		FetchedAt: time.Date(2025, 1, 6, 10, 5, 0, 0, time.Local),
	}
}
