package engine

import (
	"context"
	"errors"

	"github.com/dataprotect/dpdash/internal/client"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int         { return &v }

// MockAPI implements client.DashboardAPI for testing.
type MockAPI struct {
	MetricsFn func(ctx context.Context, compartmentID string) (*client.MetricsResponse, error)
	JobsFn    func(ctx context.Context, compartmentID string, limit int) (*client.RecentJobsResponse, error)
	TrendsFn  func(ctx context.Context, compartmentID string, days int) (*client.StorageTrendsResponse, error)
}

func (m *MockAPI) GetDashboardMetrics(ctx context.Context, compartmentID string) (*client.MetricsResponse, error) {
	if m.MetricsFn != nil {
		return m.MetricsFn(ctx, compartmentID)
	}
	return &client.MetricsResponse{ActiveJobs: intp(3), SuccessRate: f64(99.9)}, nil
}

func (m *MockAPI) GetRecentJobs(ctx context.Context, compartmentID string, limit int) (*client.RecentJobsResponse, error) {
	if m.JobsFn != nil {
		return m.JobsFn(ctx, compartmentID, limit)
	}
	return &client.RecentJobsResponse{Jobs: []client.JobEntry{{JobID: "backup-1", Status: "completed"}}}, nil
}

func (m *MockAPI) GetStorageTrends(ctx context.Context, compartmentID string, days int) (*client.StorageTrendsResponse, error) {
	if m.TrendsFn != nil {
		return m.TrendsFn(ctx, compartmentID, days)
	}
	return &client.StorageTrendsResponse{Trends: []client.TrendEntry{{Date: "2025-01-01", StorageGB: f64(40000)}}}, nil
}

func (m *MockAPI) BaseURL() string {
	return "http://mock:8000"
}

var errMockFailure = errors.New("mock failure")
