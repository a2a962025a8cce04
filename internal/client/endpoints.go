package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const (
	endpointMetrics       = "/dashboard/metrics"
	endpointRecentJobs    = "/dashboard/recent-jobs"
	endpointStorageTrends = "/dashboard/storage-trends"
)

// getJSON issues a GET and decodes the body into out.
// Decode failures are reported as *RequestFailed like transport failures.
func (c *DefaultClient) getJSON(ctx context.Context, op, path string, query url.Values, out any) error {
	body, err := c.doGet(ctx, op, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Warn("decode failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
		return &RequestFailed{Op: op, Path: path, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// GetDashboardMetrics fetches aggregate counters from /dashboard/metrics.
func (c *DefaultClient) GetDashboardMetrics(ctx context.Context, compartmentID string) (*MetricsResponse, error) {
	q := url.Values{"compartment_id": {compartmentID}}

	var result MetricsResponse
	if err := c.getJSON(ctx, "GetDashboardMetrics", endpointMetrics, q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRecentJobs fetches the most recent backup jobs from /dashboard/recent-jobs.
func (c *DefaultClient) GetRecentJobs(ctx context.Context, compartmentID string, limit int) (*RecentJobsResponse, error) {
	q := url.Values{
		"compartment_id": {compartmentID},
		"limit":          {strconv.Itoa(limit)},
	}

	var result RecentJobsResponse
	if err := c.getJSON(ctx, "GetRecentJobs", endpointRecentJobs, q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStorageTrends fetches the daily storage series from /dashboard/storage-trends.
func (c *DefaultClient) GetStorageTrends(ctx context.Context, compartmentID string, days int) (*StorageTrendsResponse, error) {
	q := url.Values{
		"compartment_id": {compartmentID},
		"days":           {strconv.Itoa(days)},
	}

	var result StorageTrendsResponse
	if err := c.getJSON(ctx, "GetStorageTrends", endpointStorageTrends, q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
