package client

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Defaults applied by NewDefaultClient.
const (
	DefaultAPIPrefix      = "/api/v1"
	DefaultRequestTimeout = 30 * time.Second
)

// DashboardAPI defines the backend calls the dashboard depends on.
type DashboardAPI interface {
	GetDashboardMetrics(ctx context.Context, compartmentID string) (*MetricsResponse, error)
	GetRecentJobs(ctx context.Context, compartmentID string, limit int) (*RecentJobsResponse, error)
	GetStorageTrends(ctx context.Context, compartmentID string, days int) (*StorageTrendsResponse, error)
	BaseURL() string
}

// ClientConfig holds configuration for DefaultClient.
type ClientConfig struct {
	BaseURL            string
	APIPrefix          string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
}

// DefaultClient implements DashboardAPI using the standard net/http package.
type DefaultClient struct {
	http   *http.Client
	config ClientConfig
	log    *zap.Logger
}

// NewDefaultClient constructs a DefaultClient from the given config.
// An empty APIPrefix becomes /api/v1 and a non-positive timeout becomes 30s.
// A nil logger disables failure logging.
func NewDefaultClient(cfg ClientConfig, logger *zap.Logger) (*DefaultClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = DefaultAPIPrefix
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec
	}

	return &DefaultClient{
		http: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: transport,
		},
		config: cfg,
		log:    logger.Named("client"),
	}, nil
}

// BaseURL returns the configured base URL of the backend.
func (c *DefaultClient) BaseURL() string {
	return c.config.BaseURL
}

// endpointURL joins base URL, API prefix, path and the encoded query.
func (c *DefaultClient) endpointURL(path string, query url.Values) string {
	prefix := "/" + strings.Trim(c.config.APIPrefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	u := strings.TrimRight(c.config.BaseURL, "/") + prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doGet performs a GET request to path under the API prefix.
// Every failure comes back as *RequestFailed and is logged before returning.
func (c *DefaultClient) doGet(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	body, status, err := c.get(ctx, path, query)
	if err != nil {
		rf := &RequestFailed{Op: op, Path: path, StatusCode: status, Err: err}
		c.log.Warn("request failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Error(err),
		)
		return nil, rf
	}
	return body, nil
}

func (c *DefaultClient) get(ctx context.Context, path string, query url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL(path, query), nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	const maxResponseBytes = 32 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxResponseBytes {
		return nil, resp.StatusCode, fmt.Errorf("response body exceeds %d MB limit", maxResponseBytes/(1024*1024))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	return body, resp.StatusCode, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
