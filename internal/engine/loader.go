package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

const (
	DefaultJobLimit  = 5
	DefaultTrendDays = 7
)

// Request parameterises one dashboard load.
type Request struct {
	CompartmentID string
	JobLimit      int
	TrendDays     int
}

func (r Request) withDefaults() Request {
	if r.JobLimit <= 0 {
		r.JobLimit = DefaultJobLimit
	}
	if r.TrendDays <= 0 {
		r.TrendDays = DefaultTrendDays
	}
	return r
}

// LoadError reports a load cycle that was abandoned because at least one of
// its requests failed. Causes keeps endpoint order.
type LoadError struct {
	CompartmentID string
	Causes        []error
}

func (e *LoadError) Error() string {
	msgs := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		msgs[i] = c.Error()
	}
	return fmt.Sprintf("load dashboard %q: %s", e.CompartmentID, strings.Join(msgs, "; "))
}

// Unwrap exposes every cause to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error { return e.Causes }

// LoadDashboard calls the three dashboard endpoints concurrently and waits for
// all of them. If any call fails the whole load fails with *LoadError and no
// view is returned; the caller keeps whatever it showed before.
func LoadDashboard(ctx context.Context, api client.DashboardAPI, req Request) (*model.DashboardView, error) {
	req = req.withDefaults()

	var (
		metrics *client.MetricsResponse
		jobs    *client.RecentJobsResponse
		trends  *client.StorageTrendsResponse
		errs    [3]error
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics, errs[0] = api.GetDashboardMetrics(gctx, req.CompartmentID)
		return errs[0]
	})

	g.Go(func() error {
		jobs, errs[1] = api.GetRecentJobs(gctx, req.CompartmentID, req.JobLimit)
		return errs[1]
	})

	g.Go(func() error {
		trends, errs[2] = api.GetStorageTrends(gctx, req.CompartmentID, req.TrendDays)
		return errs[2]
	})

	if first := g.Wait(); first != nil {
		return nil, &LoadError{
			CompartmentID: req.CompartmentID,
			Causes:        loadCauses(ctx, first, errs[:]),
		}
	}

	if metrics == nil || jobs == nil || trends == nil {
		return nil, &LoadError{
			CompartmentID: req.CompartmentID,
			Causes:        []error{errors.New("incomplete response (unexpected nil)")},
		}
	}

	return &model.DashboardView{
		Metrics:   NormalizeMetrics(metrics),
		Jobs:      NormalizeJobs(jobs.Jobs, req.JobLimit),
		Trends:    NormalizeTrends(trends.Trends),
		FetchedAt: time.Now(),
	}, nil
}

// loadCauses keeps the errors that explain the failure. Cancellations the
// group itself caused after the first failure are noise and are dropped.
func loadCauses(parent context.Context, first error, errs []error) []error {
	var causes []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if err != first && parent.Err() == nil && errors.Is(err, context.Canceled) {
			continue
		}
		causes = append(causes, err)
	}
	if len(causes) == 0 {
		causes = []error{first}
	}
	return causes
}
