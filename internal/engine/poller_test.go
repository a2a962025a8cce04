package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

// manualTicker hands the poller a channel the test drives by hand.
type manualTicker struct {
	ch      chan time.Time
	period  time.Duration
	stopped atomic.Bool
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time)}
}

func (m *manualTicker) fn(d time.Duration) (<-chan time.Time, func()) {
	m.period = d
	return m.ch, func() { m.stopped.Store(true) }
}

// recorder collects sink calls.
type recorder struct {
	mu     sync.Mutex
	views  []*model.DashboardView
	errs   []error
	events chan struct{}
}

func newRecorder() *recorder {
	return &recorder{events: make(chan struct{}, 64)}
}

func (r *recorder) sink() Sink {
	return Sink{
		OnView: func(v *model.DashboardView) {
			r.mu.Lock()
			r.views = append(r.views, v)
			r.mu.Unlock()
			r.events <- struct{}{}
		},
		OnError: func(err error) {
			r.mu.Lock()
			r.errs = append(r.errs, err)
			r.mu.Unlock()
			r.events <- struct{}{}
		},
	}
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for sink call")
	}
}

func (r *recorder) counts() (views, errs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views), len(r.errs)
}

func newTestPoller(api client.DashboardAPI, sink Sink, tk *manualTicker) *Poller {
	p := NewPoller(api, Request{CompartmentID: "c1"}, 0, sink, nil)
	p.ticker = tk.fn
	return p
}

func TestPoller_DefaultInterval(t *testing.T) {
	tk := newManualTicker()
	p := newTestPoller(&MockAPI{}, Sink{}, tk)
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	assert.Equal(t, 30*time.Second, tk.period)
}

func TestPoller_LoadsImmediatelyOnStart(t *testing.T) {
	tk := newManualTicker()
	rec := newRecorder()
	p := newTestPoller(&MockAPI{}, rec.sink(), tk)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	rec.wait(t)
	views, errs := rec.counts()
	assert.Equal(t, 1, views)
	assert.Equal(t, 0, errs)
	assert.Equal(t, uint64(1), rec.views[0].Cycle)
}

func TestPoller_OneLoadPerTick(t *testing.T) {
	var calls atomic.Int32
	api := &MockAPI{
		MetricsFn: func(_ context.Context, _ string) (*client.MetricsResponse, error) {
			calls.Add(1)
			return &client.MetricsResponse{}, nil
		},
	}
	tk := newManualTicker()
	rec := newRecorder()
	p := newTestPoller(api, rec.sink(), tk)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()
	rec.wait(t)

	tk.ch <- time.Now()
	rec.wait(t)
	tk.ch <- time.Now()
	rec.wait(t)

	assert.Equal(t, int32(3), calls.Load())
	views, _ := rec.counts()
	assert.Equal(t, 3, views)
}

func TestPoller_FailureDoesNotStopTimer(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	api := &MockAPI{
		MetricsFn: func(_ context.Context, _ string) (*client.MetricsResponse, error) {
			if fail.Load() {
				return nil, errMockFailure
			}
			return &client.MetricsResponse{}, nil
		},
	}
	tk := newManualTicker()
	rec := newRecorder()
	p := newTestPoller(api, rec.sink(), tk)

	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()
	rec.wait(t)

	fail.Store(false)
	tk.ch <- time.Now()
	rec.wait(t)

	views, errs := rec.counts()
	assert.Equal(t, 1, views)
	assert.Equal(t, 1, errs)
	assert.ErrorIs(t, rec.errs[0], errMockFailure)
}

func TestPoller_NoSinkCallAfterStop(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &MockAPI{
		MetricsFn: func(_ context.Context, _ string) (*client.MetricsResponse, error) {
			close(entered)
			// Ignores cancellation to model a request that resolves after teardown.
			<-release
			return &client.MetricsResponse{}, nil
		},
	}
	tk := newManualTicker()
	rec := newRecorder()
	p := newTestPoller(api, rec.sink(), tk)

	require.NoError(t, p.Start(context.Background()))
	<-entered

	stopped := make(chan struct{})
	go func() {
		p.Stop()
		close(stopped)
	}()
	// Give Stop time to close the session before the request resolves.
	require.Eventually(t, func() bool { return !p.session.Alive() }, time.Second, time.Millisecond)
	close(release)
	<-stopped

	views, errs := rec.counts()
	assert.Equal(t, 0, views)
	assert.Equal(t, 0, errs)
	assert.True(t, tk.stopped.Load(), "ticker must be stopped")
}

func TestPoller_StopIsIdempotent(t *testing.T) {
	tk := newManualTicker()
	p := newTestPoller(&MockAPI{}, Sink{}, tk)

	p.Stop() // never started
	require.NoError(t, p.Start(context.Background()))
	p.Stop()
	p.Stop()
	assert.Error(t, p.Start(context.Background()), "a stopped poller cannot be restarted")
}

func TestPoller_ParentContextCancelStopsTimer(t *testing.T) {
	tk := newManualTicker()
	p := newTestPoller(&MockAPI{}, Sink{}, tk)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx))
	cancel()

	require.Eventually(t, tk.stopped.Load, time.Second, time.Millisecond)
	p.Stop()
}
