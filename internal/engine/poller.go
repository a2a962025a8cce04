package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/model"
)

// DefaultInterval is the fixed refresh period of the dashboard.
const DefaultInterval = 30 * time.Second

// Sink receives the outcome of each load cycle. Calls are serialised and
// never happen after Poller.Stop has returned.
type Sink struct {
	OnView  func(*model.DashboardView)
	OnError func(error)
}

// tickerFunc returns a tick channel and a function that stops it.
type tickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Poller loads the dashboard once on Start and then on every tick of a
// fixed-period timer until Stop. A failed cycle does not pause the timer.
type Poller struct {
	api      client.DashboardAPI
	req      Request
	interval time.Duration
	sink     Sink
	log      *zap.Logger
	ticker   tickerFunc

	mu      sync.Mutex
	session *Session
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewPoller builds a Poller. A non-positive interval becomes DefaultInterval.
func NewPoller(api client.DashboardAPI, req Request, interval time.Duration, sink Sink, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		api:      api,
		req:      req.withDefaults(),
		interval: interval,
		sink:     sink,
		log:      logger.Named("poller"),
		ticker:   realTicker,
	}
}

// Start runs the first load immediately and arms the timer.
// A Poller can be started once.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.session != nil {
		return errors.New("poller already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	p.session = NewSession()
	p.cancel = cancel

	ticks, stop := p.ticker(p.interval)
	p.wg.Add(1)
	go p.run(ctx, p.session, ticks, stop)

	p.log.Info("polling started",
		zap.String("compartment_id", p.req.CompartmentID),
		zap.Duration("interval", p.interval),
	)
	return nil
}

// Stop cancels the timer and any in-flight loads and waits for them to
// finish. Results that arrive after Stop begins are discarded. Stop is
// idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	s, cancel := p.session, p.cancel
	p.mu.Unlock()
	if s == nil {
		return
	}

	s.Close()
	cancel()
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context, s *Session, ticks <-chan time.Time, stop func()) {
	defer p.wg.Done()
	defer stop()

	p.launch(ctx, s)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			p.launch(ctx, s)
		}
	}
}

// launch starts one load cycle. Cycles may overlap when a load outlives the
// interval; the session discards any result older than the one on screen.
func (p *Poller) launch(ctx context.Context, s *Session) {
	cycle := s.Begin()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		view, err := LoadDashboard(ctx, p.api, p.req)
		if err != nil {
			s.IfAlive(func() {
				p.log.Warn("dashboard load failed", zap.Uint64("cycle", cycle), zap.Error(err))
				if p.sink.OnError != nil {
					p.sink.OnError(err)
				}
			})
			return
		}

		view.Cycle = cycle
		applied := s.Commit(cycle, func() {
			if p.sink.OnView != nil {
				p.sink.OnView(view)
			}
		})
		if applied {
			p.log.Debug("dashboard refreshed", zap.Uint64("cycle", cycle), zap.Int("jobs", len(view.Jobs)))
		}
	}()
}
