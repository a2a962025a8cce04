package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dataprotect/dpdash/internal/client"
	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/model"
)

// App is the root Bubble Tea model for dpdash.
type App struct {
	api      client.DashboardAPI
	req      engine.Request
	interval time.Duration
	log      *zap.Logger

	page page

	// Dashboard attachment. session is nil while the dashboard page is not active.
	session *engine.Session
	ctx     context.Context
	cancel  context.CancelFunc

	// Dashboard state
	loading     bool // true until the first cycle settles
	view        *model.DashboardView
	lastError   error
	lastUpdated time.Time
	history     *model.RefreshHistory
	spinner     spinner.Model

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates an App that polls api for req every interval.
// A non-positive interval uses engine.DefaultInterval.
func NewApp(api client.DashboardAPI, req engine.Request, interval time.Duration, logger *zap.Logger) *App {
	if interval <= 0 {
		interval = engine.DefaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		api:      api,
		req:      req,
		interval: interval,
		log:      logger.Named("tui"),
		page:     pageDashboard,
		loading:  true,
		history:  model.NewRefreshHistory(0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(StyleSpinner)),
	}
}

// Init implements tea.Model. Attaches the dashboard, which loads immediately.
func (app *App) Init() tea.Cmd {
	return app.attach()
}

// Update implements tea.Model and is the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case spinner.TickMsg:
		if !app.loading {
			return app, nil
		}
		var cmd tea.Cmd
		app.spinner, cmd = app.spinner.Update(msg)
		return app, cmd

	case dashboardLoadedMsg:
		if msg.session != app.session {
			return app, nil
		}
		msg.session.Commit(msg.view.Cycle, func() {
			app.view = msg.view
			app.lastError = nil
			app.lastUpdated = msg.view.FetchedAt
			app.history.Push(model.PointFromView(msg.view))
		})
		app.loading = false

	case dashboardFailedMsg:
		if msg.session != app.session {
			return app, nil
		}
		msg.session.IfAlive(func() {
			// Stale data stays on screen; the failure is only logged.
			app.loading = false
			app.lastError = msg.err
			app.log.Warn("dashboard load failed",
				zap.Uint64("cycle", msg.cycle),
				zap.String("compartment", app.req.CompartmentID),
				zap.Error(msg.err),
			)
		})

	case dashboardTickMsg:
		if msg.session != app.session || !msg.session.Alive() {
			return app, nil
		}
		return app, tea.Batch(app.loadCmd(), tickCmd(app.interval, app.session))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			app.detach()
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.page != pageDashboard || app.session == nil {
				return app, nil
			}
			return app, app.loadCmd()
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		case key.Matches(msg, keys.NextPage):
			return app, app.switchPage(app.page.next())
		case key.Matches(msg, keys.PrevPage):
			return app, app.switchPage(app.page.prev())
		default:
			for i, b := range keys.Pages {
				if key.Matches(msg, b) {
					return app, app.switchPage(page(i))
				}
			}
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	var body string
	if app.page == pageDashboard {
		body = renderDashboard(app.view, app.loading, width, app.history, app.spinner.View())
	} else {
		body = renderPlaceholder(app.page, width)
	}

	return strings.Join([]string{
		renderHeader(app),
		renderNav(app.page),
		"",
		body,
		renderFooter(app),
	}, "\n")
}

// Close detaches the dashboard. Safe to call more than once.
func (app *App) Close() {
	app.detach()
}

// switchPage moves to p, detaching the dashboard when leaving it and
// attaching it when entering it.
func (app *App) switchPage(p page) tea.Cmd {
	if p == app.page {
		return nil
	}
	if app.page == pageDashboard {
		app.detach()
	}
	app.page = p
	if p == pageDashboard {
		return app.attach()
	}
	return nil
}

// attach opens a new session, loads immediately and arms the first tick.
func (app *App) attach() tea.Cmd {
	if app.session != nil {
		return nil
	}
	app.session = engine.NewSession()
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.log.Debug("dashboard attached", zap.Duration("interval", app.interval))

	cmds := []tea.Cmd{app.loadCmd(), tickCmd(app.interval, app.session)}
	if app.loading {
		cmds = append(cmds, app.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// detach closes the session and cancels in-flight requests. Results and
// ticks of the closed session are dropped when they arrive.
func (app *App) detach() {
	if app.session == nil {
		return
	}
	app.session.Close()
	app.cancel()
	app.session = nil
	app.ctx = nil
	app.cancel = nil
	app.log.Debug("dashboard detached")
}

// loadCmd issues a new cycle on the attached session. The cycle number is
// taken here, on the Update goroutine, so cycles are ordered by issue time.
func (app *App) loadCmd() tea.Cmd {
	s := app.session
	ctx := app.ctx
	api := app.api
	req := app.req
	cycle := s.Begin()
	return func() tea.Msg {
		view, err := engine.LoadDashboard(ctx, api, req)
		if err != nil {
			return dashboardFailedMsg{session: s, cycle: cycle, err: err}
		}
		view.Cycle = cycle
		return dashboardLoadedMsg{session: s, view: view}
	}
}

// tickCmd schedules the next load of session s after d.
func tickCmd(d time.Duration, s *engine.Session) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return dashboardTickMsg{session: s}
	})
}
