package tui

import (
	"github.com/dataprotect/dpdash/internal/engine"
	"github.com/dataprotect/dpdash/internal/model"
)

// All dashboard messages carry the session that issued them; the App drops
// any message whose session is no longer the attached one.

// dashboardLoadedMsg delivers a successful load cycle.
type dashboardLoadedMsg struct {
	session *engine.Session
	view    *model.DashboardView
}

// dashboardFailedMsg signals a failed load cycle.
type dashboardFailedMsg struct {
	session *engine.Session
	cycle   uint64
	err     error
}

// dashboardTickMsg triggers the next scheduled load.
type dashboardTickMsg struct {
	session *engine.Session
}
