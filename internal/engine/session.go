package engine

import "sync"

// Session guards the single view slot of an attached dashboard.
//
// Each load cycle takes a number from Begin. Commit applies a cycle's result
// only while the session is open and only if no newer cycle has already been
// applied, so a slow cycle can never overwrite fresher data and nothing is
// applied after Close.
type Session struct {
	mu      sync.Mutex
	closed  bool
	issued  uint64
	applied uint64
}

// NewSession returns an open session.
func NewSession() *Session {
	return &Session{}
}

// Begin issues the number of a new load cycle.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Commit runs apply if the session is still open and cycle is newer than the
// last committed cycle. It reports whether apply ran.
func (s *Session) Commit(cycle uint64, apply func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || cycle <= s.applied {
		return false
	}
	s.applied = cycle
	if apply != nil {
		apply()
	}
	return true
}

// IfAlive runs fn while holding the session open. It reports whether fn ran.
func (s *Session) IfAlive(fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	fn()
	return true
}

// Alive reports whether the session is still open.
func (s *Session) Alive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
