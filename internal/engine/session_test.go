package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_CommitInOrder(t *testing.T) {
	s := NewSession()
	c1 := s.Begin()
	c2 := s.Begin()
	assert.Equal(t, uint64(1), c1)
	assert.Equal(t, uint64(2), c2)

	var applied []uint64
	assert.True(t, s.Commit(c1, func() { applied = append(applied, c1) }))
	assert.True(t, s.Commit(c2, func() { applied = append(applied, c2) }))
	assert.Equal(t, []uint64{1, 2}, applied)
}

func TestSession_StaleCycleDiscarded(t *testing.T) {
	s := NewSession()
	older := s.Begin()
	newer := s.Begin()

	var applied []uint64
	assert.True(t, s.Commit(newer, func() { applied = append(applied, newer) }))
	// The older cycle resolves late and must not overwrite newer data.
	assert.False(t, s.Commit(older, func() { applied = append(applied, older) }))
	assert.Equal(t, []uint64{2}, applied)
}

func TestSession_NothingAppliedAfterClose(t *testing.T) {
	s := NewSession()
	cycle := s.Begin()
	s.Close()
	s.Close() // idempotent

	ran := false
	assert.False(t, s.Commit(cycle, func() { ran = true }))
	assert.False(t, s.IfAlive(func() { ran = true }))
	assert.False(t, ran)
	assert.False(t, s.Alive())
}

func TestSession_IfAlive(t *testing.T) {
	s := NewSession()
	ran := false
	assert.True(t, s.IfAlive(func() { ran = true }))
	assert.True(t, ran)
	assert.True(t, s.Alive())
}

func TestSession_CommitNilApply(t *testing.T) {
	s := NewSession()
	assert.True(t, s.Commit(s.Begin(), nil))
}
