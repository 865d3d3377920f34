// SPDX-License-Identifier: MIT
package navigate

import (
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/route"
)

// Session walks through the steps of one route, one at a time.
// A Session is not safe for concurrent use.
type Session struct {
	steps      []Step
	cursor     int // index of the current step; -1 before the first Next
	startFloor int
}

// NewSession prepares directions for p over m. The session starts before
// the first step.
func NewSession(m *core.BuildingMap, p route.Path) *Session {
	s := &Session{steps: Steps(m, p), cursor: -1}
	if m != nil {
		if n, ok := m.Node(p.Start()); ok {
			s.startFloor = n.Floor
		}
	}

	return s
}

// Len returns the total number of steps, Arrive included.
func (s *Session) Len() int { return len(s.steps) }

// Steps returns a copy of all steps.
func (s *Session) Steps() []Step {
	out := make([]Step, len(s.steps))
	copy(out, s.steps)

	return out
}

// Next advances to the following step and returns it.
// It returns false once the Arrive step has been delivered.
func (s *Session) Next() (Step, bool) {
	if s.cursor+1 >= len(s.steps) {
		return Step{}, false
	}
	s.cursor++

	return s.steps[s.cursor], true
}

// Current returns the step last returned by Next.
func (s *Session) Current() (Step, bool) {
	if s.cursor < 0 || s.cursor >= len(s.steps) {
		return Step{}, false
	}

	return s.steps[s.cursor], true
}

// Done reports whether every step has been delivered.
func (s *Session) Done() bool { return s.cursor+1 >= len(s.steps) }

// Reset rewinds the session to before the first step.
func (s *Session) Reset() { s.cursor = -1 }

// Floor returns the floor a map view should display: the start floor before
// the first step, then the floor reached by the current step.
func (s *Session) Floor() int {
	if st, ok := s.Current(); ok {
		return st.Floor
	}

	return s.startFloor
}
