package model

import (
	"time"
)

// SessionModel tracks how long the bot has been running in the current run
// and in total since launch. Presenters poll Values; the zero value is
// ready to use.
type SessionModel struct {
	active      bool
	runStart    time.Time
	lastRun     time.Duration
	accumulated time.Duration
	runs        int
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model with the current running flag.
func (m *SessionModel) OnTick(running bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case running && !m.active:
		m.active = true
		m.runStart = now
		m.lastRun = 0
		m.runs++
	case running:
		m.lastRun = now.Sub(m.runStart)
	case m.active:
		m.lastRun = now.Sub(m.runStart)
		m.accumulated += m.lastRun
		m.active = false
	}
}

// Runs counts how many times the bot was started.
func (m *SessionModel) Runs() int {
	if m == nil {
		return 0
	}
	return m.runs
}

// Values returns the current run and the total, which includes the
// ongoing run.
func (m *SessionModel) Values() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastRun
	total = m.accumulated
	if m.active {
		total += session
	}
	return
}
