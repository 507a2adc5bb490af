package model

import (
	"sync"

	"github.com/soocke/colo-bot-go/domain/session"
)

// StatusModel hands the latest tick snapshot from the loop goroutine to the
// Tk thread. Intermediate snapshots are dropped; transitions seen between
// two UI ticks are kept so none is missed on the label.
type StatusModel struct {
	mu          sync.Mutex
	latest      session.Status
	fresh       bool
	transitions int
}

func NewStatusModel() *StatusModel { return &StatusModel{} }

// Push stores st. Safe to call from any goroutine.
func (m *StatusModel) Push(st session.Status) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st.Screen != m.latest.Screen {
		m.transitions++
	}
	m.latest = st
	m.fresh = true
}

// Take returns the latest snapshot and whether it arrived since the last
// call.
func (m *StatusModel) Take() (session.Status, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fresh := m.fresh
	m.fresh = false
	return m.latest, fresh
}

// Transitions counts screen changes observed so far.
func (m *StatusModel) Transitions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitions
}
