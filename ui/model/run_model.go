package model

import "sync/atomic"

// RunModel tracks whether the bot loop should be running. The zero value is
// stopped and usable. Button callbacks and presenter ticks may race, hence
// the atomic.
type RunModel struct{ enabled atomic.Bool }

func (m *RunModel) Enabled() bool {
	if m == nil {
		return false
	}
	return m.enabled.Load()
}

func (m *RunModel) SetEnabled(b bool) {
	if m == nil {
		return
	}
	m.enabled.Store(b)
}
