package presenter

import (
	"time"

	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/session"
	"github.com/soocke/colo-bot-go/ui/model"
)

// SessionSource exposes the loop's latest snapshot.
type SessionSource interface {
	Status() session.Status
}

// RunInfo summarises the current run for the status bar.
type RunInfo struct {
	Runs    int
	Ticks   uint64 // ticks in the current run
	Dropped uint64 // overlapping ticks skipped since launch
	Screen  detect.ScreenKind
	// TickRate is ticks per second over the current run.
	TickRate float64
}

// SessionView displays run timers and loop health.
type SessionView interface {
	SetSession(session, total time.Duration)
	SetRunInfo(RunInfo)
}

// SessionPresenter feeds the timer model from the session's running flag
// and pushes timers plus run counters to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	source SessionSource
	view   SessionView

	shown  RunInfo
	primed bool
}

func NewSessionPresenter(sess *model.SessionModel, source SessionSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, source: source, view: view}
}

// Tick advances the session model and pushes values to the view. RunInfo
// is only pushed when it changes.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.source == nil || p.view == nil {
		return
	}
	st := p.source.Status()
	p.sess.OnTick(st.Running, now)
	s, t := p.sess.Values()
	p.view.SetSession(s, t)

	info := RunInfo{Runs: p.sess.Runs(), Dropped: st.Dropped, Screen: st.Screen}
	if st.Running {
		info.Ticks = st.RunTicks
	}
	if secs := s.Seconds(); secs >= 1 {
		info.TickRate = float64(info.Ticks) / secs
	}
	if p.primed && info == p.shown {
		return
	}
	p.primed = true
	p.shown = info
	p.view.SetRunInfo(info)
}
