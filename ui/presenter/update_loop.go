package presenter

import "time"

// Loop drives the presenters from the Tk event loop. The zero value is
// usable; nil presenters are skipped.
type Loop struct {
	Run       *RunPresenter
	Screen    *ScreenPresenter
	Session   *SessionPresenter
	Preview   *PreviewPresenter
	Focus     *FocusWatcher
	FocusView FocusView
	Schedule  func()
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	l.Run.Sync()
	if st, ok := l.Screen.Tick(); ok {
		l.Preview.Process(st)
	}
	l.Session.Tick(now)
	l.Focus.Flush(l.FocusView)
	if l.Schedule != nil {
		l.Schedule()
	}
}
