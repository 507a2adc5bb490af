package presenter

import (
	"fmt"

	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/session"
)

// StatusSource yields the latest tick snapshot, fresh once per arrival.
type StatusSource interface {
	Take() (session.Status, bool)
}

// ScreenView shows what the engine sees and does.
type ScreenView interface {
	SetStateLabel(string)
	SetDetails([]string)
	SetClicks(decided, delivered uint64)
}

// ScreenPresenter mirrors the recognised screen and engine details.
type ScreenPresenter struct {
	source StatusSource
	view   ScreenView
	shown  detect.ScreenKind
	primed bool
}

func NewScreenPresenter(source StatusSource, view ScreenView) *ScreenPresenter {
	return &ScreenPresenter{source: source, view: view}
}

// Tick pushes a fresh snapshot to the view and returns it.
func (p *ScreenPresenter) Tick() (session.Status, bool) {
	if p == nil || p.source == nil || p.view == nil {
		return session.Status{}, false
	}
	st, fresh := p.source.Take()
	if !fresh {
		return st, false
	}
	if !p.primed || st.Screen != p.shown {
		p.primed = true
		p.shown = st.Screen
		p.view.SetStateLabel(screenLabel(st))
	}
	p.view.SetDetails(st.Details)
	p.view.SetClicks(st.Decided, st.Delivered)
	return st, true
}

func screenLabel(st session.Status) string {
	if st.CaptureErr != "" && st.Screen == detect.ScreenUnknown {
		return "Screen: <no capture>"
	}
	return fmt.Sprintf("Screen: %s", st.Screen)
}
