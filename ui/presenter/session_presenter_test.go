package presenter

import (
	"testing"
	"time"

	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/session"
	"github.com/soocke/colo-bot-go/ui/model"
)

type fakeSessionSource struct{ st session.Status }

func (f *fakeSessionSource) Status() session.Status { return f.st }

type mockSessionView struct {
	session, total time.Duration
	infos          []RunInfo
}

func (v *mockSessionView) SetSession(s, t time.Duration) { v.session, v.total = s, t }
func (v *mockSessionView) SetRunInfo(i RunInfo)          { v.infos = append(v.infos, i) }

func TestSessionPresenter_RunInfoFollowsStatus(t *testing.T) {
	src := &fakeSessionSource{}
	v := &mockSessionView{}
	p := NewSessionPresenter(model.NewSessionModel(), src, v)
	t0 := time.Unix(1000, 0)

	p.Tick(t0)
	if len(v.infos) != 1 || v.infos[0] != (RunInfo{}) {
		t.Fatalf("expected one idle info, got %+v", v.infos)
	}
	p.Tick(t0.Add(time.Second))
	if len(v.infos) != 1 {
		t.Fatalf("unchanged info should not be pushed again, got %d", len(v.infos))
	}

	src.st = session.Status{Running: true}
	p.Tick(t0.Add(2 * time.Second))
	src.st = session.Status{Running: true, Tick: 45, RunTicks: 20, Dropped: 3, Screen: detect.ScreenColoCombat}
	p.Tick(t0.Add(4 * time.Second))
	got := v.infos[len(v.infos)-1]
	want := RunInfo{Runs: 1, Ticks: 20, Dropped: 3, Screen: detect.ScreenColoCombat, TickRate: 10}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if v.session != 2*time.Second || v.total != 2*time.Second {
		t.Fatalf("timers %v/%v", v.session, v.total)
	}

	src.st.Running = false
	p.Tick(t0.Add(5 * time.Second))
	got = v.infos[len(v.infos)-1]
	if got.Ticks != 0 || got.Runs != 1 || got.Dropped != 3 || got.TickRate != 0 {
		t.Fatalf("stopped run should report no live ticks, got %+v", got)
	}
}

func TestSessionPresenter_NilSafe(t *testing.T) {
	var p *SessionPresenter
	p.Tick(time.Now())
	NewSessionPresenter(nil, nil, nil).Tick(time.Now())
}
