package presenter

import (
	"testing"

	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/session"
	"github.com/soocke/colo-bot-go/ui/model"
)

type mockScreenView struct {
	labels  []string
	details []string
	clicks  [2]uint64
}

func (v *mockScreenView) SetStateLabel(s string) { v.labels = append(v.labels, s) }
func (v *mockScreenView) SetDetails(d []string)  { v.details = d }
func (v *mockScreenView) SetClicks(a, b uint64)  { v.clicks = [2]uint64{a, b} }

func TestScreenPresenter_LabelsOnChangeOnly(t *testing.T) {
	m := model.NewStatusModel()
	v := &mockScreenView{}
	p := NewScreenPresenter(m, v)

	if _, ok := p.Tick(); ok {
		t.Fatalf("no status pushed yet")
	}
	m.Push(session.Status{Screen: detect.ScreenUnknown, CaptureErr: "capture: game window not found"})
	p.Tick()
	m.Push(session.Status{Screen: detect.ScreenTitle, Details: []string{"Logic:TitleScreen"}, Decided: 3, Delivered: 2})
	p.Tick()
	m.Push(session.Status{Screen: detect.ScreenTitle, Decided: 4, Delivered: 3})
	st, ok := p.Tick()
	if !ok || st.Decided != 4 {
		t.Fatalf("expected fresh status")
	}
	want := []string{"Screen: <no capture>", "Screen: TitleScreen"}
	if len(v.labels) != 2 || v.labels[0] != want[0] || v.labels[1] != want[1] {
		t.Fatalf("unexpected labels %v", v.labels)
	}
	if v.clicks != [2]uint64{4, 3} {
		t.Fatalf("unexpected clicks %v", v.clicks)
	}
}
