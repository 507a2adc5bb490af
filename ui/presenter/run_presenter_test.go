package presenter

import (
	"context"
	"errors"
	"testing"

	"github.com/soocke/colo-bot-go/ui/model"
)

type mockRunner struct {
	started, stopped int
	running          bool
	err              error
}

func (r *mockRunner) Start(context.Context) error {
	if r.err != nil {
		return r.err
	}
	r.started++
	r.running = true
	return nil
}

func (r *mockRunner) Stop()         { r.stopped++; r.running = false }
func (r *mockRunner) Running() bool { return r.running }

type mockRunView struct {
	reset, editableCalls int
	lastEditable         bool
	running              bool
}

func (v *mockRunView) PreviewReset()         { v.reset++ }
func (v *mockRunView) ConfigEditable(b bool) { v.editableCalls++; v.lastEditable = b }
func (v *mockRunView) SetRunning(b bool)     { v.running = b }

func TestRunPresenter_EnableDisable_Idempotent(t *testing.T) {
	m := &model.RunModel{}
	r := &mockRunner{}
	v := &mockRunView{}
	p := NewRunPresenter(context.Background(), m, r, v, nil)

	p.Enable()
	p.Enable()
	if !m.Enabled() || r.started != 1 || v.lastEditable || !v.running || v.editableCalls != 1 {
		t.Fatalf("enable failed: enabled=%v started=%d editable=%v running=%v", m.Enabled(), r.started, v.lastEditable, v.running)
	}
	p.Disable()
	p.Disable()
	if m.Enabled() || r.stopped != 1 || v.reset != 1 || !v.lastEditable || v.running {
		t.Fatalf("disable failed: enabled=%v stopped=%d reset=%d", m.Enabled(), r.stopped, v.reset)
	}
}

func TestRunPresenter_StartErrorKeepsStopped(t *testing.T) {
	m := &model.RunModel{}
	v := &mockRunView{}
	p := NewRunPresenter(context.Background(), m, &mockRunner{err: errors.New("no window")}, v, nil)
	p.Toggle()
	if m.Enabled() || v.editableCalls != 0 {
		t.Fatalf("start error should leave the model stopped")
	}
}

func TestRunPresenter_SyncAfterAbort(t *testing.T) {
	m := &model.RunModel{}
	r := &mockRunner{}
	v := &mockRunView{}
	p := NewRunPresenter(context.Background(), m, r, v, nil)
	p.Toggle()
	p.Sync()
	if !m.Enabled() {
		t.Fatalf("sync must not stop a healthy run")
	}
	r.running = false
	p.Sync()
	if m.Enabled() || v.running || !v.lastEditable {
		t.Fatalf("sync should reflect the aborted run")
	}
}
