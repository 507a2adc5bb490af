package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestServiceCaptureStoresSnapshot(t *testing.T) {
	win := Window{PID: 3, Client: image.Rect(20, 30, 20+338, 30+600)}
	g := &fakeGrabber{img: uniformRGBA(338, 600, color.RGBA{R: 9, A: 255})}
	s := newService(g, &fakeWindows{win: win}, discardLogger())

	if s.Preview() != nil {
		t.Fatalf("expected no preview before the first capture")
	}
	snap, err := s.Capture()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if g.rect != win.Client {
		t.Fatalf("grabbed %v, want %v", g.rect, win.Client)
	}
	if snap.Sequence != 1 || snap.Frame.At(0, 0).R != 9 || snap.Window.PID != 3 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if s.LatestFrame().Sequence != 1 || s.Preview() == nil {
		t.Fatalf("latest frame not stored")
	}
	if st := s.Stats(); st.Captures != 1 || st.Skipped != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestServiceCaptureFailures(t *testing.T) {
	wins := &fakeWindows{err: ErrMissingProcess}
	s := newService(&fakeGrabber{}, wins, discardLogger())
	if _, err := s.Capture(); !errors.Is(err, ErrMissingProcess) {
		t.Fatalf("expected missing process, got %v", err)
	}

	wins = &fakeWindows{win: Window{Client: image.Rect(0, 0, 338, 600)}}
	s = newService(&fakeGrabber{err: errors.New("blt failed")}, wins, discardLogger())
	if _, err := s.Capture(); err == nil || wins.invalidated != 1 {
		t.Fatalf("grab failure should invalidate the window, err=%v n=%d", err, wins.invalidated)
	}

	s = newService(&fakeGrabber{img: uniformRGBA(100, 100, color.RGBA{A: 255})}, wins, discardLogger())
	if _, err := s.Capture(); !errors.Is(err, ErrWindowTooSmall) {
		t.Fatalf("expected too small, got %v", err)
	}
	if st := s.Stats(); st.Skipped != 1 || st.Captures != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}

func TestNewGrabberKnowsPortableBackends(t *testing.T) {
	for _, name := range []string{BackendScreenshot, BackendRobotgo} {
		g, err := NewGrabber(name)
		if err != nil || g.Name() != name {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := NewGrabber("dxgi"); err == nil {
		t.Fatalf("expected unknown backend error")
	}
}
