package capture

import (
	"errors"
	"image"
	"testing"
)

func TestWindowToScreenScalesAndOffsets(t *testing.T) {
	w := Window{Client: image.Rect(100, 50, 100+676, 50+1200)}
	if got := w.ToScreen(image.Pt(10, 20)); got != image.Pt(120, 90) {
		t.Fatalf("got %v", got)
	}
	if got := w.ToScreen(image.Pt(-3, -1)); got != image.Pt(100, 50) {
		t.Fatalf("negative point not clamped: %v", got)
	}
	// 1.5x truncates
	w = Window{Client: image.Rect(0, 0, 507, 900)}
	if got := w.ToScreen(image.Pt(3, 3)); got != image.Pt(4, 4) {
		t.Fatalf("got %v", got)
	}
}

func newTestLocator(title string, api *fakeAPI) *Locator {
	l := NewLocator(title, nil, discardLogger())
	l.api = api
	return l
}

func TestLocatorFindsByProcessName(t *testing.T) {
	api := &fakeAPI{
		procs:   []procInfo{{PID: 1, Name: "explorer.exe"}, {PID: 7, Name: "nox.exe"}},
		titles:  map[int]string{7: "NoxPlayer"},
		clients: map[int]image.Rectangle{7: image.Rect(10, 10, 10+338, 10+600)},
	}
	l := newTestLocator("", api)
	w, err := l.Window()
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if w.PID != 7 || w.Title != "NoxPlayer" || l.State() != WindowFound {
		t.Fatalf("unexpected window %v state %v", w, l.State())
	}
	if _, err := l.Window(); err != nil || api.calls != 1 {
		t.Fatalf("expected cached lookup, calls=%d err=%v", api.calls, err)
	}
	l.Invalidate()
	_, _ = l.Window()
	if api.calls != 2 {
		t.Fatalf("expected fresh lookup after invalidate, calls=%d", api.calls)
	}
}

func TestLocatorTitleWins(t *testing.T) {
	api := &fakeAPI{
		procs:   []procInfo{{PID: 7, Name: "Nox.exe"}, {PID: 9, Name: "custom.exe"}},
		titles:  map[int]string{7: "NoxPlayer", 9: "My Game"},
		clients: map[int]image.Rectangle{7: image.Rect(0, 0, 400, 700), 9: image.Rect(0, 0, 500, 900)},
	}
	w, err := newTestLocator("my game", api).Window()
	if err != nil || w.PID != 9 {
		t.Fatalf("expected pid 9, got %v err=%v", w, err)
	}
}

func TestLocatorSetTitleDropsCache(t *testing.T) {
	api := &fakeAPI{
		procs:   []procInfo{{PID: 7, Name: "Nox.exe"}, {PID: 9, Name: "custom.exe"}},
		titles:  map[int]string{7: "NoxPlayer", 9: "My Game"},
		clients: map[int]image.Rectangle{7: image.Rect(0, 0, 400, 700), 9: image.Rect(0, 0, 500, 900)},
	}
	l := newTestLocator("", api)
	if _, err := l.Window(); err != nil || l.Title() != "NoxPlayer" {
		t.Fatalf("process lookup: title=%q err=%v", l.Title(), err)
	}
	l.SetTitle(" My Game ")
	w, err := l.Window()
	if err != nil || w.PID != 9 || l.Title() != "My Game" {
		t.Fatalf("expected pid 9 after SetTitle, got %v err=%v", w, err)
	}
}

func TestLocatorFailureStates(t *testing.T) {
	cases := []struct {
		name  string
		title string
		api   *fakeAPI
		err   error
		state WindowState
	}{
		{"no process", "", &fakeAPI{procs: []procInfo{{PID: 1, Name: "a.exe"}}}, ErrMissingProcess, WindowMissingProcess},
		{"enumeration error", "", &fakeAPI{}, ErrMissingProcess, WindowMissingProcess},
		{"no title", "Game", &fakeAPI{procs: []procInfo{{PID: 1, Name: "a.exe"}}}, ErrMissingWindow, WindowMissing},
		{"no client", "", &fakeAPI{procs: []procInfo{{PID: 2, Name: "Nox.exe"}}}, ErrMissingWindow, WindowMissing},
		{"too small", "", &fakeAPI{
			procs:   []procInfo{{PID: 2, Name: "Nox.exe"}},
			clients: map[int]image.Rectangle{2: image.Rect(0, 0, 300, 500)},
		}, ErrWindowTooSmall, WindowTooSmall},
	}
	for _, tc := range cases {
		l := newTestLocator(tc.title, tc.api)
		_, err := l.Window()
		if !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.err, err)
		}
		if l.State() != tc.state {
			t.Fatalf("%s: expected state %v, got %v", tc.name, tc.state, l.State())
		}
	}
}
