package presenter

import (
	"sync"
	"testing"
	"time"
)

type mockFocusView struct {
	calls   int
	focused bool
	title   string
}

func (v *mockFocusView) SetFocus(f bool, title string) { v.calls++; v.focused, v.title = f, title }

type titleFeed struct {
	mu    sync.Mutex
	title string
}

func (f *titleFeed) set(s string) { f.mu.Lock(); f.title = s; f.mu.Unlock() }
func (f *titleFeed) get() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title, nil
}

func waitFocus(t *testing.T, w *FocusWatcher, want bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for w.Focused() != want {
		if time.Now().After(deadline) {
			t.Fatalf("focus never became %v", want)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func TestFocusWatcher_TracksForeground(t *testing.T) {
	feed := &titleFeed{title: "Other"}
	w := NewFocusWatcher(nil, feed.get, func() string { return "NoxPlayer" })
	w.interval = 5 * time.Millisecond
	view := &mockFocusView{}

	w.OnRunning(true)
	defer w.OnRunning(false)
	time.Sleep(30 * time.Millisecond)
	if w.Focused() {
		t.Fatalf("unexpected focus on other window")
	}

	feed.set("noxplayer")
	waitFocus(t, w, true)
	w.Flush(view)
	w.Flush(view)
	if view.calls != 1 || !view.focused || view.title != "noxplayer" {
		t.Fatalf("unexpected view state %+v", view)
	}

	feed.set("Explorer")
	waitFocus(t, w, false)
}

func TestFocusWatcher_StopAndRestart(t *testing.T) {
	feed := &titleFeed{title: "NoxPlayer"}
	w := NewFocusWatcher(nil, feed.get, func() string { return "NoxPlayer" })
	w.interval = 5 * time.Millisecond
	w.OnRunning(true)
	waitFocus(t, w, true)
	w.OnRunning(false)
	w.OnRunning(false)

	feed.set("Other")
	time.Sleep(30 * time.Millisecond)
	if !w.Focused() {
		t.Fatalf("stopped watcher should not poll")
	}
	w.OnRunning(true)
	defer w.OnRunning(false)
	waitFocus(t, w, false)
}
