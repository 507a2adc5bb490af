package presenter

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/soocke/colo-bot-go/domain/action"
)

// FocusView shows whether the game window has focus.
type FocusView interface {
	SetFocus(focused bool, foreground string)
}

// FocusWatcher polls the foreground window title while the bot runs and
// reports whether it matches the game window. The clicker enforces the
// gate itself; this only feeds the status line.
type FocusWatcher struct {
	Logger     *slog.Logger
	Foreground func() (string, error)
	Target     func() string
	interval   time.Duration

	mu      sync.Mutex
	done    chan struct{}
	running atomic.Bool

	focused atomic.Bool
	title   atomic.Value // string
	changed atomic.Bool
}

// NewFocusWatcher defaults fg to the OS foreground title.
func NewFocusWatcher(logger *slog.Logger, fg func() (string, error), target func() string) *FocusWatcher {
	if fg == nil {
		fg = action.ForegroundWindowTitle
	}
	if target == nil {
		target = func() string { return "" }
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &FocusWatcher{Logger: logger, Foreground: fg, Target: target, interval: 250 * time.Millisecond}
	w.title.Store("")
	return w
}

// OnRunning starts polling when the bot starts and stops it on halt.
func (w *FocusWatcher) OnRunning(running bool) {
	if w == nil {
		return
	}
	if running {
		w.start()
		return
	}
	w.stop()
}

func (w *FocusWatcher) start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(w.done)
}

func (w *FocusWatcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

func (w *FocusWatcher) loop(done chan struct{}) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	last := "\x00"
	for {
		select {
		case <-ticker.C:
			w.poll(&last)
		case <-done:
			return
		}
	}
}

func (w *FocusWatcher) poll(last *string) {
	fg, err := w.Foreground()
	if err != nil {
		w.Logger.Debug("foreground title error", "error", err)
		return
	}
	fg = strings.TrimSpace(fg)
	if fg == *last {
		return
	}
	*last = fg
	target := strings.TrimSpace(w.Target())
	focused := target != "" && strings.EqualFold(fg, target)
	w.title.Store(fg)
	w.focused.Store(focused)
	w.changed.Store(true)
	w.Logger.Debug("foreground changed", "window", fg, "focused", focused)
}

// Flush pushes a pending change to the view. Call from the UI thread.
func (w *FocusWatcher) Flush(view FocusView) {
	if w == nil || view == nil || !w.changed.Swap(false) {
		return
	}
	view.SetFocus(w.focused.Load(), w.title.Load().(string))
}

// Focused reports the last observed state.
func (w *FocusWatcher) Focused() bool { return w.focused.Load() }
