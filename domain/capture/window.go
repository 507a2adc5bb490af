package capture

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-vgo/robotgo"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// DefaultProcessNames are the emulator executables searched when no window
// title is configured.
var DefaultProcessNames = []string{"Nox.exe", "NoxVMHandle.exe", "dnplayer.exe", "HD-Player.exe", "MEmu.exe"}

// Window is a located game window. Client is the client area in screen
// coordinates.
type Window struct {
	PID    int
	Title  string
	Client image.Rectangle
}

// ToScreen maps a logical frame point into screen coordinates: per-axis
// scale, truncate, clamp at 0, then offset by the client origin.
func (w Window) ToScreen(p image.Point) image.Point {
	sx := float32(w.Client.Dx()) / float32(vision.LogicalWidth)
	sy := float32(w.Client.Dy()) / float32(vision.LogicalHeight)
	x := max(int(float32(p.X)*sx), 0)
	y := max(int(float32(p.Y)*sy), 0)
	return image.Pt(w.Client.Min.X+x, w.Client.Min.Y+y)
}

func (w Window) String() string {
	return fmt.Sprintf("%q pid=%d client=%v", w.Title, w.PID, w.Client)
}

type procInfo struct {
	PID  int
	Name string
}

// windowAPI is the slice of the OS the locator needs.
type windowAPI interface {
	Processes() ([]procInfo, error)
	Title(pid int) string
	Client(pid int) image.Rectangle
}

type systemWindows struct{}

func (systemWindows) Processes() ([]procInfo, error) {
	pids, err := process.Pids()
	if err != nil {
		return nil, err
	}
	out := make([]procInfo, 0, len(pids))
	for _, pid := range pids {
		p, err := process.NewProcess(pid)
		if err != nil {
			continue
		}
		name, err := p.Name()
		if err != nil {
			continue
		}
		out = append(out, procInfo{PID: int(pid), Name: name})
	}
	return out, nil
}

func (systemWindows) Title(pid int) string { return robotgo.GetTitle(pid) }

func (systemWindows) Client(pid int) image.Rectangle {
	x, y, w, h := robotgo.GetClient(pid)
	if w <= 0 || h <= 0 {
		x, y, w, h = robotgo.GetBounds(pid)
	}
	return image.Rect(x, y, x+w, y+h)
}

// Locator finds the emulator window and caches it until Invalidate.
type Locator struct {
	title     string
	processes []string
	api       windowAPI
	logger    *slog.Logger

	mu     sync.Mutex
	cached *Window
	state  WindowState
}

// NewLocator looks windows up by exact title when title is set, otherwise
// by process name.
func NewLocator(title string, processNames []string, logger *slog.Logger) *Locator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if len(processNames) == 0 {
		processNames = DefaultProcessNames
	}
	return &Locator{title: strings.TrimSpace(title), processes: processNames, api: systemWindows{}, logger: logger}
}

// State reports the outcome of the most recent lookup.
func (l *Locator) State() WindowState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// SetTitle switches the lookup key. An empty title falls back to process
// names.
func (l *Locator) SetTitle(title string) {
	l.mu.Lock()
	l.title = strings.TrimSpace(title)
	l.cached = nil
	l.mu.Unlock()
}

// Title is the window title currently searched for, or the title of the
// cached window when looking up by process.
func (l *Locator) Title() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.title == "" && l.cached != nil {
		return l.cached.Title
	}
	return l.title
}

// Invalidate drops the cached window so the next call searches again.
func (l *Locator) Invalidate() {
	l.mu.Lock()
	l.cached = nil
	l.mu.Unlock()
}

// Window returns the cached window or performs a fresh lookup.
func (l *Locator) Window() (Window, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cached != nil {
		return *l.cached, nil
	}
	w, state, err := l.locate()
	if state != l.state {
		l.logger.Info("window lookup", "state", state.String(), "window", w.String())
	}
	l.state = state
	if err != nil {
		return Window{}, err
	}
	l.cached = &w
	return w, nil
}

func (l *Locator) locate() (Window, WindowState, error) {
	procs, err := l.api.Processes()
	if err != nil {
		return Window{}, WindowMissingProcess, fmt.Errorf("%w: %v", ErrMissingProcess, err)
	}

	var candidates []procInfo
	if l.title != "" {
		for _, p := range procs {
			if strings.EqualFold(strings.TrimSpace(l.api.Title(p.PID)), l.title) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return Window{}, WindowMissing, fmt.Errorf("%w: title %q", ErrMissingWindow, l.title)
		}
	} else {
		for _, p := range procs {
			if l.matchesProcess(p.Name) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return Window{}, WindowMissingProcess, fmt.Errorf("%w: %v", ErrMissingProcess, l.processes)
		}
	}

	tooSmall := false
	for _, p := range candidates {
		client := l.api.Client(p.PID)
		if client.Empty() {
			continue
		}
		if client.Dx() < vision.LogicalWidth || client.Dy() < vision.LogicalHeight {
			tooSmall = true
			continue
		}
		return Window{PID: p.PID, Title: l.api.Title(p.PID), Client: client}, WindowFound, nil
	}
	if tooSmall {
		return Window{}, WindowTooSmall, ErrWindowTooSmall
	}
	return Window{}, WindowMissing, ErrMissingWindow
}

func (l *Locator) matchesProcess(name string) bool {
	for _, want := range l.processes {
		if strings.EqualFold(name, want) {
			return true
		}
	}
	return false
}
