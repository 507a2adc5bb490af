package app

import (
	"context"
	"fmt"
	"time"

	tk "modernc.org/tk9.0"

	"github.com/soocke/colo-bot-go/config"
	"github.com/soocke/colo-bot-go/domain/action"
	"github.com/soocke/colo-bot-go/ui/presenter"
	"github.com/soocke/colo-bot-go/ui/theme"
	"github.com/soocke/colo-bot-go/ui/view"
)

// uiTick is how often presenters refresh from the Tk event loop.
const uiTick = 100 * time.Millisecond

// app is the Tk shell around a Container.
type app struct {
	c       *Container
	ctx     context.Context
	cancel  context.CancelFunc
	width   int
	height  int
	afterID string

	root    *view.RootView
	run     *presenter.RunPresenter
	preview *presenter.PreviewPresenter
	focus   *presenter.FocusWatcher
	loop    *presenter.Loop
}

func NewApp(ctx context.Context, title string, width, height int, c *Container) *app {
	ctx, cancel := context.WithCancel(ctx)
	a := &app{c: c, ctx: ctx, cancel: cancel, width: width, height: height}
	tk.App.WmTitle(title)
	tk.WmProtocol(tk.App, "WM_DELETE_WINDOW", a.exitHandler)
	tk.WmGeometry(tk.App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the UI and blocks in the Tk main loop.
func (a *app) Start() {
	theme.SetDark(a.c.Config.DarkMode)

	titles, err := action.ListWindows()
	if err != nil {
		a.c.Logger.Warn("list windows", "error", err)
	}
	if t := a.c.Config.WindowTitle; t != "" {
		titles = append([]string{t}, titles...)
	}

	a.root = view.NewRootView(a.c.Config, a.c.ConfigPath, a.c.Logger)
	a.root.Build(titles, view.Handlers{
		OnToggleRun:      a.toggleRun,
		OnToggleClicking: func() { a.root.SetClicking(a.c.ToggleClicking()) },
		OnExit:           a.exitHandler,
		OnWindowChanged:  a.windowChanged,
		OnConfigApplied:  func(cfg *config.Config) { a.c.ApplyConfig(cfg) },
	})

	a.run = presenter.NewRunPresenter(a.ctx, a.c.Run, a.c.Session, a.root, a.c.Logger)
	a.preview = presenter.NewPreviewPresenter(a.c.Capture, a.root, a.c.Logger)
	a.focus = presenter.NewFocusWatcher(a.c.Logger, nil, a.c.Locator.Title)
	a.loop = &presenter.Loop{
		Run:       a.run,
		Screen:    presenter.NewScreenPresenter(a.c.Status, a.root),
		Session:   presenter.NewSessionPresenter(a.c.Timer, a.c.Session, a.root),
		Preview:   a.preview,
		Focus:     a.focus,
		FocusView: a.root,
		Schedule:  a.scheduleUpdate,
	}

	a.scheduleUpdate()
	tk.App.Wait()
}

func (a *app) update() {
	a.loop.Tick()
	a.focus.OnRunning(a.c.Run.Enabled())
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps the callback on Tk's event loop thread.
	a.afterID = tk.TclAfter(uiTick, a.update)
}

func (a *app) toggleRun() {
	a.run.Toggle()
	a.focus.OnRunning(a.c.Run.Enabled())
}

func (a *app) windowChanged(title string) {
	if title == "<none>" {
		title = ""
	}
	a.c.Config.WindowTitle = title
	a.c.Locator.SetTitle(title)
	a.c.Logger.Info("game window selected", "title", title)
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		tk.TclAfterCancel(a.afterID)
	}
	a.run.Disable()
	a.focus.OnRunning(false)
	a.preview.Close()
	if err := a.c.Close(); err != nil {
		a.c.Logger.Error("shutdown", "error", err)
	}
	if err := a.c.Config.Save(a.c.ConfigPath); err != nil {
		a.c.Logger.Error("config save failed", "error", err)
	}
	a.cancel()
	tk.Destroy(tk.App)
}
