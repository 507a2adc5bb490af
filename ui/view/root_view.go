package view

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/colo-bot-go/config"
	"github.com/soocke/colo-bot-go/ui/presenter"
	"github.com/soocke/colo-bot-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions wired by the app shell.
type Handlers struct {
	OnToggleRun      func()
	OnToggleClicking func()
	OnExit           func()
	OnWindowChanged  func(title string)
	OnConfigApplied  func(cfg *config.Config)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	Session     SessionStats
	ConfigPanel ConfigPanel
	CapturePrev CapturePreview

	StateLabel   *LabelWidget
	DetailsLabel *LabelWidget
	FocusLabel   *LabelWidget
	RunButton    *ButtonWidget
	ClickButton  *ButtonWidget
	WindowSelect *TComboboxWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. titles feed the game window dropdown; the
// first entry is preselected.
func (rv *RootView) Build(titles []string, h Handlers) {
	if rv == nil {
		return
	}
	pal := theme.CurrentPalette()

	rv.Session = NewSessionStats(nil, 0, 0)
	rv.StateLabel = Label(Txt("Screen: <stopped>"), Borderwidth(1), Relief("ridge"), Background(pal.Accent), Foreground("white"))
	Grid(rv.StateLabel, Row(0), Column(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(5), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.RunButton = Button(Txt("Start"), Command(h.OnToggleRun), Background(pal.Primary), Foreground("white"))
	Grid(rv.RunButton, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.ClickButton = Button(Txt(clickingText(rv.cfg.ClickingEnabled)), Command(h.OnToggleClicking))
	Grid(rv.ClickButton, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	if len(titles) == 0 {
		titles = []string{"<none>"}
	}
	rv.WindowSelect = TCombobox(Values(titles), Width(26))
	Grid(rv.WindowSelect, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.WindowSelect.Current(0)
	Bind(rv.WindowSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.WindowSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(titles) {
			rv.logger.Error("window selection parse error", "error", err)
			return
		}
		if h.OnWindowChanged != nil {
			h.OnWindowChanged(titles[idx])
		}
	}))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit), Background(pal.Danger), Foreground("white"))
	Grid(exitBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	rv.DetailsLabel = Label(Txt(""), Anchor("w"), Width(42), Height(3), Borderwidth(1), Relief("sunken"))
	Grid(rv.DetailsLabel, Row(1), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.FocusLabel = Label(Txt("Focus: -"), Anchor("w"))
	Grid(rv.FocusLabel, Row(1), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnConfigApplied)
	endRow := rv.ConfigPanel.Build(2)
	rv.CapturePrev = NewCapturePreview(endRow)
}

func clickingText(enabled bool) string {
	if enabled {
		return "Clicking: on"
	}
	return "Clicking: off"
}

// SetStateLabel expects "Screen: <kind>" and colours the label by kind.
func (rv *RootView) SetStateLabel(text string) {
	if rv == nil || rv.StateLabel == nil {
		return
	}
	kind := strings.TrimSpace(strings.TrimPrefix(text, "Screen:"))
	rv.StateLabel.Configure(Txt(text), Background(theme.ScreenColor(kind)))
}

// SetDetails shows the engine status lines.
func (rv *RootView) SetDetails(lines []string) {
	if rv != nil && rv.DetailsLabel != nil {
		rv.DetailsLabel.Configure(Txt(strings.Join(lines, "\n")))
	}
}

func (rv *RootView) SetClicks(decided, delivered uint64) {
	if rv != nil && rv.Session != nil {
		rv.Session.SetClicks(decided, delivered)
	}
}

func (rv *RootView) SetFocus(focused bool, foreground string) {
	if rv == nil || rv.FocusLabel == nil {
		return
	}
	mark := "no"
	if focused {
		mark = "yes"
	}
	rv.FocusLabel.Configure(Txt(fmt.Sprintf("Focus: %s (%s)", mark, foreground)))
}

func (rv *RootView) SetRunning(running bool) {
	if rv == nil || rv.RunButton == nil {
		return
	}
	pal := theme.CurrentPalette()
	if running {
		rv.RunButton.Configure(Txt("Stop"), Background(pal.Danger))
		return
	}
	rv.RunButton.Configure(Txt("Start"), Background(pal.Primary))
	rv.SetStateLabel("Screen: <stopped>")
}

func (rv *RootView) SetClicking(enabled bool) {
	if rv != nil && rv.ClickButton != nil {
		rv.ClickButton.Configure(Txt(clickingText(enabled)))
	}
}

func (rv *RootView) ConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

func (rv *RootView) PreviewReset() {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.Reset()
	}
}

func (rv *RootView) UpdateCapture(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateCapture(img)
	}
}

// UpdateDetection shows the zoomed crop around the last clicked box.
func (rv *RootView) UpdateDetection(img image.Image) {
	if rv != nil && rv.CapturePrev != nil {
		rv.CapturePrev.UpdateDetection(img)
	}
}

// SetRunInfo shows run count, loop rate and dropped ticks.
func (rv *RootView) SetRunInfo(info presenter.RunInfo) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetRunInfo(fmt.Sprintf("Runs: %d  %.1f t/s  dropped %d  %s",
		info.Runs, info.TickRate, info.Dropped, info.Screen))
}

func (rv *RootView) SetSession(session, total time.Duration) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(session)
	rv.Session.SetTotal(total)
}
