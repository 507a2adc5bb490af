package app

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/soocke/colo-bot-go/config"
	"github.com/soocke/colo-bot-go/domain/action"
	"github.com/soocke/colo-bot-go/domain/capture"
	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/engine"
	"github.com/soocke/colo-bot-go/domain/journal"
	"github.com/soocke/colo-bot-go/domain/session"
	"github.com/soocke/colo-bot-go/ui/model"
)

// Container assembles models, services and the session. The Tk shell and
// headless mode both run on top of it.
type Container struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger

	Dispatcher *detect.Dispatcher
	Engine     *engine.Engine
	Locator    *capture.Locator
	Capture    *capture.Service
	Clicker    *action.Clicker
	Journal    *journal.Journal
	Session    *session.Session

	Run    *model.RunModel
	Timer  *model.SessionModel
	Status *model.StatusModel
}

// BuildContainer wires everything from cfg. Missing classifier models fall
// back to defaults; a broken journal path is logged and skipped.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Container{
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		Run:        &model.RunModel{},
		Timer:      model.NewSessionModel(),
		Status:     model.NewStatusModel(),
	}

	models, err := classify.LoadModels(cfg.ModelsDir, cfg.ClassifierCacheSize, logger)
	if err != nil {
		logger.Warn("classifier models unavailable, using fallback", "dir", cfg.ModelsDir, "error", err)
		models = classify.Fallback()
	}
	cal := detect.DefaultCalibration()
	c.Dispatcher = detect.DefaultDispatcher(cal, models, logger)
	c.Engine = engine.New(cal, engine.NewRand(), logger)
	if mode, err := engine.ParseTargetMode(cfg.TargetingMode); err == nil {
		c.Engine.SetTargetMode(mode)
	} else {
		logger.Warn("targeting mode", "error", err)
	}

	grabber, err := capture.NewGrabber(cfg.CaptureBackend)
	if err != nil {
		return nil, fmt.Errorf("capture backend: %w", err)
	}
	c.Locator = capture.NewLocator(cfg.WindowTitle, cfg.ProcessNames, logger)
	c.Capture = capture.NewService(grabber, c.Locator, logger)

	injector, err := action.NewInjector(cfg.InputBackend)
	if err != nil {
		return nil, fmt.Errorf("input backend: %w", err)
	}
	c.Clicker = action.NewClicker(injector, engine.NewRand(), logger)
	c.Clicker.SetEnabled(cfg.ClickingEnabled)
	c.Clicker.SetRequireFocus(cfg.RequireFocus)

	opts := session.Options{
		Frames:     c.Capture,
		Dispatcher: c.Dispatcher,
		Engine:     c.Engine,
		Clicker:    c.Clicker,
		Interval:   cfg.TickInterval(),
		Logger:     logger,
	}
	if cfg.JournalPath != "" {
		j, err := journal.Open(cfg.JournalPath)
		if err != nil {
			logger.Error("journal disabled", "path", cfg.JournalPath, "error", err)
		} else {
			c.Journal = j
			opts.Journal = j
		}
	}
	c.Session, err = session.New(opts)
	if err != nil {
		c.closeJournal()
		return nil, err
	}
	c.Session.AddListener(c.Status.Push)
	logger.Info("container ready",
		"capture", c.Capture.Backend(),
		"input", injector.Name(),
		"tick", cfg.TickInterval(),
		"journal", c.Journal != nil)
	return c, nil
}

// ApplyConfig pushes live settings from cfg. Backend and model changes
// need a restart.
func (c *Container) ApplyConfig(cfg *config.Config) {
	c.Clicker.SetRequireFocus(cfg.RequireFocus)
	c.Locator.SetTitle(cfg.WindowTitle)
	c.Session.SetInterval(cfg.TickInterval())
	mode, err := engine.ParseTargetMode(cfg.TargetingMode)
	switch {
	case err != nil:
		c.Logger.Warn("targeting mode", "error", err)
	case c.Session.Running():
		c.Logger.Warn("targeting mode change ignored while running")
	default:
		c.Engine.SetTargetMode(mode)
	}
	if cfg.CaptureBackend != c.Capture.Backend() {
		c.Logger.Info("capture backend change takes effect on restart", "backend", cfg.CaptureBackend)
	}
}

// ToggleClicking flips click delivery and returns the new value.
func (c *Container) ToggleClicking() bool {
	on := !c.Clicker.Enabled()
	c.Clicker.SetEnabled(on)
	c.Config.ClickingEnabled = on
	c.Logger.Info("clicking", "enabled", on)
	return on
}

// Close stops the session and flushes the journal.
func (c *Container) Close() error {
	c.Session.Stop()
	return c.closeJournal()
}

func (c *Container) closeJournal() error {
	if c.Journal == nil {
		return nil
	}
	j := c.Journal
	c.Journal = nil
	summary, serr := j.ClickSummary()
	for _, s := range summary {
		c.Logger.Info("journal summary", "screen", s.Screen, "clicks", s.Clicks, "delivered", s.Delivered)
	}
	return errors.Join(serr, j.Close())
}
