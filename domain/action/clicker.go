package action

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/soocke/colo-bot-go/domain/capture"
)

// Reasons a click was not delivered. Neither is a failure of the tick.
var (
	ErrClickingDisabled = errors.New("action: clicking disabled")
	ErrNotFocused       = errors.New("action: game window not in foreground")
)

// Rand picks an int in [lo, hi).
type Rand interface {
	Next(lo, hi int) int
}

// Clicker turns a logical action box into one injected click: a uniform
// point inside the box, mapped through the window's scale.
type Clicker struct {
	injector   Injector
	rng        Rand
	logger     *slog.Logger
	foreground func() (string, error)

	enabled      atomic.Bool
	requireFocus atomic.Bool
	clicks       atomic.Uint64
	suppressed   atomic.Uint64
}

func NewClicker(injector Injector, rng Rand, logger *slog.Logger) *Clicker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Clicker{injector: injector, rng: rng, logger: logger, foreground: ForegroundWindowTitle}
	c.enabled.Store(true)
	c.requireFocus.Store(true)
	return c
}

func (c *Clicker) SetEnabled(v bool)      { c.enabled.Store(v) }
func (c *Clicker) Enabled() bool          { return c.enabled.Load() }
func (c *Clicker) SetRequireFocus(v bool) { c.requireFocus.Store(v) }

// Counts returns delivered and suppressed clicks.
func (c *Clicker) Counts() (clicks, suppressed uint64) {
	return c.clicks.Load(), c.suppressed.Load()
}

// PickPoint returns a logical point inside box, Min inclusive and Max
// exclusive. Degenerate boxes yield their origin.
func (c *Clicker) PickPoint(box image.Rectangle) image.Point {
	p := box.Min
	if box.Dx() > 0 {
		p.X += c.rng.Next(0, box.Dx())
	}
	if box.Dy() > 0 {
		p.Y += c.rng.Next(0, box.Dy())
	}
	return p
}

// Click picks a point in box and injects it in screen space. It returns
// the screen point even when the click is suppressed.
func (c *Clicker) Click(win capture.Window, box image.Rectangle) (image.Point, error) {
	screen := win.ToScreen(c.PickPoint(box))
	if !c.enabled.Load() {
		c.suppressed.Add(1)
		return screen, ErrClickingDisabled
	}
	if c.requireFocus.Load() {
		title, err := c.foreground()
		if err != nil || !strings.EqualFold(strings.TrimSpace(title), strings.TrimSpace(win.Title)) {
			c.suppressed.Add(1)
			c.logger.Debug("click suppressed", "reason", "focus", "foreground", title, "want", win.Title)
			return screen, ErrNotFocused
		}
	}
	if err := c.injector.LeftClick(screen); err != nil {
		return screen, fmt.Errorf("action: %s click at %v: %w", c.injector.Name(), screen, err)
	}
	c.clicks.Add(1)
	c.logger.Debug("click", "backend", c.injector.Name(), "x", screen.X, "y", screen.Y)
	return screen, nil
}
