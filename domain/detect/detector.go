// Package detect recognises game screens from a logical frame and extracts
// their structured state.
package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// Detector recognises one screen type. Detect is a pure function of the
// frame and the calibration; detectors keep no state between calls.
type Detector interface {
	Kind() ScreenKind
	Detect(f *vision.FrameBuffer) (ScreenState, bool)
	// ActionBoxes are the slot click targets, indexed like the state's slots.
	ActionBoxes() []image.Rectangle
	// SpecialBox returns a named click target, or an empty rectangle.
	SpecialBox(b SpecialBox) image.Rectangle
}

type base struct {
	cal    *Calibration
	logger *slog.Logger
	name   string
}

func newBase(cal *Calibration, logger *slog.Logger, name string) base {
	if cal == nil {
		cal = DefaultCalibration()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return base{cal: cal, logger: logger.With("detector", name), name: name}
}

func (b base) trace(msg string, args ...any) {
	b.logger.Debug(msg, args...)
}

// hasChatBox checks the chat box corners shared by the combat screens.
func (b base) hasChatBox(f *vision.FrameBuffer) bool {
	t := &b.cal.Chat
	ok := vision.MatchAll(f, t.InnerRule, 0, 0, t.Inner...) &&
		vision.MatchAll(f, t.OuterRule, 0, 0, t.Outer...)
	if !ok {
		b.trace("chat box gate failed")
	}
	return ok
}
