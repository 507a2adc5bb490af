package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// TitleScreen recognises the game logo.
type TitleScreen struct {
	base
}

func NewTitleScreen(cal *Calibration, logger *slog.Logger) *TitleScreen {
	return &TitleScreen{base: newBase(cal, logger, "TitleScreen")}
}

func (*TitleScreen) Kind() ScreenKind { return ScreenTitle }

func (*TitleScreen) ActionBoxes() []image.Rectangle { return nil }

func (d *TitleScreen) SpecialBox(b SpecialBox) image.Rectangle {
	if b == BoxStartArea {
		return d.cal.Title.StartArea
	}
	return image.Rectangle{}
}

func (d *TitleScreen) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	t := &d.cal.Title
	ok := vision.MatchAll(f, t.WhiteRule, 0, 0, t.White...) &&
		vision.MatchAll(f, t.BlackRule, 0, 0, t.Black...) &&
		vision.MatchAll(f, t.BlueRule, 0, 0, t.Blue...) &&
		vision.MatchAll(f, t.RedRule, 0, 0, t.Red...)
	if !ok {
		return nil, false
	}
	return &TitleScreenState{}, true
}

var _ Detector = (*TitleScreen)(nil)
