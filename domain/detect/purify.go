package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// Purify recognises the PvE purify screen by its timer and label markers.
type Purify struct {
	base
	phase classify.Classifier
}

func NewPurify(cal *Calibration, phase classify.Classifier, logger *slog.Logger) *Purify {
	return &Purify{base: newBase(cal, logger, "Purify"), phase: phase}
}

func (*Purify) Kind() ScreenKind { return ScreenPurify }

func (d *Purify) ActionBoxes() []image.Rectangle { return d.cal.Purify.Slots[:] }

func (d *Purify) SpecialBox(b SpecialBox) image.Rectangle {
	if b == BoxBurstAction {
		return d.cal.Purify.BurstAction
	}
	return image.Rectangle{}
}

func (d *Purify) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	t := &d.cal.Purify
	gate := vision.MatchAll(f, t.LabelIRule, 0, 0, t.LabelI...) &&
		vision.MatchAll(f, t.LabelORule, 0, 0, t.LabelO...) &&
		vision.MatchAll(f, t.TimerIRule, 0, 0, t.TimerI...) &&
		vision.MatchAll(f, t.TimerORule, 0, 0, t.TimerO...)
	if !gate {
		return nil, false
	}
	s := &PurifyState{
		Active:        vision.MatchAll(f, t.PauseRule, 0, 0, t.Pause...),
		BurstInCenter: vision.CountFillPct(f, t.BurstCenter, t.BurstCenterRule) > 0.75,
	}
	id, _ := d.phase.Classify(vision.ExtractRegion(f, t.Header))
	s.Phase = purifyPhaseFromID(id)
	d.trace("screen detected", "active", s.Active, "burst_center", s.BurstInCenter, "phase", s.Phase)
	return s, true
}

var _ Detector = (*Purify)(nil)
