package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// ButtonReq is one cell of the dialog decision table. Zero Color or Type
// accept any recognised button at Pos.
type ButtonReq struct {
	Pos   ButtonPos
	Color ButtonColor
	Type  ButtonType
}

// ModeRow maps a set of simultaneously present buttons to a dialog mode.
type ModeRow struct {
	Mode    MessageMode
	Require []ButtonReq
}

func defaultModes() []ModeRow {
	return []ModeRow{
		{Mode: ModeCombatReport, Require: []ButtonReq{
			{Pos: ButtonCombatReportRetry},
			{Pos: ButtonCombatReportOk, Color: ColorRed, Type: ButtonOk},
		}},
		{Mode: ModeCombatStart, Require: []ButtonReq{
			{Pos: ButtonCombatStart, Color: ColorRed, Type: ButtonStart},
			{Pos: ButtonCombatDetails, Color: ColorWhite, Type: ButtonDetails},
		}},
		{Mode: ModeOk, Require: []ButtonReq{
			{Pos: ButtonCenter, Color: ColorRed, Type: ButtonOk},
		}},
		{Mode: ModeOkCancel, Require: []ButtonReq{
			{Pos: ButtonCenterTwoLeft, Color: ColorWhite, Type: ButtonCancel},
			{Pos: ButtonCenterTwoRight, Color: ColorRed, Type: ButtonOk},
		}},
		{Mode: ModeClose, Require: []ButtonReq{
			{Pos: ButtonCenter, Color: ColorWhite, Type: ButtonClose},
		}},
	}
}

func (r ModeRow) satisfied(buttons *[ButtonPosCount]Button) bool {
	for _, req := range r.Require {
		b := buttons[req.Pos]
		if b.Color == ColorUnknown {
			return false
		}
		if req.Color != ColorUnknown && b.Color != req.Color {
			return false
		}
		if req.Type != ButtonTypeUnknown && b.Type != req.Type {
			return false
		}
	}
	return true
}

// MessageBox recognises dialogs from the colour and label of the buttons
// at fixed positions.
type MessageBox struct {
	base
	labels classify.Classifier
}

func NewMessageBox(cal *Calibration, labels classify.Classifier, logger *slog.Logger) *MessageBox {
	return &MessageBox{base: newBase(cal, logger, "MessageBox"), labels: labels}
}

func (*MessageBox) Kind() ScreenKind { return ScreenMessageBox }

// ActionBoxes is indexed by ButtonPos.
func (d *MessageBox) ActionBoxes() []image.Rectangle { return d.cal.Message.Buttons[:] }

func (*MessageBox) SpecialBox(SpecialBox) image.Rectangle { return image.Rectangle{} }

func (d *MessageBox) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	s := &MessageBoxState{}
	for pos := 1; pos < ButtonPosCount; pos++ {
		s.Buttons[pos] = d.scanButton(f, ButtonPos(pos))
	}
	for _, row := range d.cal.Message.Modes {
		if row.satisfied(&s.Buttons) {
			s.Mode = row.Mode
			d.trace("screen detected", "mode", s.Mode)
			return s, true
		}
	}
	return nil, false
}

func (d *MessageBox) scanButton(f *vision.FrameBuffer, pos ButtonPos) Button {
	t := &d.cal.Message
	r := t.Buttons[pos]
	strip := box(r.Min.X+t.StripInsetX, r.Min.Y+t.StripOffsetY, r.Dx()-2*t.StripInsetX, 1)
	avg := vision.AverageColor(f, strip)
	hue, sat, val := avg.Hue(), avg.Saturation(), avg.Value()

	var b Button
	switch {
	case t.Red.MatchesHSV(hue, sat, val):
		b.Color = ColorRed
		b.Disabled = val < t.RedDisabled
	case t.Spec.MatchesHSV(hue, sat, val):
		b.Color = ColorSpec
	case t.White.MatchesHSV(hue, sat, val):
		b.Color = ColorWhite
		b.Disabled = val < t.WhiteDisabled
	default:
		return b
	}

	glyph := box(r.Min.X+(r.Dx()-t.GlyphW)/2, r.Min.Y+(r.Dy()-t.GlyphH)/2, t.GlyphW, t.GlyphH)
	id, _ := d.labels.Classify(vision.ExtractRegion(f, vision.FeatureSpec{
		Area: glyph, GridW: t.GlyphGridW, GridH: t.GlyphGridH, Value: vision.MonoLevel(16),
	}))
	b.Type = buttonTypeFromID(id)
	return b
}

var _ Detector = (*MessageBox)(nil)
