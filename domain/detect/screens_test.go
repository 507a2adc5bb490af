package detect

import (
	"image"
	"testing"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

func coloPurifyFrame(cal *Calibration) *vision.FrameBuffer {
	f := newFrame()
	paintChatBox(f, cal)
	paint(f, grey150, cal.ColoPurify.PlateInner...)
	return f
}

func TestColoPurify_BurstActiveOnDarkStrip(t *testing.T) {
	cal := DefaultCalibration()
	d := NewColoPurify(cal, classify.Constant{ID: int(SlotSmall)}, discardLogger())
	st, ok := d.Detect(coloPurifyFrame(cal))
	if !ok {
		t.Fatalf("expected purify screen")
	}
	s := st.(*ColoPurifyState)
	if s.Burst != BurstActive {
		t.Fatalf("expected Active burst, got %v", s.Burst)
	}
	if !s.SP.Valid || s.SP.Obstructed || s.SP.Fill != 0 {
		t.Fatalf("unexpected SP %+v", s.SP)
	}
	if counts := s.CountSlots(); counts[SlotSmall] != PurifySlotCount {
		t.Fatalf("expected all slots Small, got %v", counts)
	}
}

func TestColoPurify_PlateStripMustBeUniform(t *testing.T) {
	cal := DefaultCalibration()
	f := coloPurifyFrame(cal)
	strip := cal.ColoPurify.PlateStrip
	paint(f, white, vision.Pt(strip.Min.X+30, strip.Min.Y))
	if _, ok := NewColoPurify(cal, classify.Constant{}, discardLogger()).Detect(f); ok {
		t.Fatalf("bright pixel on the plate strip must reject")
	}
}

func TestColoPurify_BurstInCenter(t *testing.T) {
	cal := DefaultCalibration()
	f := coloPurifyFrame(cal)
	fill(f, rgb{100, 100, 100}, cal.ColoPurify.BurstActive)
	c := cal.ColoPurify.BurstCenter
	fill(f, burstGlow, image.Rect(c.Min.X, c.Min.Y, c.Max.X+1, c.Max.Y+1))
	st, _ := NewColoPurify(cal, classify.Constant{}, discardLogger()).Detect(f)
	s := st.(*ColoPurifyState)
	if s.Burst != BurstReadyAndCenter || s.MarkerPctX != 0.5 || s.MarkerPctY != 0.5 {
		t.Fatalf("unexpected burst reading %v %v/%v", s.Burst, s.MarkerPctX, s.MarkerPctY)
	}
}

func TestColoPurify_BurstMarkerOffCenter(t *testing.T) {
	cal := DefaultCalibration()
	f := coloPurifyFrame(cal)
	fill(f, rgb{100, 100, 100}, cal.ColoPurify.BurstActive)
	tip := vision.Pt(150, 200)
	paint(f, white, tip)
	paintOffset(f, white, tip, cal.ColoPurify.MarkerInner...)

	st, _ := NewColoPurify(cal, classify.Constant{}, discardLogger()).Detect(f)
	s := st.(*ColoPurifyState)
	if s.Burst != BurstReady {
		t.Fatalf("expected Ready burst, got %v", s.Burst)
	}
	if s.MarkerPos != tip {
		t.Fatalf("marker at %v, want %v", s.MarkerPos, tip)
	}
	area := cal.ColoPurify.BurstArea
	if want := float32(tip.X-area.Min.X) / float32(area.Dx()); s.MarkerPctX != want {
		t.Fatalf("pctX %v want %v", s.MarkerPctX, want)
	}
	if got, want := s.BurstReadyBox(), vision.Box(135, 240, 30, 30); got != want {
		t.Fatalf("ready box %v want %v", got, want)
	}

	// a lit outer point breaks the marker shape
	paintOffset(f, white, tip, cal.ColoPurify.MarkerOuter[2])
	st, _ = NewColoPurify(cal, classify.Constant{}, discardLogger()).Detect(f)
	if got := st.(*ColoPurifyState).Burst; got != BurstNone {
		t.Fatalf("expected no burst, got %v", got)
	}
}

func TestColoPurify_SlotFeaturesMirrorRightHalf(t *testing.T) {
	cal := DefaultCalibration()
	f := coloPurifyFrame(cal)
	// light the left edge of every slot area
	for _, p := range cal.ColoPurify.Slots {
		fill(f, white, vision.Box(p.X, p.Y, 3, 64))
	}
	var firstCell []float32
	d := NewColoPurify(cal, classify.Func(func(v []float32) (int, float32) {
		firstCell = append(firstCell, v[0])
		return 0, 1
	}), discardLogger())
	d.Detect(f)
	if len(firstCell) != PurifySlotCount {
		t.Fatalf("expected %d classifications, got %d", PurifySlotCount, len(firstCell))
	}
	for i, v := range firstCell {
		lit := v > 0
		if mirrored := i < 4; lit == mirrored {
			t.Fatalf("slot %d: first cell %v, mirrored %v", i, v, mirrored)
		}
	}
}

func TestColoPurify_ActionBoxes(t *testing.T) {
	cal := DefaultCalibration()
	d := NewColoPurify(cal, classify.Constant{}, discardLogger())
	boxes := d.ActionBoxes()
	if len(boxes) != PurifySlotCount {
		t.Fatalf("got %d boxes", len(boxes))
	}
	if want := vision.Box(195, 133, 32, 32); boxes[0] != want {
		t.Fatalf("slot 0 box %v want %v", boxes[0], want)
	}
}

func pveFrame(cal *Calibration) *vision.FrameBuffer {
	f := newFrame()
	t := &cal.Purify
	paint(f, white, t.LabelI...)
	paint(f, rgb{200, 200, 200}, t.TimerI...)
	// hue 359 exercises the wrapped range
	paint(f, rgb{255, 0, 4}, t.TimerO...)
	return f
}

func TestPurify_DetectsPhaseAndPause(t *testing.T) {
	cal := DefaultCalibration()
	d := NewPurify(cal, classify.Constant{ID: int(PhaseRunning)}, discardLogger())
	f := pveFrame(cal)
	st, ok := d.Detect(f)
	if !ok {
		t.Fatalf("expected purify screen")
	}
	s := st.(*PurifyState)
	if s.Active || s.BurstInCenter || s.Phase != PhaseRunning {
		t.Fatalf("unexpected state %v", s)
	}
	paint(f, white, cal.Purify.Pause...)
	st, _ = d.Detect(f)
	if !st.(*PurifyState).Active {
		t.Fatalf("expected Active with pause button visible")
	}
}

func TestPurify_RejectsBrightLabelOutline(t *testing.T) {
	cal := DefaultCalibration()
	f := pveFrame(cal)
	paint(f, white, cal.Purify.LabelO[0])
	if _, ok := NewPurify(cal, classify.Constant{}, discardLogger()).Detect(f); ok {
		t.Fatalf("expected label gate to reject")
	}
}

func paintButtonStrip(f *vision.FrameBuffer, cal *Calibration, pos ButtonPos, c rgb) {
	t := &cal.Message
	r := t.Buttons[pos]
	fill(f, c, vision.Box(r.Min.X+t.StripInsetX, r.Min.Y+t.StripOffsetY, r.Dx()-2*t.StripInsetX, 1))
}

func TestMessageBox_OkMode(t *testing.T) {
	cal := DefaultCalibration()
	f := newFrame()
	paintButtonStrip(f, cal, ButtonCenter, red)
	d := NewMessageBox(cal, classify.Constant{ID: int(ButtonOk)}, discardLogger())
	st, ok := d.Detect(f)
	if !ok {
		t.Fatalf("expected dialog")
	}
	s := st.(*MessageBoxState)
	if s.Mode != ModeOk {
		t.Fatalf("expected Ok mode, got %v", s.Mode)
	}
	if b := s.Buttons[ButtonCenter]; b.Color != ColorRed || b.Type != ButtonOk || b.Disabled {
		t.Fatalf("unexpected center button %v", b)
	}
	if b := s.Buttons[ButtonCenterTwoLeft]; b.Color != ColorUnknown {
		t.Fatalf("partly covered strip should stay unknown, got %v", b)
	}
}

func TestMessageBox_DisabledCloseButton(t *testing.T) {
	cal := DefaultCalibration()
	f := newFrame()
	paintButtonStrip(f, cal, ButtonCenter, grey150)
	st, ok := NewMessageBox(cal, classify.Constant{ID: int(ButtonClose)}, discardLogger()).Detect(f)
	if !ok {
		t.Fatalf("expected dialog")
	}
	s := st.(*MessageBoxState)
	if s.Mode != ModeClose || s.Buttons[ButtonCenter].Color != ColorWhite || !s.Buttons[ButtonCenter].Disabled {
		t.Fatalf("unexpected state %v", s)
	}
}

func TestMessageBox_NoButtons(t *testing.T) {
	cal := DefaultCalibration()
	calls := 0
	d := NewMessageBox(cal, classify.Func(func([]float32) (int, float32) {
		calls++
		return 0, 0
	}), discardLogger())
	if _, ok := d.Detect(newFrame()); ok {
		t.Fatalf("black frame must not match")
	}
	if calls != 0 {
		t.Fatalf("classifier should not run without a coloured button, ran %d times", calls)
	}
}

func TestModeRow_AnyRecognisedButton(t *testing.T) {
	var buttons [ButtonPosCount]Button
	buttons[ButtonCombatReportRetry] = Button{Type: ButtonNext, Color: ColorSpec}
	buttons[ButtonCombatReportOk] = Button{Type: ButtonOk, Color: ColorRed}
	if !defaultModes()[0].satisfied(&buttons) {
		t.Fatalf("combat report should accept any button at the retry position")
	}
	buttons[ButtonCombatReportRetry] = Button{}
	if defaultModes()[0].satisfied(&buttons) {
		t.Fatalf("missing retry position must not satisfy")
	}
}

func titleFrame(cal *Calibration) *vision.FrameBuffer {
	f := newFrame()
	paint(f, white, cal.Title.White...)
	paint(f, logoBlue, cal.Title.Blue...)
	paint(f, red, cal.Title.Red...)
	return f
}

func TestTitleScreen(t *testing.T) {
	cal := DefaultCalibration()
	d := NewTitleScreen(cal, discardLogger())
	if _, ok := d.Detect(titleFrame(cal)); !ok {
		t.Fatalf("expected title screen")
	}
	f := titleFrame(cal)
	paint(f, white, cal.Title.Black[3])
	if _, ok := d.Detect(f); ok {
		t.Fatalf("lit black point must reject")
	}
	if d.SpecialBox(BoxStartArea).Empty() {
		t.Fatalf("start area missing")
	}
}

func TestDispatcher_Order(t *testing.T) {
	d := DefaultDispatcher(nil, nil, discardLogger())
	want := []ScreenKind{ScreenColoCombat, ScreenColoPurify, ScreenMessageBox, ScreenCombat, ScreenPurify, ScreenTitle}
	got := d.Detectors()
	if len(got) != len(want) {
		t.Fatalf("got %d detectors", len(got))
	}
	for i, k := range want {
		if got[i].Kind() != k {
			t.Fatalf("detector %d is %v, want %v", i, got[i].Kind(), k)
		}
	}
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	cal := DefaultCalibration()
	f := coloCombatFrame(cal)
	paintButtonStrip(f, cal, ButtonCenter, red)

	d := DefaultDispatcher(cal, constModels(0, 0, 0, 0, int(ButtonOk)), discardLogger())
	det, st, ok := d.Detect(f)
	if !ok || det.Kind() != ScreenColoCombat || st.Kind() != ScreenColoCombat {
		t.Fatalf("expected colosseum combat to win, got %v", st)
	}

	msg := NewMessageBox(cal, classify.Constant{ID: int(ButtonOk)}, discardLogger())
	if _, ok := msg.Detect(f); !ok {
		t.Fatalf("the frame should also satisfy the dialog detector")
	}
}

func TestDispatcher_NoMatch(t *testing.T) {
	d := DefaultDispatcher(nil, nil, discardLogger())
	if _, _, ok := d.Detect(nil); ok {
		t.Fatalf("nil frame must not match")
	}
	if _, _, ok := d.Detect(newFrame()); ok {
		t.Fatalf("black frame must not match")
	}
}
