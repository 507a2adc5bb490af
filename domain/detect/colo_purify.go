package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// ColoPurify recognises the colosseum purify screen.
type ColoPurify struct {
	base
	slots classify.Classifier
	boxes []image.Rectangle
}

func NewColoPurify(cal *Calibration, slots classify.Classifier, logger *slog.Logger) *ColoPurify {
	d := &ColoPurify{base: newBase(cal, logger, "ColoPurify"), slots: slots}
	for _, p := range d.cal.ColoPurify.Slots {
		d.boxes = append(d.boxes, box(p.X+10, p.Y+35, 32, 32))
	}
	return d
}

func (*ColoPurify) Kind() ScreenKind { return ScreenColoPurify }

func (d *ColoPurify) ActionBoxes() []image.Rectangle { return d.boxes }

// SpecialBox covers the fixed targets. The off-center burst target depends
// on the marker position, see ColoPurifyState.BurstReadyBox.
func (d *ColoPurify) SpecialBox(b SpecialBox) image.Rectangle {
	switch b {
	case BoxBurstCenter:
		return d.cal.ColoPurify.BurstAction
	case BoxReturnToBattle:
		return d.cal.ColoPurify.ReturnToBattle
	}
	return image.Rectangle{}
}

func (d *ColoPurify) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	if !d.hasChatBox(f) || !d.hasPurifyPlate(f) {
		return nil, false
	}
	t := &d.cal.ColoPurify
	s := &ColoPurifyState{}
	sp := scanBar(f, t.SPBar, d.cal.Combat.SPFull, d.cal.Combat.SPEmpty, false)
	s.SP = SPBar{Valid: sp.Valid, Fill: sp.Fill}
	d.scanBurst(f, s)
	for i := range s.Slots {
		id, _ := d.slots.Classify(d.slotFeatures(f, i))
		s.Slots[i] = purifySlotFromID(id)
	}
	d.trace("screen detected", "sp", s.SP.Fill, "burst", s.Burst, "slots", s.Slots)
	return s, true
}

func (d *ColoPurify) hasPurifyPlate(f *vision.FrameBuffer) bool {
	t := &d.cal.ColoPurify
	if !vision.MatchAll(f, t.PlateInnerRule, 0, 0, t.PlateInner...) ||
		!vision.MatchAll(f, t.PlateOuterRule, 0, 0, t.PlateOuter...) {
		d.trace("purify plate gate failed")
		return false
	}
	strip := t.PlateStrip
	ref := f.At(strip.Min.X, strip.Min.Y)
	maxH, maxM := 0, 0
	for idx := 1; idx < strip.Dx(); idx++ {
		px := f.At(strip.Min.X+idx, strip.Min.Y)
		maxH = max(maxH, absInt(px.Hue()-ref.Hue()))
		maxM = max(maxM, absInt(px.Mono()-ref.Mono()))
	}
	if maxH > t.PlateHueDiff || maxM > t.PlateMonoDiff {
		d.trace("purify plate strip not uniform", "hue_diff", maxH, "mono_diff", maxM)
		return false
	}
	return true
}

func (d *ColoPurify) scanBurst(f *vision.FrameBuffer, s *ColoPurifyState) {
	t := &d.cal.ColoPurify
	if vision.AverageMono(f, t.BurstActive) < t.BurstActiveMono {
		s.Burst = BurstActive
		return
	}
	if vision.CountFillPct(f, t.BurstCenter, t.BurstCenterRule) > 0.75 {
		s.Burst = BurstReadyAndCenter
		s.MarkerPctX, s.MarkerPctY = 0.5, 0.5
		return
	}
	area := t.BurstArea
	for iy := 0; iy < area.Dy(); iy++ {
		for ix := 0; ix < area.Dx(); ix++ {
			x, y := area.Min.X+ix, area.Min.Y+iy
			if !t.BurstMarker.Matches(f.At(x, y)) {
				continue
			}
			if vision.MatchAll(f, t.BurstMarker, x, y, t.MarkerInner...) &&
				vision.MatchNone(f, t.BurstMarker, x, y, t.MarkerOuter...) {
				s.Burst = BurstReady
				s.MarkerPctX = float32(ix) / float32(area.Dx())
				s.MarkerPctY = float32(iy) / float32(area.Dy())
				s.MarkerPos = image.Pt(x, y)
				return
			}
		}
	}
}

// slotFeatures reduces the 48x64 slot area to 16x16. The first four slots
// sit on the right half of the ring and are mirrored to face the same way.
func (d *ColoPurify) slotFeatures(f *vision.FrameBuffer, idx int) []float32 {
	t := &d.cal.ColoPurify
	spec := t.SlotFeatures.Offset(t.Slots[idx])
	spec.Mirror = idx < 4
	return vision.ExtractRegion(f, spec)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ Detector = (*ColoPurify)(nil)
