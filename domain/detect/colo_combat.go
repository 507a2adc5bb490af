package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// ColoCombat recognises the colosseum combat screen.
type ColoCombat struct {
	combatScanner
	demon classify.Classifier
}

// NewColoCombat builds the detector. weapon classifies slot icons and demon
// classifies the active demon banner.
func NewColoCombat(cal *Calibration, weapon, demon classify.Classifier, logger *slog.Logger) *ColoCombat {
	return &ColoCombat{
		combatScanner: combatScanner{base: newBase(cal, logger, "ColoCombat"), weapon: weapon},
		demon:         demon,
	}
}

func (*ColoCombat) Kind() ScreenKind { return ScreenColoCombat }

func (d *ColoCombat) SpecialBox(b SpecialBox) image.Rectangle {
	switch b {
	case BoxBigButton:
		return d.cal.Combat.BigButton
	case BoxEnterPurify:
		return d.cal.Colo.EnterPurify
	}
	return image.Rectangle{}
}

func (d *ColoCombat) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	if !d.hasChatBox(f) || !d.hasLifeforceMeter(f) {
		return nil, false
	}
	s := &ColoCombatState{}
	s.SP = d.scanSP(f)
	d.scanSlots(f, &s.CombatBase)
	if !s.Slots[0].Valid && !s.Slots[SlotCount-1].Valid {
		s.Special = d.scanSpecialAction(f)
	}
	s.Demon, s.DemonType = d.scanDemon(f)
	d.trace("screen detected", "sp", s.SP.Fill, "sp_valid", s.SP.Valid, "special", s.Special, "demon", s.Demon)
	return s, true
}

// hasLifeforceMeter needs at least 5 of 6 meter points red or green with
// fewer than 4 colour changes along the meter.
func (d *ColoCombat) hasLifeforceMeter(f *vision.FrameBuffer) bool {
	t := &d.cal.Colo
	matching, changes := 0, 0
	var wasR, wasG bool
	for i, p := range t.Lifeforce {
		px := f.At(p.X, p.Y)
		isR := t.LifeforceR.Matches(px)
		isG := !isR && t.LifeforceG.Matches(px)
		if i > 0 && isR != wasR {
			changes++
		}
		if i > 0 && isG != wasG {
			changes++
		}
		if isR || isG {
			matching++
		}
		wasR, wasG = isR, isG
	}
	ok := matching >= 5 && changes < 4
	if !ok {
		d.trace("lifeforce gate failed", "matching", matching, "changes", changes)
	}
	return ok
}

func (d *ColoCombat) scanSpecialAction(f *vision.FrameBuffer) SpecialAction {
	samples := d.bigButtonSamples(f)
	if samples == nil {
		return SpecialNone
	}
	var reload, revive, ship int
	for _, px := range samples {
		if d.cal.Combat.Reload.Matches(px) {
			reload++
		}
		if d.cal.Colo.Revive.Matches(px) {
			revive++
		}
		if d.cal.Colo.Ship.Matches(px) {
			ship++
		}
	}
	switch {
	case reload > revive && reload > ship:
		return SpecialReload
	case revive > reload && revive > ship:
		return SpecialRevive
	case ship > revive && ship > reload:
		return SpecialAttackShip
	}
	return SpecialNone
}

func (d *ColoCombat) scanDemon(f *vision.FrameBuffer) (DemonState, WeaponClass) {
	t := &d.cal.Colo
	l, r := t.DemonLeft, t.DemonRight
	active := vision.MatchAll(f, t.DemonLI, l.X, l.Y, t.DemonActiveI...) &&
		vision.MatchAll(f, t.DemonLO, l.X, l.Y, t.DemonActiveO...) &&
		vision.MatchAll(f, t.DemonRI, r.X, r.Y, t.DemonActiveI...) &&
		vision.MatchAll(f, t.DemonRO, r.X, r.Y, t.DemonActiveO...)
	if active {
		id, _ := d.demon.Classify(d.demonFeatures(f))
		return DemonActive, weaponFromID(id)
	}
	if vision.MatchAll(f, t.DemonPrepIR, 0, 0, t.DemonPrepI...) &&
		vision.MatchAll(f, t.DemonPrepOR, 0, 0, t.DemonPrepO...) {
		return DemonPreparing, WeaponUnknown
	}
	return DemonNone, WeaponUnknown
}

func (d *ColoCombat) demonFeatures(f *vision.FrameBuffer) []float32 {
	area := d.cal.Colo.DemonType
	return vision.ExtractRegion(f, vision.FeatureSpec{Area: area, GridW: area.Dx(), GridH: area.Dy(), Value: vision.MonoLevel(16)})
}

var _ Detector = (*ColoCombat)(nil)
