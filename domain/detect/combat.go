package detect

import (
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// Combat recognises the regular (non colosseum) combat screen by its
// reward chest row.
type Combat struct {
	combatScanner
}

func NewCombat(cal *Calibration, weapon classify.Classifier, logger *slog.Logger) *Combat {
	return &Combat{combatScanner{base: newBase(cal, logger, "Combat"), weapon: weapon}}
}

func (*Combat) Kind() ScreenKind { return ScreenCombat }

func (d *Combat) SpecialBox(b SpecialBox) image.Rectangle {
	if b == BoxBigButton {
		return d.cal.Combat.BigButton
	}
	return image.Rectangle{}
}

func (d *Combat) Detect(f *vision.FrameBuffer) (ScreenState, bool) {
	if !d.hasChatBox(f) || !d.hasRewardChests(f) {
		return nil, false
	}
	s := &CombatState{}
	s.SP = d.scanSP(f)
	d.scanSlots(f, &s.CombatBase)
	if !s.Slots[0].Valid && !s.Slots[SlotCount-1].Valid {
		if samples := d.bigButtonSamples(f); samples != nil {
			for _, px := range samples {
				if d.cal.Combat.Reload.Matches(px) {
					s.ReloadActive = true
					break
				}
			}
		}
	}
	d.trace("screen detected", "sp", s.SP.Fill, "reload", s.ReloadActive)
	return s, true
}

func (d *Combat) hasRewardChests(f *vision.FrameBuffer) bool {
	t := &d.cal.Chest
	hG, sG := vision.AverageHueSat(f, t.Area.Add(t.Gold))
	hS, sS := vision.AverageHueSat(f, t.Area.Add(t.Silver))
	hB, sB := vision.AverageHueSat(f, t.Area.Add(t.Bronze))

	gold := hG > 25 && hG < 45 && sG > 40 && sG < 60
	silver := hS > 25 && hS < 45 && sS > -1 && sS < 30
	bronze := hB > 5 && hB < 30 && sB > 30 && sB < 60
	ok := gold && silver && bronze
	if !ok {
		d.trace("reward chest gate failed", "gold", gold, "silver", silver, "bronze", bronze)
	}
	return ok
}

var _ Detector = (*Combat)(nil)
