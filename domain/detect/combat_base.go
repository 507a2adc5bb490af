package detect

import (
	"image"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// combatScanner extracts the action bar shared by both combat screens.
type combatScanner struct {
	base
	weapon classify.Classifier
}

func (c *combatScanner) ActionBoxes() []image.Rectangle {
	return c.cal.Combat.Slots[:]
}

// scanSP walks the bar strip including the pixel at X+Width.
func (c *combatScanner) scanSP(f *vision.FrameBuffer) SPBar {
	t := &c.cal.Combat
	return scanBar(f, t.SPBar, t.SPFull, t.SPEmpty, true)
}

// scanBar classifies every strip pixel as full or empty. Fill counts the
// strip up to and including the last full pixel, over the strip width, so a
// strip full over [0,n) reads n/width.
func scanBar(f *vision.FrameBuffer, strip image.Rectangle, full, empty vision.MatchRule, inclusive bool) SPBar {
	width := strip.Dx()
	last := width - 1
	if inclusive {
		last = width
	}
	numFull, numEmpty, lastFull := 0, 0, -1
	for idx := 0; idx <= last; idx++ {
		px := f.At(strip.Min.X+idx, strip.Min.Y)
		if full.Matches(px) {
			numFull++
			lastFull = idx
		}
		if empty.Matches(px) {
			numEmpty++
		}
	}
	matched := float32(numFull+numEmpty) / float32(width)
	fill := float32(lastFull+1) / float32(width)
	return SPBar{
		Valid:      matched > 0.75,
		Obstructed: matched < 0.95,
		Fill:       min(max(fill, 0), 1),
	}
}

func (c *combatScanner) scanSlots(f *vision.FrameBuffer, out *CombatBase) {
	for i := range out.Slots {
		out.Slots[i] = c.scanSlot(f, i)
	}
}

func (c *combatScanner) scanSlot(f *vision.FrameBuffer, idx int) ActionSlot {
	t := &c.cal.Combat
	slot := t.Slots[idx]
	var a ActionSlot
	avail := t.Avail.Add(slot.Min)
	for y := avail.Min.Y; y < avail.Max.Y && !a.Valid; y++ {
		for x := avail.Min.X; x < avail.Max.X; x++ {
			if t.AvailRule.Matches(f.At(x, y)) {
				a.Valid = true
				break
			}
		}
	}
	if a.Valid {
		id, _ := c.weapon.Classify(c.weaponFeatures(f, idx))
		a.Weapon = weaponFromID(id)
		a.Element = c.scanElement(f, slot.Min)
		a.HasBoost = c.hasBoost(f, slot.Min)
	}
	c.trace("action slot", "slot", idx, "valid", a.Valid, "class", a.Weapon, "elem", a.Element, "boost", a.HasBoost)
	return a
}

// weaponFeatures is the 10x10 quantised monochrome icon patch.
func (c *combatScanner) weaponFeatures(f *vision.FrameBuffer, idx int) []float32 {
	t := &c.cal.Combat
	spec := vision.FeatureSpec{Area: t.Icon, GridW: t.Icon.Dx(), GridH: t.Icon.Dy(), Value: vision.MonoLevel(16)}
	return vision.ExtractRegion(f, spec.Offset(t.Slots[idx].Min))
}

type elementVote struct{ r, g, b, total int }

func (v *elementVote) add(px *vision.ColorSample, monoLimit int) {
	v.total++
	if px.Mono() >= monoLimit {
		return
	}
	h := px.Hue()
	if h > 345 || h < 45 {
		v.r++
	}
	if h > 100 && h < 160 {
		v.g++
	}
	if h > 150 && h < 210 {
		v.b++
	}
}

func (v elementVote) winner() Element {
	thr := v.total * 30 / 100
	switch {
	case v.r > thr && v.r > v.g && v.r > v.b:
		return ElementFire
	case v.g > thr && v.g > v.r && v.g > v.b:
		return ElementWind
	case v.b > thr && v.b > v.r && v.b > v.g:
		return ElementWater
	}
	return ElementUnknown
}

// scanElement votes over the small colour clusters around the icon and
// falls back to the whole icon when the clusters are inconclusive.
func (c *combatScanner) scanElement(f *vision.FrameBuffer, slot image.Point) Element {
	t := &c.cal.Combat
	var vote elementVote
	for _, r := range t.Elements {
		voteArea(f, r.Add(slot), t.ElementMono, &vote)
	}
	if e := vote.winner(); e != ElementUnknown {
		return e
	}
	var fallback elementVote
	voteArea(f, t.ElementArea.Add(slot), t.ElementMono, &fallback)
	return fallback.winner()
}

func voteArea(f *vision.FrameBuffer, r image.Rectangle, monoLimit int, v *elementVote) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v.add(f.At(x, y), monoLimit)
		}
	}
}

// hasBoost looks for the rainbow boost frame: hue rising with y along the
// inner ring, at most one bright highlight, and a dark outer ring.
func (c *combatScanner) hasBoost(f *vision.FrameBuffer, slot image.Point) bool {
	t := &c.cal.Combat
	if !vision.MatchNone(f, t.BoostOuterRule, slot.X, slot.Y, t.BoostOuter...) {
		return false
	}
	drops, wildcards := 0, 0
	prev := -1
	for _, p := range t.BoostInner {
		px := f.At(slot.X+p.X, slot.Y+p.Y)
		if px.Mono() >= t.BoostWildcard {
			wildcards++
			if wildcards > 1 {
				return false
			}
			continue
		}
		h := px.Hue()
		if prev >= 0 && h <= prev {
			drops++
		}
		prev = h
	}
	return drops <= t.BoostMaxDrops
}

// bigButtonSamples returns the six button samples when they agree in hue.
func (c *combatScanner) bigButtonSamples(f *vision.FrameBuffer) []*vision.ColorSample {
	t := &c.cal.Combat
	samples := make([]*vision.ColorSample, len(t.BigButtonSamples))
	maxDiff := 0
	for i, p := range t.BigButtonSamples {
		samples[i] = f.At(p.X, p.Y)
		if i > 0 {
			d := samples[i].Hue() - samples[0].Hue()
			if d < 0 {
				d = -d
			}
			maxDiff = max(maxDiff, d)
		}
	}
	if maxDiff >= t.BigButtonHueDiff {
		return nil
	}
	return samples
}
