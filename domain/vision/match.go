package vision

import "fmt"

// MatchRule is a closed-interval test over a sample's derived colour.
type MatchRule interface {
	Matches(px *ColorSample) bool
	String() string
}

// MonoRule matches on monochrome only.
type MonoRule struct {
	Min, Max uint8
}

// Mono returns a monochrome range rule.
func Mono(lo, hi uint8) MonoRule { return MonoRule{Min: lo, Max: hi} }

func (r MonoRule) Matches(px *ColorSample) bool {
	m := px.Mono()
	return m >= int(r.Min) && m <= int(r.Max)
}

func (r MonoRule) String() string { return fmt.Sprintf("Mono:%d..%d", r.Min, r.Max) }

// HueMonoRule requires both the monochrome and the hue range.
type HueMonoRule struct {
	HueMin, HueMax   int16
	MonoMin, MonoMax uint8
}

// HueMono returns a hue plus monochrome rule. A negative hueMin wraps across 0.
func HueMono(hueMin, hueMax int16, monoMin, monoMax uint8) HueMonoRule {
	return HueMonoRule{HueMin: hueMin, HueMax: hueMax, MonoMin: monoMin, MonoMax: monoMax}
}

func (r HueMonoRule) Matches(px *ColorSample) bool {
	m := px.Mono()
	if m < int(r.MonoMin) || m > int(r.MonoMax) {
		return false
	}
	h := wrapHue(px.Hue(), r.HueMin)
	return h >= int(r.HueMin) && h <= int(r.HueMax)
}

func (r HueMonoRule) String() string {
	return fmt.Sprintf("Hue:%d..%d, Mono:%d..%d", r.HueMin, r.HueMax, r.MonoMin, r.MonoMax)
}

// HSVRule matches hue, saturation and value ranges.
type HSVRule struct {
	HueMin, HueMax int16
	SatMin, SatMax uint8
	ValMin, ValMax uint8
}

// HSV returns a hue/saturation/value rule. A negative hueMin wraps across 0.
func HSV(hueMin, hueMax int16, satMin, satMax, valMin, valMax uint8) HSVRule {
	return HSVRule{HueMin: hueMin, HueMax: hueMax, SatMin: satMin, SatMax: satMax, ValMin: valMin, ValMax: valMax}
}

func (r HSVRule) Matches(px *ColorSample) bool {
	return r.MatchesHSV(px.Hue(), px.Saturation(), px.Value())
}

// MatchesHSV applies the rule to already derived components, e.g. an averaged colour.
func (r HSVRule) MatchesHSV(hue, sat, val int) bool {
	h := wrapHue(hue, r.HueMin)
	return h >= int(r.HueMin) && h <= int(r.HueMax) &&
		sat >= int(r.SatMin) && sat <= int(r.SatMax) &&
		val >= int(r.ValMin) && val <= int(r.ValMax)
}

func (r HSVRule) String() string {
	return fmt.Sprintf("Hue:%d..%d, Saturation:%d..%d, Value:%d..%d",
		r.HueMin, r.HueMax, r.SatMin, r.SatMax, r.ValMin, r.ValMax)
}

// wrapHue maps hues above 200 into the negative range when the rule
// straddles the 0/360 seam.
func wrapHue(hue int, min int16) int {
	if min < 0 && hue > 200 {
		return hue - 360
	}
	return hue
}

// MatchAll reports whether every point of pts, offset by (dx,dy), matches rule.
func MatchAll(f *FrameBuffer, rule MatchRule, dx, dy int, pts ...Point) bool {
	for _, p := range pts {
		if !rule.Matches(f.At(p.X+dx, p.Y+dy)) {
			return false
		}
	}
	return true
}

// MatchNone reports whether no point of pts, offset by (dx,dy), matches rule.
func MatchNone(f *FrameBuffer, rule MatchRule, dx, dy int, pts ...Point) bool {
	for _, p := range pts {
		if rule.Matches(f.At(p.X+dx, p.Y+dy)) {
			return false
		}
	}
	return true
}

// MatchAny reports whether at least one point matches rule.
func MatchAny(f *FrameBuffer, rule MatchRule, pts ...Point) bool {
	for _, p := range pts {
		if rule.Matches(f.At(p.X, p.Y)) {
			return true
		}
	}
	return false
}
