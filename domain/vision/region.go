package vision

import "image"

// CountFillPct returns the share of pixels in rect matching rule. The scan
// includes the right and bottom edges, so the pixel total is (w+1)*(h+1).
func CountFillPct(f *FrameBuffer, rect image.Rectangle, rule MatchRule) float32 {
	total := (rect.Dx() + 1) * (rect.Dy() + 1)
	matched := 0
	for y := rect.Min.Y; y <= rect.Max.Y; y++ {
		for x := rect.Min.X; x <= rect.Max.X; x++ {
			if rule.Matches(f.At(x, y)) {
				matched++
			}
		}
	}
	return float32(matched) / float32(total)
}

// AverageMono averages the monochrome level over rect (right/bottom exclusive).
func AverageMono(f *FrameBuffer, rect image.Rectangle) float32 {
	n := rect.Dx() * rect.Dy()
	if n <= 0 {
		return 0
	}
	var acc float32
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			acc += float32(f.At(x, y).Mono())
		}
	}
	return acc / float32(n)
}

// AverageHueSat averages hue and saturation over rect with integer truncation.
func AverageHueSat(f *FrameBuffer, rect image.Rectangle) (hue, sat int) {
	n := rect.Dx() * rect.Dy()
	if n <= 0 {
		return 0, 0
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := f.At(x, y)
			hue += px.Hue()
			sat += px.Saturation()
		}
	}
	return hue / n, sat / n
}

// AverageColor averages the raw channels over rect and returns a sample
// built from the mean colour.
func AverageColor(f *FrameBuffer, rect image.Rectangle) ColorSample {
	n := rect.Dx() * rect.Dy()
	if n <= 0 {
		return ColorSample{}
	}
	var r, g, b int
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			px := f.At(x, y)
			r += int(px.R)
			g += int(px.G)
			b += int(px.B)
		}
	}
	return NewColorSample(uint8(r/n), uint8(g/n), uint8(b/n))
}

// MonoRange returns the min and max monochrome in rect (inclusive edges).
func MonoRange(f *FrameBuffer, rect image.Rectangle) (lo, hi int) {
	lo, hi = 255, 0
	for y := rect.Min.Y; y <= rect.Max.Y; y++ {
		for x := rect.Min.X; x <= rect.Max.X; x++ {
			m := f.At(x, y).Mono()
			lo = min(lo, m)
			hi = max(hi, m)
		}
	}
	return lo, hi
}
