package vision

import (
	"fmt"
	"math"
)

// ColorSample is one frame pixel. Hue, saturation, value and monochrome are
// derived from the raw channels on first read and cached.
type ColorSample struct {
	R, G, B uint8

	derived bool
	hue     int16
	sat     uint8
	val     uint8
	mono    uint8
}

// NewColorSample returns a sample for the given channels.
func NewColorSample(r, g, b uint8) ColorSample {
	return ColorSample{R: r, G: g, B: b}
}

// Hue is in degrees, 0..360. Rounding can produce exactly 360.
func (c *ColorSample) Hue() int {
	c.derive()
	return int(c.hue)
}

// Saturation is the HSL saturation scaled to 0..100.
func (c *ColorSample) Saturation() int {
	c.derive()
	return int(c.sat)
}

// Value is the HSL lightness ((max+min)/2) scaled to 0..100.
func (c *ColorSample) Value() int {
	c.derive()
	return int(c.val)
}

// Mono is the luma weighted grey level, 0..255.
func (c *ColorSample) Mono() int {
	c.derive()
	return int(c.mono)
}

func (c *ColorSample) derive() {
	if c.derived {
		return
	}
	h, s, v := hslFromRGB(c.R, c.G, c.B)
	c.hue = int16(math.RoundToEven(float64(h)))
	c.sat = uint8(math.RoundToEven(float64(s) * 100))
	c.val = uint8(math.RoundToEven(float64(v) * 100))
	c.mono = monoFromRGB(c.R, c.G, c.B)
	c.derived = true
}

func (c ColorSample) String() string {
	return fmt.Sprintf("H:%d, S:%d, V:%d, M:%d", c.Hue(), c.Saturation(), c.Value(), c.Mono())
}

func monoFromRGB(r, g, b uint8) uint8 {
	m := 0.2125*float64(r) + 0.7154*float64(g) + 0.0721*float64(b)
	return uint8(math.RoundToEven(m))
}

// hslFromRGB works in float32 so rounding at the bucket edges matches the
// calibration data.
func hslFromRGB(r8, g8, b8 uint8) (hue, sat, light float32) {
	r := float32(r8) / 255
	g := float32(g8) / 255
	b := float32(b8) / 255
	maxC, minC := r, r
	if g > maxC {
		maxC = g
	}
	if b > maxC {
		maxC = b
	}
	if g < minC {
		minC = g
	}
	if b < minC {
		minC = b
	}
	light = (maxC + minC) / 2
	if r8 == g8 && g8 == b8 {
		return 0, 0, light
	}
	delta := maxC - minC
	switch {
	case r == maxC:
		hue = (g - b) / delta
	case g == maxC:
		hue = 2 + (b-r)/delta
	default:
		hue = 4 + (r-g)/delta
	}
	hue *= 60
	if hue < 0 {
		hue += 360
	}
	if light <= 0.5 {
		sat = delta / (maxC + minC)
	} else {
		sat = delta / (2 - maxC - minC)
	}
	return hue, sat, light
}

// RGBFromHSV converts hue (degrees) and saturation/value (0..1) back to
// channels. It is used to paint fixtures and overlays.
func RGBFromHSV(h, s, v float64) (r, g, b uint8) {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	var rf, gf, bf float64
	switch {
	case v <= 0:
	case s <= 0:
		rf, gf, bf = v, v, v
	default:
		hf := h / 60
		i := int(math.Floor(hf))
		f := hf - float64(i)
		p := v * (1 - s)
		q := v * (1 - s*f)
		t := v * (1 - s*(1-f))
		switch i {
		case 0, 6:
			rf, gf, bf = v, t, p
		case 1:
			rf, gf, bf = q, v, p
		case 2:
			rf, gf, bf = p, v, t
		case 3:
			rf, gf, bf = p, q, v
		case 4:
			rf, gf, bf = t, p, v
		default:
			rf, gf, bf = v, p, q
		}
	}
	return clampByte(rf * 255), clampByte(gf * 255), clampByte(bf * 255)
}

func clampByte(f float64) uint8 {
	n := int(f)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
