package vision

import "testing"

func TestColorSample_Derivation(t *testing.T) {
	cases := []struct {
		name             string
		r, g, b          uint8
		hue, sat, val, m int
	}{
		{"red", 255, 0, 0, 0, 100, 50, 54},
		{"green", 0, 255, 0, 120, 100, 50, 182},
		{"blue", 0, 0, 255, 240, 100, 50, 18},
		{"grey", 128, 128, 128, 0, 0, 50, 128},
		{"white", 255, 255, 255, 0, 0, 100, 255},
		{"black", 0, 0, 0, 0, 0, 0, 0},
	}
	for _, tc := range cases {
		px := NewColorSample(tc.r, tc.g, tc.b)
		if px.Hue() != tc.hue || px.Saturation() != tc.sat || px.Value() != tc.val || px.Mono() != tc.m {
			t.Fatalf("%s: got %v want H:%d S:%d V:%d M:%d", tc.name, px, tc.hue, tc.sat, tc.val, tc.m)
		}
	}
}

func TestColorSample_HueNearSeam(t *testing.T) {
	low := NewColorSample(255, 4, 0)
	high := NewColorSample(255, 0, 4)
	if low.Hue() != 1 {
		t.Fatalf("expected hue 1, got %d", low.Hue())
	}
	if high.Hue() != 359 {
		t.Fatalf("expected hue 359, got %d", high.Hue())
	}
}

func TestRGBFromHSV_RoundTripsPrimaries(t *testing.T) {
	r, g, b := RGBFromHSV(120, 1, 1)
	if r != 0 || g != 255 || b != 0 {
		t.Fatalf("expected pure green, got %d,%d,%d", r, g, b)
	}
	r, g, b = RGBFromHSV(-120, 1, 1)
	if r != 0 || g != 0 || b != 255 {
		t.Fatalf("expected pure blue for -120, got %d,%d,%d", r, g, b)
	}
}
