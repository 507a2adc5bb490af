package vision

import "testing"

func TestExtractRegion_LengthAndRange(t *testing.T) {
	f := NewFrameBuffer(8, 8)
	f.Fill(Box(0, 0, 8, 8), 255, 255, 255)
	f.Fill(Box(0, 0, 2, 2), 0, 0, 0)
	spec := FeatureSpec{Area: Box(0, 0, 8, 8), GridW: 4, GridH: 4, Value: MonoLevel(16)}
	got := ExtractRegion(f, spec)
	if len(got) != spec.Len() || len(got) != 16 {
		t.Fatalf("expected 16 features, got %d", len(got))
	}
	for i, v := range got {
		if v < 0 || v > 1 {
			t.Fatalf("feature %d out of range: %v", i, v)
		}
	}
	if got[0] != 0 {
		t.Fatalf("expected black cell, got %v", got[0])
	}
	if got[15] != 0.9375 {
		t.Fatalf("expected 15/16 for white, got %v", got[15])
	}
}

func TestExtractRegion_Mirror(t *testing.T) {
	f := NewFrameBuffer(4, 1)
	f.Set(0, 0, 255, 255, 255)
	spec := FeatureSpec{Area: Box(0, 0, 4, 1), GridW: 4, GridH: 1, Value: MonoLevel(16)}
	plain := ExtractRegion(f, spec)
	spec.Mirror = true
	mirrored := ExtractRegion(f, spec)
	if plain[0] != 0.9375 || plain[3] != 0 {
		t.Fatalf("unexpected plain features %v", plain)
	}
	if mirrored[3] != 0.9375 || mirrored[0] != 0 {
		t.Fatalf("unexpected mirrored features %v", mirrored)
	}
}

func TestExtractRegion_UnevenGrid(t *testing.T) {
	f := NewFrameBuffer(12, 12)
	f.Fill(Box(0, 0, 12, 12), 255, 255, 255)
	cases := []struct{ w, h, g int }{{10, 10, 3}, {7, 5, 4}, {5, 5, 2}, {3, 3, 3}, {11, 4, 3}}
	for _, tc := range cases {
		spec := FeatureSpec{Area: Box(1, 1, tc.w, tc.h), GridW: tc.g, GridH: tc.g, Value: MonoLevel(16)}
		got := ExtractRegion(f, spec)
		if len(got) != tc.g*tc.g {
			t.Fatalf("%dx%d grid %d: expected %d features, got %d", tc.w, tc.h, tc.g, tc.g*tc.g, len(got))
		}
		for i, v := range got {
			if v < 0 || v > 1 {
				t.Fatalf("%dx%d grid %d: feature %d out of range: %v", tc.w, tc.h, tc.g, i, v)
			}
		}
	}
}

func TestExtractRegion_UnevenCellsAverageOwnPixels(t *testing.T) {
	// columns 0..3 land in cell 0, 4..6 in cell 1, 7..9 in cell 2
	f := NewFrameBuffer(10, 10)
	f.Fill(Box(0, 0, 10, 10), 255, 255, 255)
	f.Fill(Box(0, 0, 2, 10), 0, 0, 0)
	got := ExtractRegion(f, FeatureSpec{Area: Box(0, 0, 10, 10), GridW: 3, GridH: 3, Value: MonoLevel(16)})
	for row := 0; row < 3; row++ {
		if want := float32(0.9375) / 2; got[row*3] != want {
			t.Fatalf("row %d cell 0: got %v want %v", row, got[row*3], want)
		}
		if got[row*3+1] != 0.9375 || got[row*3+2] != 0.9375 {
			t.Fatalf("row %d: white cells got %v %v", row, got[row*3+1], got[row*3+2])
		}
	}
}

func TestExtractRegion_PanicsOnEmptyGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	ExtractRegion(NewFrameBuffer(5, 5), FeatureSpec{Area: Box(0, 0, 5, 5), GridW: 0, GridH: 2})
}

func TestHueMonoLevel(t *testing.T) {
	px := NewColorSample(0, 255, 0)
	// hue 120/22 = 5, mono 182/16 = 11
	want := float32(5)/256 + float32(11)/16
	if got := HueMonoLevel(16)(&px); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
