package vision

import (
	"errors"
	"image"
	"testing"
)

func TestFrameBuffer_RowMajorAndCache(t *testing.T) {
	f := NewFrameBuffer(3, 2)
	f.Set(2, 1, 0, 255, 0)
	if got := f.At(2, 1).Hue(); got != 120 {
		t.Fatalf("expected hue 120, got %d", got)
	}
	if f.At(2, 1) != f.At(2, 1) {
		t.Fatalf("At should address the same sample")
	}
	f.Set(2, 1, 0, 0, 255)
	if got := f.At(2, 1).Hue(); got != 240 {
		t.Fatalf("Set must clear the cached derivation, got hue %d", got)
	}
	// x past the right edge addresses the next row
	f.Set(0, 1, 255, 255, 255)
	if f.At(3, 0).Mono() != 255 {
		t.Fatalf("expected linear addressing")
	}
}

func TestFrameBuffer_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	f := NewFrameBuffer(2, 2)
	f.At(0, 2)
}

func TestFromLogicalRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, LogicalWidth, LogicalHeight))
	img.Pix[0], img.Pix[1], img.Pix[2] = 10, 20, 30
	f, err := FromLogicalRGBA(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	px := f.At(0, 0)
	if px.R != 10 || px.G != 20 || px.B != 30 {
		t.Fatalf("unexpected pixel %v", px)
	}
	if _, err := FromLogicalRGBA(image.NewRGBA(image.Rect(0, 0, 10, 10))); !errors.Is(err, ErrFrameSize) {
		t.Fatalf("expected ErrFrameSize, got %v", err)
	}
}

func TestCountFillPct_InclusiveEdges(t *testing.T) {
	f := NewFrameBuffer(4, 4)
	f.Set(0, 0, 255, 255, 255)
	f.Set(2, 2, 255, 255, 255)
	f.Set(2, 0, 255, 255, 255)
	f.Set(3, 3, 255, 255, 255)
	got := CountFillPct(f, Box(0, 0, 2, 2), Mono(200, 255))
	if got != float32(3)/9 {
		t.Fatalf("expected 3/9, got %v", got)
	}
}

func TestAverages(t *testing.T) {
	f := NewFrameBuffer(4, 1)
	f.Set(0, 0, 200, 200, 200)
	f.Set(1, 0, 100, 100, 100)
	if got := AverageMono(f, Box(0, 0, 2, 1)); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
	c := AverageColor(f, Box(0, 0, 2, 1))
	if c.R != 150 || c.G != 150 || c.B != 150 {
		t.Fatalf("unexpected average %v", c)
	}
	lo, hi := MonoRange(f, Box(0, 0, 1, 0))
	if lo != 100 || hi != 200 {
		t.Fatalf("unexpected range %d..%d", lo, hi)
	}
}
