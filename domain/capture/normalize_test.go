package capture

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNormalizeRejectsSmallCapture(t *testing.T) {
	_, err := Normalize(uniformRGBA(320, 600, color.RGBA{A: 255}))
	if !errors.Is(err, ErrWindowTooSmall) {
		t.Fatalf("expected ErrWindowTooSmall, got %v", err)
	}
	if _, err := Normalize(nil); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestNormalizeLogicalSizeKeepsPixels(t *testing.T) {
	img := uniformRGBA(338, 600, color.RGBA{A: 255})
	img.SetRGBA(5, 7, color.RGBA{R: 200, G: 10, B: 40, A: 255})
	fb, err := Normalize(img)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	px := fb.At(5, 7)
	if px.R != 200 || px.G != 10 || px.B != 40 {
		t.Fatalf("pixel changed: %v", px)
	}
}

func TestNormalizeDownscalesLargerCapture(t *testing.T) {
	fb, err := Normalize(uniformRGBA(676, 1200, color.RGBA{R: 10, G: 200, B: 30, A: 255}))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if fb.Width != 338 || fb.Height != 600 {
		t.Fatalf("unexpected size %dx%d", fb.Width, fb.Height)
	}
	px := fb.At(169, 300)
	if px.R != 10 || px.G != 200 || px.B != 30 {
		t.Fatalf("uniform colour not preserved: %v", px)
	}
}

func TestNormalizeConvertsOtherImageTypes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 338, 600))
	img.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	fb, err := Normalize(img)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if px := fb.At(1, 1); px.R != 1 || px.G != 2 || px.B != 3 {
		t.Fatalf("pixel mismatch: %v", px)
	}
}
