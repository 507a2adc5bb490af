package images

import (
	"image"
	"image/color"
	"image/draw"
)

// Crop copies r (clamped to the frame, padded by pad pixels) into a new
// image at origin. It returns nil when nothing of r is inside the frame.
func Crop(frame *image.RGBA, r image.Rectangle, pad int) *image.RGBA {
	if frame == nil {
		return nil
	}
	r = r.Inset(-pad).Intersect(frame.Bounds())
	if r.Empty() {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), frame, r.Min, draw.Src)
	return out
}

// OutlineBox draws a one pixel rectangle border in place, clipped to img.
func OutlineBox(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	set := func(x, y int) {
		if (image.Point{x, y}).In(b) {
			img.SetRGBA(x, y, c)
		}
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y-1)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X-1, y)
	}
}
