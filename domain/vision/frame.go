package vision

import (
	"errors"
	"fmt"
	"image"
)

// Logical frame size every calibration table is expressed in.
const (
	LogicalWidth  = 338
	LogicalHeight = 600
)

// ErrFrameSize is returned when a frame does not have the logical size.
var ErrFrameSize = errors.New("vision: frame is not the logical size")

// Point is a frame coordinate.
type Point = image.Point

// Pt is shorthand for image.Pt.
func Pt(x, y int) Point { return image.Pt(x, y) }

// Box returns the rectangle at (x,y) with the given width and height.
func Box(x, y, w, h int) image.Rectangle { return image.Rect(x, y, x+w, y+h) }

// FrameBuffer is a row-major grid of samples. Reads outside the backing
// array panic; coordinates past the right edge address the next row.
type FrameBuffer struct {
	Width  int
	Height int
	pix    []ColorSample
}

// NewFrameBuffer allocates a black frame.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{Width: w, Height: h, pix: make([]ColorSample, w*h)}
}

// FromRGBA copies img into a new frame buffer of the image's size.
func FromRGBA(img *image.RGBA) *FrameBuffer {
	b := img.Bounds()
	f := NewFrameBuffer(b.Dx(), b.Dy())
	for y := 0; y < f.Height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+f.Width*4]
		base := y * f.Width
		for x := 0; x < f.Width; x++ {
			f.pix[base+x] = ColorSample{R: row[x*4], G: row[x*4+1], B: row[x*4+2]}
		}
	}
	return f
}

// FromLogicalRGBA converts img and checks it has the logical size.
func FromLogicalRGBA(img *image.RGBA) (*FrameBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrFrameSize)
	}
	if img.Bounds().Dx() != LogicalWidth || img.Bounds().Dy() != LogicalHeight {
		return nil, fmt.Errorf("%w: got %dx%d", ErrFrameSize, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return FromRGBA(img), nil
}

// At returns the sample at (x,y). HSV is derived on first access.
func (f *FrameBuffer) At(x, y int) *ColorSample {
	return &f.pix[x+y*f.Width]
}

// Set replaces the sample at (x,y) and clears its cached derivation.
func (f *FrameBuffer) Set(x, y int, r, g, b uint8) {
	f.pix[x+y*f.Width] = ColorSample{R: r, G: g, B: b}
}

// Fill paints every pixel of rect.
func (f *FrameBuffer) Fill(rect image.Rectangle, r, g, b uint8) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			f.Set(x, y, r, g, b)
		}
	}
}

// Clone returns a deep copy with cleared caches.
func (f *FrameBuffer) Clone() *FrameBuffer {
	out := NewFrameBuffer(f.Width, f.Height)
	for i, px := range f.pix {
		out.pix[i] = ColorSample{R: px.R, G: px.G, B: px.B}
	}
	return out
}

// ToRGBA renders the frame back into an image, used by previews.
func (f *FrameBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, px := range f.pix {
		img.Pix[i*4] = px.R
		img.Pix[i*4+1] = px.G
		img.Pix[i*4+2] = px.B
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

func (f *FrameBuffer) String() string { return fmt.Sprintf("FrameBuffer %dx%d", f.Width, f.Height) }
