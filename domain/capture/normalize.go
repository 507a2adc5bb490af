package capture

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// Normalize scales a captured client area down to the logical frame with
// bicubic filtering. Captures smaller than the logical frame are rejected.
func Normalize(img image.Image) (*vision.FrameBuffer, error) {
	if img == nil {
		return nil, fmt.Errorf("capture: normalize: nil image")
	}
	lw, lh := ExpectedLogicalSize()
	b := img.Bounds()
	if b.Dx() < lw || b.Dy() < lh {
		return nil, fmt.Errorf("%w: %dx%d", ErrWindowTooSmall, b.Dx(), b.Dy())
	}

	var src image.Image = img
	if b.Dx() != lw || b.Dy() != lh {
		src = imaging.Resize(img, lw, lh, imaging.CatmullRom)
	}
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return vision.FromLogicalRGBA(rgba)
	}

	dst := acquireFrame(image.Rect(0, 0, lw, lh))
	defer RecycleFrame(dst)
	xdraw.Copy(dst, image.Point{}, src, src.Bounds(), xdraw.Src, nil)
	return vision.FromLogicalRGBA(dst)
}

// toRGBA converts a backend image into a pooled RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	dst := acquireFrame(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(dst, image.Point{}, img, b, xdraw.Src, nil)
	return dst
}
