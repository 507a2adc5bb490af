package view

import (
	"image"

	"github.com/soocke/colo-bot-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows the normalised game frame with the last click
// outlined, and a zoomed crop of that click.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
	Reset()
}

// Old photos are deleted before being replaced so Tk does not accumulate
// image data.
type capturePreview struct {
	captureLabel       *LabelWidget
	detectionLabel     *LabelWidget
	prevCapturePhoto   *Img
	prevDetectionPhoto *Img
}

func placeholderPNG() []byte {
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, previewW/2, previewH/2)))
}

// NewCapturePreview grids the frame preview across columns 0-3 and the zoom
// at column 4 of row.
func NewCapturePreview(row int) CapturePreview {
	pngBytes := placeholderPNG()
	capPhoto := NewPhoto(Data(pngBytes))
	detPhoto := NewPhoto(Data(pngBytes))
	capture := Label(Image(capPhoto), Borderwidth(1), Relief("sunken"))
	detection := Label(Image(detPhoto), Borderwidth(1), Relief("sunken"))
	Grid(capture, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	Grid(detection, Row(row), Column(4), Columnspan(1), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{captureLabel: capture, detectionLabel: detection, prevCapturePhoto: capPhoto, prevDetectionPhoto: detPhoto}
}

// Upper bound for the frame preview; presenters pre-scale to this.
const (
	previewW = 240
	previewH = 420
)

func (v *capturePreview) UpdateCapture(img image.Image) {
	if v.captureLabel == nil || img == nil {
		return
	}
	b := img.Bounds()
	if b.Dx() > previewW || b.Dy() > previewH {
		img = images.ScaleToFit(img, previewW, previewH)
	}
	pngBytes := images.EncodePNG(img)
	if v.prevCapturePhoto != nil {
		v.prevCapturePhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevCapturePhoto = newPhoto
	v.captureLabel.Configure(Image(newPhoto))
}

func (v *capturePreview) UpdateDetection(img image.Image) {
	if v.detectionLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	if v.prevDetectionPhoto != nil {
		v.prevDetectionPhoto.Delete()
	}
	newPhoto := NewPhoto(Data(pngBytes))
	v.prevDetectionPhoto = newPhoto
	v.detectionLabel.Configure(Image(newPhoto))
}

func (v *capturePreview) Reset() {
	pngBytes := placeholderPNG()
	if v.captureLabel != nil {
		if v.prevCapturePhoto != nil {
			v.prevCapturePhoto.Delete()
		}
		v.prevCapturePhoto = NewPhoto(Data(pngBytes))
		v.captureLabel.Configure(Image(v.prevCapturePhoto))
	}
	if v.detectionLabel != nil {
		if v.prevDetectionPhoto != nil {
			v.prevDetectionPhoto.Delete()
		}
		v.prevDetectionPhoto = NewPhoto(Data(pngBytes))
		v.detectionLabel.Configure(Image(v.prevDetectionPhoto))
	}
}
