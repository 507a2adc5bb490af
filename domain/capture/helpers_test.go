package capture

import (
	"errors"
	"image"
	"image/color"
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func uniformRGBA(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

type fakeAPI struct {
	procs   []procInfo
	titles  map[int]string
	clients map[int]image.Rectangle
	calls   int
}

func (f *fakeAPI) Processes() ([]procInfo, error) {
	f.calls++
	if f.procs == nil {
		return nil, errors.New("enumeration failed")
	}
	return f.procs, nil
}

func (f *fakeAPI) Title(pid int) string { return f.titles[pid] }

func (f *fakeAPI) Client(pid int) image.Rectangle { return f.clients[pid] }

type fakeGrabber struct {
	img  *image.RGBA
	err  error
	rect image.Rectangle
}

func (f *fakeGrabber) Name() string { return "fake" }

func (f *fakeGrabber) GrabRect(r image.Rectangle) (*image.RGBA, error) {
	f.rect = r
	if f.err != nil {
		return nil, f.err
	}
	// hand out a copy since the service recycles what it receives
	out := image.NewRGBA(f.img.Rect)
	copy(out.Pix, f.img.Pix)
	return out, nil
}

type fakeWindows struct {
	win         Window
	err         error
	invalidated int
}

func (f *fakeWindows) Window() (Window, error) { return f.win, f.err }
func (f *fakeWindows) Invalidate()             { f.invalidated++ }
