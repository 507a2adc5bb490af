package capture

import (
	"errors"
	"image"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// FrameSource delivers one logical frame per call. Callers treat an error
// as "no screen" for the current tick.
type FrameSource interface {
	Capture() (FrameSnapshot, error)
	LatestFrame() FrameSnapshot
}

// Grabber copies a rectangle of the screen into a new RGBA image.
type Grabber interface {
	Name() string
	GrabRect(r image.Rectangle) (*image.RGBA, error)
}

// ExpectedLogicalSize is the frame size every capture is normalised to.
func ExpectedLogicalSize() (w, h int) { return vision.LogicalWidth, vision.LogicalHeight }

// Window discovery failures.
var (
	ErrMissingProcess = errors.New("capture: game process not found")
	ErrMissingWindow  = errors.New("capture: game window not found")
	ErrWindowTooSmall = errors.New("capture: game window smaller than the logical frame")
)

// WindowState is the outcome of the last window lookup.
type WindowState int

const (
	WindowUnknown WindowState = iota
	WindowMissingProcess
	WindowMissing
	WindowTooSmall
	WindowFound
)

func (s WindowState) String() string {
	switch s {
	case WindowMissingProcess:
		return "MissingGameProcess"
	case WindowMissing:
		return "MissingGameWindow"
	case WindowTooSmall:
		return "WindowTooSmall"
	case WindowFound:
		return "Success"
	default:
		return "Unknown"
	}
}
