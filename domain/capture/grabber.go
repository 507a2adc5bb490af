package capture

import (
	"fmt"
	"image"
	"sort"

	"github.com/go-vgo/robotgo"
	"github.com/vova616/screenshot"
)

// Capture backend names accepted in the config.
const (
	BackendGDI        = "gdi"
	BackendScreenshot = "screenshot"
	BackendRobotgo    = "robotgo"
)

// platformGrabbers is filled by build-tagged files for backends that only
// exist on some systems.
var platformGrabbers = map[string]func() Grabber{
	BackendScreenshot: func() Grabber { return screenshotGrabber{} },
	BackendRobotgo:    func() Grabber { return robotgoGrabber{} },
}

// NewGrabber returns the named backend. An empty name picks gdi where
// available, else screenshot.
func NewGrabber(name string) (Grabber, error) {
	if name == "" {
		name = BackendScreenshot
		if _, ok := platformGrabbers[BackendGDI]; ok {
			name = BackendGDI
		}
	}
	ctor, ok := platformGrabbers[name]
	if !ok {
		return nil, fmt.Errorf("capture: backend %q not available (have %v)", name, Backends())
	}
	return ctor(), nil
}

// Backends lists the backend names usable on this platform.
func Backends() []string {
	out := make([]string, 0, len(platformGrabbers))
	for k := range platformGrabbers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

type screenshotGrabber struct{}

func (screenshotGrabber) Name() string { return BackendScreenshot }

func (screenshotGrabber) GrabRect(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("capture: screenshot: empty rect")
	}
	img, err := screenshot.CaptureRect(r)
	if err != nil {
		return nil, fmt.Errorf("capture: screenshot: %w", err)
	}
	return img, nil
}

type robotgoGrabber struct{}

func (robotgoGrabber) Name() string { return BackendRobotgo }

func (robotgoGrabber) GrabRect(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("capture: robotgo: empty rect")
	}
	img, err := robotgo.CaptureImg(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	if err != nil {
		return nil, fmt.Errorf("capture: robotgo: %w", err)
	}
	return toRGBA(img), nil
}
