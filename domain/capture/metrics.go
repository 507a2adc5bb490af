package capture

import (
	"time"

	"github.com/soocke/colo-bot-go/domain/vision"
)

// FrameSnapshot carries the latest normalised frame and where it came from.
type FrameSnapshot struct {
	Frame      *vision.FrameBuffer
	Window     Window
	CapturedAt time.Time
	Sequence   uint64
}

// CaptureStats summarises capture behaviour for instrumentation.
type CaptureStats struct {
	Captures         uint64
	Skipped          uint64
	AvgCapture       time.Duration
	AvgCaptureMicros float64
	LastCapture      time.Time
	LatestFrameAge   time.Duration
	Sequence         uint64
}
