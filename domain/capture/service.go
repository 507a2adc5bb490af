package capture

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"
)

const captureStatsLogInterval = 5 * time.Second

// windowSource is satisfied by *Locator.
type windowSource interface {
	Window() (Window, error)
	Invalidate()
}

// Service grabs the located game window once per call, normalises it to
// the logical frame and keeps the latest snapshot for the preview.
type Service struct {
	grabber Grabber
	windows windowSource
	logger  *slog.Logger

	latest       atomic.Pointer[FrameSnapshot]
	captures     atomic.Uint64
	skipped      atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
	lastStatsLog atomic.Int64
}

// NewService wires a grabber backend to a window locator.
func NewService(grabber Grabber, windows *Locator, logger *slog.Logger) *Service {
	return newService(grabber, windows, logger)
}

func newService(grabber Grabber, windows windowSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{grabber: grabber, windows: windows, logger: logger}
}

// Capture performs one grab. Any failure counts as a skipped frame; a
// failed grab also drops the cached window so it is looked up again.
func (s *Service) Capture() (FrameSnapshot, error) {
	start := time.Now()
	win, err := s.windows.Window()
	if err != nil {
		s.skipped.Add(1)
		return FrameSnapshot{}, err
	}
	raw, err := s.grabber.GrabRect(win.Client)
	if err != nil {
		s.skipped.Add(1)
		s.windows.Invalidate()
		return FrameSnapshot{}, fmt.Errorf("grab %s: %w", win.Client, err)
	}
	frame, err := Normalize(raw)
	RecycleFrame(raw)
	if err != nil {
		s.skipped.Add(1)
		s.windows.Invalidate()
		return FrameSnapshot{}, err
	}

	s.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.captures.Add(1)
	snap := FrameSnapshot{Frame: frame, Window: win, CapturedAt: time.Now(), Sequence: s.sequence.Add(1)}
	s.latest.Store(&snap)
	s.maybeLogStats(snap.CapturedAt)
	return snap, nil
}

// LatestFrame returns the most recent successful capture, or a zero
// snapshot.
func (s *Service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

// Preview renders the latest frame for display, nil before the first grab.
func (s *Service) Preview() *image.RGBA {
	snap := s.LatestFrame()
	if snap.Frame == nil {
		return nil
	}
	return snap.Frame.ToRGBA()
}

// Backend names the active grabber.
func (s *Service) Backend() string { return s.grabber.Name() }

func (s *Service) Stats() CaptureStats {
	captures := s.captures.Load()
	total := s.captureNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if captures > 0 && total > 0 {
		avg = time.Duration(total / captures)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	snap := s.LatestFrame()
	age := time.Duration(0)
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return CaptureStats{
		Captures:         captures,
		Skipped:          s.skipped.Load(),
		AvgCapture:       avg,
		AvgCaptureMicros: avgMicros,
		LastCapture:      snap.CapturedAt,
		LatestFrameAge:   age,
		Sequence:         snap.Sequence,
	}
}

func (s *Service) maybeLogStats(now time.Time) {
	last := s.lastStatsLog.Load()
	if last != 0 && now.Sub(time.Unix(0, last)) < captureStatsLogInterval {
		return
	}
	if !s.lastStatsLog.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	stats := s.Stats()
	s.logger.Debug("capture.stats",
		"backend", s.grabber.Name(),
		"captures", stats.Captures,
		"skipped", stats.Skipped,
		"avg_capture", stats.AvgCapture,
	)
}
