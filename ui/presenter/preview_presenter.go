package presenter

import (
	"image"
	"image/color"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/soocke/colo-bot-go/domain/capture"
	"github.com/soocke/colo-bot-go/domain/engine"
	"github.com/soocke/colo-bot-go/domain/session"
	"github.com/soocke/colo-bot-go/ui/images"
)

const (
	previewMaxW = 240
	previewMaxH = 420
	zoomPad     = 4
	zoomFactor  = 3
)

var clickOutline = color.RGBA{R: 255, G: 40, B: 40, A: 255}

// PreviewSource supplies the most recent normalised frame.
type PreviewSource interface {
	LatestFrame() capture.FrameSnapshot
}

// PreviewView shows the frame and a zoomed crop of the last clicked box.
type PreviewView interface {
	UpdateCapture(img image.Image)
	UpdateDetection(img image.Image)
}

type previewTask struct {
	snap     capture.FrameSnapshot
	click    engine.Click
	hasClick bool
}

type previewResult struct {
	sequence uint64
	full     *image.RGBA
	zoom     *image.RGBA
}

// PreviewPresenter renders previews on a worker goroutine so PNG encoding
// and scaling stay off the Tk thread. At most one render is in flight;
// frames arriving meanwhile are skipped.
type PreviewPresenter struct {
	Source PreviewSource
	View   PreviewView
	logger *slog.Logger

	workerOnce sync.Once
	workCh     chan previewTask
	resultCh   chan previewResult
	lastSeq    uint64
}

func NewPreviewPresenter(source PreviewSource, view PreviewView, logger *slog.Logger) *PreviewPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &PreviewPresenter{
		Source:   source,
		View:     view,
		logger:   logger,
		workCh:   make(chan previewTask, 1),
		resultCh: make(chan previewResult, 1),
	}
}

// Process applies a finished render, then schedules the newest frame.
func (p *PreviewPresenter) Process(st session.Status) {
	if p == nil || p.Source == nil || p.View == nil {
		return
	}
	p.workerOnce.Do(func() { go p.worker() })

	select {
	case res := <-p.resultCh:
		p.View.UpdateCapture(res.full)
		if res.zoom != nil {
			p.View.UpdateDetection(res.zoom)
		}
	default:
	}

	snap := p.Source.LatestFrame()
	if snap.Frame == nil || snap.Sequence == p.lastSeq {
		return
	}
	task := previewTask{snap: snap, click: st.Last, hasClick: st.HasClick}
	select {
	case p.workCh <- task:
		p.lastSeq = snap.Sequence
	default:
	}
}

func (p *PreviewPresenter) worker() {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("preview worker panic", "error", r, "stack", string(debug.Stack()))
		}
	}()
	for task := range p.workCh {
		res := renderPreview(task)
		select {
		case p.resultCh <- res:
		default:
			// UI has not drained the previous render; replace it
			select {
			case <-p.resultCh:
			default:
			}
			p.resultCh <- res
		}
	}
}

func renderPreview(task previewTask) previewResult {
	rgba := task.snap.Frame.ToRGBA()
	res := previewResult{sequence: task.snap.Sequence}
	if task.hasClick {
		if crop := images.Crop(rgba, task.click.Box, zoomPad); crop != nil {
			res.zoom = images.Zoom(crop, zoomFactor)
		}
		images.OutlineBox(rgba, task.click.Box, clickOutline)
	}
	res.full = images.ScaleToFit(rgba, previewMaxW, previewMaxH)
	return res
}

// Close stops the worker.
func (p *PreviewPresenter) Close() {
	if p == nil {
		return
	}
	close(p.workCh)
}
