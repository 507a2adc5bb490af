// Package session owns the tick loop: capture a frame, recognise the
// screen, let the engine decide and hand the click to the injector. Only
// the loop goroutine touches the engine; observers read Status snapshots.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/colo-bot-go/domain/action"
	"github.com/soocke/colo-bot-go/domain/capture"
	"github.com/soocke/colo-bot-go/domain/detect"
	"github.com/soocke/colo-bot-go/domain/engine"
)

// ErrRunning is returned by Start when a run is already active.
var ErrRunning = errors.New("session: already running")

// Clicker delivers a logical box as a screen click.
type Clicker interface {
	Click(win capture.Window, box image.Rectangle) (image.Point, error)
}

// Journal records clicks and transitions. Optional.
type Journal interface {
	RecordClick(tick uint64, screen, target string, at image.Point, delivered bool) error
	RecordTransition(tick uint64, from, to string) error
}

// Listener observes each completed tick.
type Listener func(Status)

// Status is a snapshot of the loop after a tick.
type Status struct {
	RunID      string
	Running    bool
	Started    time.Time
	Tick       uint64
	RunTicks   uint64
	Screen     detect.ScreenKind
	State      string
	Last       engine.Click
	LastPoint  image.Point
	HasClick   bool
	Decided    uint64
	Delivered  uint64
	Dropped    uint64
	Details    []string
	CaptureErr string
}

// Options configure a Session. Frames, Dispatcher, Engine and Clicker are
// required.
type Options struct {
	Frames     capture.FrameSource
	Dispatcher *detect.Dispatcher
	Engine     *engine.Engine
	Clicker    Clicker
	Journal    Journal
	Interval   time.Duration
	Logger     *slog.Logger
}

type Session struct {
	frames     capture.FrameSource
	dispatcher *detect.Dispatcher
	engine     *engine.Engine
	clicker    Clicker
	journal    Journal
	interval   time.Duration
	logger     *slog.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	listeners []Listener

	running   atomic.Bool
	busy      atomic.Bool
	tick      atomic.Uint64
	decided   atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	status    atomic.Pointer[Status]

	// loop goroutine only
	runID     string
	started   time.Time
	startTick uint64
	lastErr   string
	lastPoint image.Point
}

func New(opts Options) (*Session, error) {
	if opts.Frames == nil || opts.Dispatcher == nil || opts.Engine == nil || opts.Clicker == nil {
		return nil, fmt.Errorf("session: frames, dispatcher, engine and clicker are required")
	}
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	s := &Session{
		frames:     opts.Frames,
		dispatcher: opts.Dispatcher,
		engine:     opts.Engine,
		clicker:    opts.Clicker,
		journal:    opts.Journal,
		interval:   opts.Interval,
		logger:     opts.Logger,
	}
	s.engine.AddListener(s.onTransition)
	s.status.Store(&Status{})
	return s, nil
}

// AddListener registers l for every tick. Listeners run on the loop
// goroutine and must not block.
func (s *Session) AddListener(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

func (s *Session) Running() bool { return s.running.Load() }

// Status returns the latest snapshot.
func (s *Session) Status() Status {
	st := *s.status.Load()
	st.Running = s.running.Load()
	return st
}

// SetInterval changes the tick cadence from the next Start on.
func (s *Session) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// Start launches the tick loop. The loop ends on Stop, ctx cancellation or
// a recovered panic.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return ErrRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.runID = uuid.NewString()
	s.started = time.Now()
	s.startTick = s.tick.Load()
	s.running.Store(true)
	s.logger.Info("session start", "run_id", s.runID, "interval", s.interval)
	go s.loop(ctx, s.done, s.interval)
	return nil
}

// Stop ends the loop and waits for the current tick to finish.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Session) loop(ctx context.Context, done chan struct{}, interval time.Duration) {
	defer close(done)
	defer s.running.Store(false)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session stop", "run_id", s.runID, "ticks", s.tick.Load())
			return
		case <-ticker.C:
			if err := s.safeStep(); err != nil {
				s.logger.Error("session aborted", "run_id", s.runID, "error", err)
				s.abort(done)
				return
			}
		}
	}
}

// abort releases the run's context when the loop ends on its own. Stop may
// already have taken the cancel func; done identifies the run.
func (s *Session) abort(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != done || s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
}

func (s *Session) safeStep() (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tick panic", "error", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("session: tick %d panicked: %v", s.tick.Load(), r)
		}
	}()
	s.Step()
	return nil
}

// Step runs one tick. It returns false without doing anything when
// another tick is still in flight.
func (s *Session) Step() bool {
	if !s.busy.CompareAndSwap(false, true) {
		s.dropped.Add(1)
		return false
	}
	defer s.busy.Store(false)
	n := s.tick.Add(1)

	var (
		det   detect.Detector
		state detect.ScreenState
	)
	snap, err := s.frames.Capture()
	if err != nil {
		if msg := err.Error(); msg != s.lastErr {
			s.logger.Error("capture failed", "tick", n, "error", err)
			s.lastErr = msg
		}
	} else {
		if s.lastErr != "" {
			s.logger.Info("capture recovered", "tick", n)
		}
		s.lastErr = ""
		det, state, _ = s.dispatcher.Detect(snap.Frame)
	}

	click, ok := s.engine.Tick(det, state)
	if ok {
		s.deliver(n, snap.Window, click)
	}
	s.publish(n, state)
	return true
}

func (s *Session) deliver(tick uint64, win capture.Window, c engine.Click) {
	s.decided.Add(1)
	pt, err := s.clicker.Click(win, c.Box)
	delivered := err == nil
	switch {
	case err == nil:
		s.delivered.Add(1)
		s.logger.Info("click", "tick", tick, "target", c.String(), "x", pt.X, "y", pt.Y)
	case errors.Is(err, action.ErrClickingDisabled), errors.Is(err, action.ErrNotFocused):
		s.logger.Debug("click suppressed", "tick", tick, "target", c.String(), "reason", err)
	default:
		s.logger.Error("click failed", "tick", tick, "target", c.String(), "error", err)
	}
	s.lastPoint = pt
	if s.journal != nil {
		if err := s.journal.RecordClick(tick, c.Screen.String(), c.String(), pt, delivered); err != nil {
			s.logger.Error("journal click", "error", err)
		}
	}
}

func (s *Session) onTransition(prev, next detect.ScreenKind) {
	if s.journal == nil {
		return
	}
	if err := s.journal.RecordTransition(s.tick.Load(), prev.String(), next.String()); err != nil {
		s.logger.Error("journal transition", "error", err)
	}
}

func (s *Session) publish(tick uint64, state detect.ScreenState) {
	last, has := s.engine.LastClick()
	st := &Status{
		RunID:      s.runID,
		Running:    s.running.Load(),
		Started:    s.started,
		Tick:       tick,
		RunTicks:   tick - s.startTick,
		Screen:     s.engine.State(),
		Last:       last,
		LastPoint:  s.lastPoint,
		HasClick:   has,
		Decided:    s.decided.Load(),
		Delivered:  s.delivered.Load(),
		Dropped:    s.dropped.Load(),
		Details:    s.engine.Details(),
		CaptureErr: s.lastErr,
	}
	if state != nil {
		st.State = state.String()
	}
	s.status.Store(st)

	s.mu.Lock()
	ls := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()
	for _, l := range ls {
		l(*st)
	}
}
