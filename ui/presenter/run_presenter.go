package presenter

import (
	"context"
	"log/slog"
)

// RunModel holds the desired running flag.
type RunModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// Runner is the slice of the session loop the presenter drives.
type Runner interface {
	Start(ctx context.Context) error
	Stop()
	Running() bool
}

// RunView updates UI elements affected by starting and stopping.
type RunView interface {
	PreviewReset()
	ConfigEditable(bool)
	SetRunning(bool)
}

// RunPresenter owns the Start/Stop button logic.
type RunPresenter struct {
	ctx    context.Context
	model  RunModel
	runner Runner
	view   RunView
	logger *slog.Logger
}

func NewRunPresenter(ctx context.Context, model RunModel, runner Runner, view RunView, logger *slog.Logger) *RunPresenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RunPresenter{ctx: ctx, model: model, runner: runner, view: view, logger: logger}
}

func (p *RunPresenter) ready() bool {
	return p != nil && p.model != nil && p.runner != nil && p.view != nil
}

// Enable starts the loop and locks the config form. Idempotent.
func (p *RunPresenter) Enable() {
	if !p.ready() || p.model.Enabled() {
		return
	}
	if err := p.runner.Start(p.ctx); err != nil {
		p.logger.Error("start run", "error", err)
		return
	}
	p.model.SetEnabled(true)
	p.view.ConfigEditable(false)
	p.view.SetRunning(true)
}

// Disable stops the loop and unlocks the config form. Idempotent.
func (p *RunPresenter) Disable() {
	if !p.ready() || !p.model.Enabled() {
		return
	}
	p.runner.Stop()
	p.stopped()
}

func (p *RunPresenter) Toggle() {
	if !p.ready() {
		return
	}
	if p.model.Enabled() {
		p.Disable()
		return
	}
	p.Enable()
}

// Sync notices a loop that ended on its own (a recovered tick panic) and
// brings the UI back to the stopped state.
func (p *RunPresenter) Sync() {
	if !p.ready() || !p.model.Enabled() || p.runner.Running() {
		return
	}
	p.logger.Warn("run ended unexpectedly")
	p.runner.Stop()
	p.stopped()
}

func (p *RunPresenter) stopped() {
	p.model.SetEnabled(false)
	p.view.PreviewReset()
	p.view.ConfigEditable(true)
	p.view.SetRunning(false)
}
