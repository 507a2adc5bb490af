package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a structured slog.Logger with the given level.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h)
}

// splitHandler sends each record to the console and the rotated file, each
// filtered by its own level.
type splitHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (h *splitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *splitHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.file.Enabled(ctx, r.Level) {
		if err := h.file.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	if h.console.Enabled(ctx, r.Level) {
		return h.console.Handle(ctx, r)
	}
	return nil
}

func (h *splitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &splitHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *splitHandler) WithGroup(name string) slog.Handler {
	return &splitHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}

// NewFileLogger logs text to stdout at consoleLevel and JSON at Debug to a
// rotated file at path. The returned func closes the file.
func NewFileLogger(path string, consoleLevel slog.Leveler) (*slog.Logger, func(), error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		LocalTime:  true,
	}
	logger := slog.New(&splitHandler{
		console: slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: consoleLevel}),
		file:    slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug, AddSource: true}),
	})
	cleanup := func() {
		if err := lj.Close(); err != nil {
			logger.Error("close log file", "error", err)
		}
	}
	return logger, cleanup, nil
}
