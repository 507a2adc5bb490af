package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoggerWritesDebugToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "colo-bot.log")
	logger, cleanup, err := NewFileLogger(path, slog.LevelError)
	if err != nil {
		t.Fatalf("new file logger: %v", err)
	}
	logger.With("component", "test").Debug("screen transition", "to", "Title")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"msg":"screen transition"`) || !strings.Contains(s, `"component":"test"`) {
		t.Fatalf("unexpected log contents %q", s)
	}
}
