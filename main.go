package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soocke/colo-bot-go/app"
	"github.com/soocke/colo-bot-go/config"
	"github.com/soocke/colo-bot-go/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "verbose logging plus runtime stats")
	headless := flag.Bool("headless", false, "run the bot without the Tk window until interrupted")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	logger := NewLogger(level)
	if cfg.LogFile != "" {
		l, closeLog, err := NewFileLogger(cfg.LogFile, level)
		if err != nil {
			logger.Error("log file", "path", cfg.LogFile, "error", err)
		} else {
			logger = l
			defer closeLog()
		}
	}
	slog.SetDefault(logger)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, 30*time.Second, logger)
		debug.StartMemLogger(ctx, 30*time.Second, logger)
	}

	c, err := app.BuildContainer(cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	if *headless {
		runHeadless(ctx, c, logger)
		return
	}
	app.NewApp(ctx, "Colo Bot", 820, 760, c).Start()
}

// runHeadless drives the session until ctx is cancelled or the loop aborts.
func runHeadless(ctx context.Context, c *app.Container, logger *slog.Logger) {
	defer func() {
		if err := c.Close(); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()
	if err := c.Session.Start(ctx); err != nil {
		logger.Error("start", "error", err)
		return
	}
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !c.Session.Running() {
				logger.Error("session ended unexpectedly")
				return
			}
		}
	}
}
