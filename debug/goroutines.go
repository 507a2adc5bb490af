package debug

// Goroutine and stack logger, started only in debug mode. It exists to rule
// out goroutine leaks from the tick loop and the Tk event pump.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartGoroutineLogger logs goroutine count and stack memory every interval
// until ctx is done.
func StartGoroutineLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Second
	}
	go every(ctx, interval, func() {
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		metrics.Read(samples)
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		logger.Debug("goroutine-stacks",
			slog.Uint64("goroutines", samples[0].Value.Uint64()),
			slog.Uint64("stack_inuse", ms.StackInuse),
			slog.Uint64("stack_sys", ms.StackSys),
		)
	})
}

func every(ctx context.Context, interval time.Duration, fn func()) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			fn()
		}
	}
}
