package engine

import (
	"fmt"
	"io"
	"log/slog"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// scriptedRand returns queued values, or lo once the queue is empty, and
// records every requested range.
type scriptedRand struct {
	vals  []int
	calls [][2]int
}

func (r *scriptedRand) Next(lo, hi int) int {
	r.calls = append(r.calls, [2]int{lo, hi})
	if len(r.vals) == 0 {
		return lo
	}
	v := r.vals[0]
	r.vals = r.vals[1:]
	if v < lo || v >= hi {
		panic(fmt.Sprintf("scripted value %d outside [%d,%d)", v, lo, hi))
	}
	return v
}

func (r *scriptedRand) requested(lo, hi int) bool {
	for _, c := range r.calls {
		if c == [2]int{lo, hi} {
			return true
		}
	}
	return false
}
