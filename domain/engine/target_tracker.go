package engine

import (
	"fmt"
	"image"
	"strings"

	"github.com/soocke/colo-bot-go/domain/detect"
)

// TargetMode selects how enemy targets are rotated during combat.
type TargetMode int

const (
	TargetNone TargetMode = iota
	TargetDeselect
	TargetLockStrongest
	TargetCycleAll
	TargetCycleTop3
)

func (m TargetMode) String() string {
	switch m {
	case TargetDeselect:
		return "deselect"
	case TargetLockStrongest:
		return "lock_strongest"
	case TargetCycleAll:
		return "cycle_all"
	case TargetCycleTop3:
		return "cycle_top3"
	default:
		return "none"
	}
}

// ParseTargetMode accepts the names produced by String.
func ParseTargetMode(s string) (TargetMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return TargetNone, nil
	case "deselect":
		return TargetDeselect, nil
	case "lock_strongest":
		return TargetLockStrongest, nil
	case "cycle_all":
		return TargetCycleAll, nil
	case "cycle_top3":
		return TargetCycleTop3, nil
	}
	return TargetNone, fmt.Errorf("engine: unknown targeting mode %q", s)
}

var (
	rotationAll  = []int{0, 1, 2, 3, 4}
	rotationTop3 = []int{0, 1, 2}
)

// TargetTracker produces a pending target click every few seconds.
type TargetTracker struct {
	targets  [detect.TargetCount]image.Rectangle
	noTarget image.Rectangle
	rng      Rand

	mode        TargetMode
	rotationIdx int
	delay       int
	pending     image.Rectangle
}

func NewTargetTracker(tbl detect.TargetTable, rng Rand) *TargetTracker {
	return &TargetTracker{targets: tbl.Enemies, noTarget: tbl.NoTarget, rng: rng, rotationIdx: -1}
}

func (t *TargetTracker) Mode() TargetMode { return t.mode }

// SetMode switches the mode and restarts the rotation.
func (t *TargetTracker) SetMode(m TargetMode) {
	t.mode = m
	t.Reset()
}

func (t *TargetTracker) Reset() {
	t.rotationIdx = -1
	t.delay = 0
	t.pending = image.Rectangle{}
}

// Update counts down and, when the delay runs out, queues the next target.
func (t *TargetTracker) Update() {
	if t.mode == TargetNone {
		return
	}
	if t.delay > 0 {
		t.delay--
		return
	}
	t.delay = t.rng.Next(60, 100)
	switch t.mode {
	case TargetDeselect:
		t.delay = t.rng.Next(100, 150)
		t.pending = t.noTarget
	case TargetLockStrongest:
		t.pending = t.targets[0]
	case TargetCycleAll:
		t.rotationIdx = (t.rotationIdx + 1) % len(rotationAll)
		t.pending = t.targets[rotationAll[t.rotationIdx]]
	case TargetCycleTop3:
		t.rotationIdx = (t.rotationIdx + 1) % len(rotationTop3)
		t.pending = t.targets[rotationTop3[t.rotationIdx]]
	}
}

// Consume returns and clears the pending target.
func (t *TargetTracker) Consume() (image.Rectangle, bool) {
	if t.pending.Dx() <= 0 {
		return image.Rectangle{}, false
	}
	box := t.pending
	t.pending = image.Rectangle{}
	return box, true
}

func (t *TargetTracker) String() string {
	s := fmt.Sprintf("Target> %s", t.mode)
	if t.mode != TargetNone {
		s += fmt.Sprintf(", wait:%d", t.delay)
	}
	switch t.mode {
	case TargetCycleAll:
		s += fmt.Sprintf(", cycle %d/%d", t.rotationIdx, len(rotationAll))
	case TargetCycleTop3:
		s += fmt.Sprintf(", cycle %d/%d", t.rotationIdx, len(rotationTop3))
	}
	return s
}
