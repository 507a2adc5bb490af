package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows run timers and click counters.
type SessionStats interface {
	SetSession(d time.Duration)
	SetTotal(d time.Duration)
	SetClicks(decided, delivered uint64)
	SetRunInfo(text string)
}

type sessionStats struct {
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
	clicksLbl  *LabelWidget
	runLbl     *LabelWidget
}

// NewSessionStats grids four labels from (row, startCol) onwards, inside
// parent when given, else on the root.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{sessionLbl: Label(Width(14)), totalLbl: Label(Width(14)), clicksLbl: Label(Width(18)), runLbl: Label(Width(30))}
	for i, l := range []*LabelWidget{s.sessionLbl, s.totalLbl, s.clicksLbl, s.runLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.sessionLbl.Configure(Txt("Session: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	s.clicksLbl.Configure(Txt("Clicks: 0/0"))
	s.runLbl.Configure(Txt("Runs: 0"))
	return s
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (s *sessionStats) SetSession(d time.Duration) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + mmss(d)))
}

func (s *sessionStats) SetTotal(d time.Duration) {
	if s == nil || s.totalLbl == nil {
		return
	}
	s.totalLbl.Configure(Txt("Total: " + mmss(d)))
}

// SetClicks shows delivered over decided clicks.
func (s *sessionStats) SetClicks(decided, delivered uint64) {
	if s == nil || s.clicksLbl == nil {
		return
	}
	s.clicksLbl.Configure(Txt(fmt.Sprintf("Clicks: %d/%d", delivered, decided)))
}

func (s *sessionStats) SetRunInfo(text string) {
	if s == nil || s.runLbl == nil {
		return
	}
	s.runLbl.Configure(Txt(text))
}
