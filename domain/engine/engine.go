// Package engine decides, tick by tick, what to click on the recognised
// screen. It owns the per-screen scratch state and the persistent boost and
// target trackers; it is not safe for concurrent use.
package engine

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/detect"
)

// Pacing in ticks.
const (
	PostSpawnWait   = 15
	PurifyReentry   = 30
	burstBigPct     = float32(90) / 400
	burstSPLimit    = 0.95
	lowSP           = 0.3
	demonSP         = 0.7
	shipSP          = 0.7
	reviveSP        = 0.99
	minBurstTargets = 5
)

// Click is one decision: the rectangle to click, in logical frame space,
// and what it stands for.
type Click struct {
	Screen detect.ScreenKind
	Box    image.Rectangle
	// Slot is the action slot index, or -1 for named targets.
	Slot  int
	Label string
}

func (c Click) String() string {
	if c.Slot >= 0 {
		return fmt.Sprintf("%s slot %d %v", c.Screen, c.Slot, c.Box)
	}
	return fmt.Sprintf("%s %s %v", c.Screen, c.Label, c.Box)
}

// TransitionListener is called when the engine changes screen state.
type TransitionListener func(prev, next detect.ScreenKind)

// Engine is the per-screen decision state machine.
type Engine struct {
	rng    Rand
	logger *slog.Logger
	boost  *BoostTracker
	target *TargetTracker

	state      detect.ScreenKind
	skip       int
	last       Click
	purifySlot int
	pveSlot    int

	lastColoPurify *detect.ColoPurifyState
	listeners      []TransitionListener
}

// New builds an engine. A nil rng uses a clock-seeded source.
func New(cal *detect.Calibration, rng Rand, logger *slog.Logger) *Engine {
	if cal == nil {
		cal = detect.DefaultCalibration()
	}
	if rng == nil {
		rng = NewRand()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		rng:    rng,
		logger: logger,
		boost:  NewBoostTracker(),
		target: NewTargetTracker(cal.Targets, rng),
		last:   Click{Slot: -1},
	}
}

func (e *Engine) AddListener(l TransitionListener) { e.listeners = append(e.listeners, l) }

func (e *Engine) State() detect.ScreenKind { return e.state }

// Skip is the number of ticks left before the next decision.
func (e *Engine) Skip() int { return e.skip }

// LastClick is the most recent decision since the last screen change.
func (e *Engine) LastClick() (Click, bool) { return e.last, e.last.Box != image.Rectangle{} }

func (e *Engine) Boosts() *BoostTracker   { return e.boost }
func (e *Engine) Targets() *TargetTracker { return e.target }

func (e *Engine) SetTargetMode(m TargetMode) { e.target.SetMode(m) }

// Details is a short human readable status.
func (e *Engine) Details() []string {
	wait := ""
	if e.skip <= 1 {
		wait = " (click)"
	}
	return []string{
		fmt.Sprintf("Logic:%s, delay:%d%s", e.state, e.skip, wait),
		e.boost.String(),
		e.target.String(),
	}
}

// Tick consumes one detection result. det and st are nil when nothing was
// recognised or the capture failed; the engine then falls back to Unknown
// and never clicks.
func (e *Engine) Tick(det detect.Detector, st detect.ScreenState) (Click, bool) {
	e.boost.Tick()
	if det == nil || st == nil {
		e.enter(detect.ScreenUnknown)
		return Click{}, false
	}

	var (
		c  Click
		ok bool
	)
	switch s := st.(type) {
	case *detect.ColoCombatState:
		e.enter(detect.ScreenColoCombat)
		e.boost.UpdateActions(s.Slots[:])
		e.target.Update()
		c, ok = e.coloCombat(det, s)
	case *detect.ColoPurifyState:
		e.enter(detect.ScreenColoPurify)
		c, ok = e.coloPurify(det, s)
		e.lastColoPurify = s
	case *detect.MessageBoxState:
		e.enter(detect.ScreenMessageBox)
		c, ok = e.messageBox(det, s)
	case *detect.CombatState:
		e.enter(detect.ScreenCombat)
		e.lastColoPurify = nil
		e.boost.UpdateActions(s.Slots[:])
		e.target.Update()
		c, ok = e.combat(det, s)
	case *detect.PurifyState:
		e.enter(detect.ScreenPurify)
		c, ok = e.purify(det, s)
	case *detect.TitleScreenState:
		e.enter(detect.ScreenTitle)
		c, ok = e.title(det)
	default:
		e.enter(detect.ScreenUnknown)
	}
	if ok {
		c.Screen = e.state
		e.last = c
		e.logger.Debug("click decided", "screen", c.Screen, "slot", c.Slot, "label", c.Label, "next_wait", e.skip)
	}
	return c, ok
}

// enter resets the per-screen scratch on a state change. Trackers and the
// purify rotation survive.
func (e *Engine) enter(next detect.ScreenKind) {
	prev := e.state
	if prev == next {
		return
	}
	e.state = next
	e.skip = 0
	e.last = Click{Slot: -1}

	if next == detect.ScreenColoPurify && e.lastColoPurify != nil {
		p := e.lastColoPurify
		ready := p.Burst == detect.BurstReady || p.Burst == detect.BurstReadyAndCenter
		if ready && p.CountSlots()[detect.SlotBig] >= 1 {
			e.skip = PurifyReentry
		}
	}

	e.logger.Info("screen transition", "from", prev, "to", next)
	for _, l := range e.listeners {
		l(prev, next)
	}
}

// wait counts the skip counter down and reports whether this tick may act.
// On acting it rearms the counter from [lo, hi).
func (e *Engine) wait(lo, hi int) bool {
	e.skip--
	if e.skip > 0 {
		return false
	}
	e.skip = e.rng.Next(lo, hi)
	return true
}

func special(det detect.Detector, b detect.SpecialBox) (Click, bool) {
	r := det.SpecialBox(b)
	if r.Empty() {
		return Click{}, false
	}
	return Click{Box: r, Slot: -1, Label: b.String()}, true
}

func (e *Engine) coloCombat(det detect.Detector, s *detect.ColoCombatState) (Click, bool) {
	if !e.wait(5, 8) {
		return Click{}, false
	}
	sp, raw := s.SP.Safe(), s.SP.Raw()
	if sp < lowSP {
		return special(det, detect.BoxEnterPurify)
	}
	if s.Demon == detect.DemonPreparing && sp < demonSP {
		return special(det, detect.BoxEnterPurify)
	}
	switch s.Special {
	case detect.SpecialReload:
		return special(det, detect.BoxBigButton)
	case detect.SpecialRevive:
		if raw < reviveSP {
			return special(det, detect.BoxEnterPurify)
		}
		return Click{}, false
	case detect.SpecialAttackShip:
		if raw < shipSP {
			return special(det, detect.BoxEnterPurify)
		}
		return special(det, detect.BoxBigButton)
	}

	var demon []int
	if s.Demon == detect.DemonActive {
		for i, a := range s.Slots {
			if a.Valid && a.Weapon == s.DemonType {
				demon = append(demon, i)
			}
		}
	}
	return e.pickSlot(det, s.Slots[:], demon)
}

func (e *Engine) combat(det detect.Detector, s *detect.CombatState) (Click, bool) {
	if !e.wait(5, 8) {
		return Click{}, false
	}
	if s.ReloadActive {
		return special(det, detect.BoxBigButton)
	}
	return e.pickSlot(det, s.Slots[:], nil)
}

// pickSlot chooses uniformly from the first non-empty group of preferred,
// boosted and valid slots. A pending target click takes the turn instead.
func (e *Engine) pickSlot(det detect.Detector, slots []detect.ActionSlot, preferred []int) (Click, bool) {
	if box, ok := e.target.Consume(); ok {
		return Click{Box: box, Slot: -1, Label: "target"}, true
	}
	var boosted, valid []int
	for i, a := range slots {
		if !a.Valid {
			continue
		}
		valid = append(valid, i)
		if e.boost.IsBoosted(a) {
			boosted = append(boosted, i)
		}
	}
	group := valid
	switch {
	case len(preferred) > 0:
		group = preferred
	case len(boosted) > 0:
		group = boosted
	}
	if len(group) == 0 {
		return Click{}, false
	}
	idx := group[e.rng.Next(0, len(group))]
	return Click{Box: det.ActionBoxes()[idx], Slot: idx, Label: "slot"}, true
}

func (e *Engine) coloPurify(det detect.Detector, s *detect.ColoPurifyState) (Click, bool) {
	if s.Burst == detect.BurstActive {
		e.purifySlot = 0
		return Click{}, false
	}
	if !e.wait(2, 5) {
		return Click{}, false
	}

	counts := s.CountSlots()
	numBig := counts[detect.SlotBig]
	total := counts[detect.SlotSmall] + numBig + counts[detect.SlotLocked] + counts[detect.SlotLockedBig]
	if total == 0 && s.Burst != detect.BurstNone {
		e.skip = PostSpawnWait
		return Click{}, false
	}

	centered := s.Burst == detect.BurstReadyAndCenter && numBig > 0
	offCenter := s.Burst == detect.BurstReady && numBig > 0 && total >= minBurstTargets
	if centered || offCenter {
		projected := s.SP.Raw() + float32(numBig)*burstBigPct
		if projected >= burstSPLimit {
			return special(det, detect.BoxReturnToBattle)
		}
		if centered {
			return special(det, detect.BoxBurstCenter)
		}
		return Click{Box: s.BurstReadyBox(), Slot: -1, Label: "BurstReady"}, true
	}

	for range detect.PurifySlotCount {
		t := s.Slots[e.purifySlot]
		if t == detect.SlotSmall || t == detect.SlotBig {
			return Click{Box: det.ActionBoxes()[e.purifySlot], Slot: e.purifySlot, Label: "slot"}, true
		}
		e.purifySlot = (e.purifySlot + 1) % detect.PurifySlotCount
	}
	return Click{}, false
}

func (e *Engine) messageBox(det detect.Detector, s *detect.MessageBoxState) (Click, bool) {
	if !e.wait(5, 8) {
		return Click{}, false
	}
	var pos detect.ButtonPos
	switch s.Mode {
	case detect.ModeCombatReport:
		pos = detect.ButtonCombatReportOk
		if retry := s.Buttons[detect.ButtonCombatReportRetry]; retry.Type == detect.ButtonRetry && !retry.Disabled {
			e.skip = e.rng.Next(25, 30)
			pos = detect.ButtonCombatReportRetry
		}
	case detect.ModeCombatStart:
		pos = detect.ButtonCombatStart
	case detect.ModeOk, detect.ModeClose:
		pos = detect.ButtonCenter
	case detect.ModeOkCancel:
		pos = detect.ButtonCenterTwoRight
	default:
		return Click{}, false
	}
	if s.Buttons[pos].Disabled {
		return Click{}, false
	}
	return Click{Box: det.ActionBoxes()[pos], Slot: -1, Label: pos.String()}, true
}

func (e *Engine) purify(det detect.Detector, s *detect.PurifyState) (Click, bool) {
	if !e.wait(2, 5) {
		return Click{}, false
	}
	if !s.Active || s.Phase == detect.PhaseFinished {
		return Click{}, false
	}
	if s.BurstInCenter {
		return special(det, detect.BoxBurstAction)
	}
	idx := e.pveSlot
	e.pveSlot = (e.pveSlot + 1) % detect.PurifySlotCount
	return Click{Box: det.ActionBoxes()[idx], Slot: idx, Label: "slot"}, true
}

func (e *Engine) title(det detect.Detector) (Click, bool) {
	if !e.wait(5, 8) {
		return Click{}, false
	}
	return special(det, detect.BoxStartArea)
}
