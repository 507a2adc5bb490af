package detect

import (
	"fmt"
	"image"
	"strings"
)

// ScreenState is the structured description of one detected screen. The
// concrete type is one of the *State structs in this package.
type ScreenState interface {
	Kind() ScreenKind
	String() string
}

// ActionSlot is one combat action icon.
type ActionSlot struct {
	Valid    bool
	HasBoost bool
	Weapon   WeaponClass
	Element  Element
}

func (a ActionSlot) String() string {
	if !a.Valid {
		return "n/a"
	}
	s := fmt.Sprintf("%s (%s)", a.Weapon, a.Element)
	if a.HasBoost {
		s += " boost"
	}
	return s
}

// SPBar is a fill bar reading.
type SPBar struct {
	Valid      bool
	Obstructed bool
	Fill       float32
}

// Safe returns the fill when the reading is valid and unobstructed, else 1.
func (b SPBar) Safe() float32 {
	if b.Valid && !b.Obstructed {
		return b.Fill
	}
	return 1
}

// Raw returns the fill when the reading is valid, else 1.
func (b SPBar) Raw() float32 {
	if b.Valid {
		return b.Fill
	}
	return 1
}

func (b SPBar) String() string {
	if !b.Valid {
		return "SP> n/a"
	}
	if b.Obstructed {
		return fmt.Sprintf("SP> %.0f%%, obstructed", b.Fill*100)
	}
	return fmt.Sprintf("SP> %.0f%%", b.Fill*100)
}

// CombatBase is shared by both combat screens.
type CombatBase struct {
	SP    SPBar
	Slots [SlotCount]ActionSlot
}

func (c *CombatBase) describe(sb *strings.Builder) {
	sb.WriteString(c.SP.String())
	for i, s := range c.Slots {
		fmt.Fprintf(sb, "\nAction[%d]> %s", i, s)
	}
}

// ColoCombatState is the colosseum combat screen.
type ColoCombatState struct {
	CombatBase
	Special   SpecialAction
	Demon     DemonState
	DemonType WeaponClass
}

func (*ColoCombatState) Kind() ScreenKind { return ScreenColoCombat }

func (s *ColoCombatState) String() string {
	var sb strings.Builder
	s.describe(&sb)
	fmt.Fprintf(&sb, "\nSpecialAction> %s", s.Special)
	if s.Demon == DemonActive {
		fmt.Fprintf(&sb, "\nDemon> %s %s", s.Demon, s.DemonType)
	} else {
		fmt.Fprintf(&sb, "\nDemon> %s", s.Demon)
	}
	return sb.String()
}

// CombatState is the regular combat screen.
type CombatState struct {
	CombatBase
	ReloadActive bool
}

func (*CombatState) Kind() ScreenKind { return ScreenCombat }

func (s *CombatState) String() string {
	var sb strings.Builder
	s.describe(&sb)
	fmt.Fprintf(&sb, "\nReloadActive> %v", s.ReloadActive)
	return sb.String()
}

// ColoPurifyState is the colosseum purify screen.
type ColoPurifyState struct {
	SP         SPBar
	Burst      BurstState
	MarkerPctX float32
	MarkerPctY float32
	MarkerPos  image.Point
	Slots      [PurifySlotCount]PurifySlot
}

func (*ColoPurifyState) Kind() ScreenKind { return ScreenColoPurify }

// BurstReadyBox is the click target below a burst marker found off-center.
func (s *ColoPurifyState) BurstReadyBox() image.Rectangle {
	return box(s.MarkerPos.X-15, s.MarkerPos.Y+40, 30, 30)
}

// CountSlots returns how many slots hold each type, indexed by PurifySlot.
func (s *ColoPurifyState) CountSlots() (counts [purifySlotKinds]int) {
	for _, t := range s.Slots {
		counts[t]++
	}
	return counts
}

func (s *ColoPurifyState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SP bar> valid:%v, fill:%.2f%%\n", s.SP.Valid, s.SP.Fill*100)
	fmt.Fprintf(&sb, "Burst> %s", s.Burst)
	for i, t := range s.Slots {
		fmt.Fprintf(&sb, "\nSlot[%d]: %s", i, t)
	}
	return sb.String()
}

// PurifyState is the PvE purify screen.
type PurifyState struct {
	Active        bool
	BurstInCenter bool
	Phase         PurifyPhase
}

func (*PurifyState) Kind() ScreenKind { return ScreenPurify }

func (s *PurifyState) String() string {
	return fmt.Sprintf("Active: %v, burstInCenter: %v, phase: %s", s.Active, s.BurstInCenter, s.Phase)
}

// Button is one dialog button reading.
type Button struct {
	Type     ButtonType
	Color    ButtonColor
	Disabled bool
}

func (b Button) String() string {
	if b.Color == ColorUnknown {
		return "n/a"
	}
	s := fmt.Sprintf("%s %s", b.Color, b.Type)
	if b.Disabled {
		s += " (disabled)"
	}
	return s
}

// MessageBoxState is a recognised dialog.
type MessageBoxState struct {
	Mode    MessageMode
	Buttons [ButtonPosCount]Button
}

func (*MessageBoxState) Kind() ScreenKind { return ScreenMessageBox }

func (s *MessageBoxState) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mode> %s", s.Mode)
	for i := 1; i < ButtonPosCount; i++ {
		if s.Buttons[i].Color != ColorUnknown {
			fmt.Fprintf(&sb, "\n%s> %s", ButtonPos(i), s.Buttons[i])
		}
	}
	return sb.String()
}

// TitleScreenState is the game's title screen.
type TitleScreenState struct{}

func (*TitleScreenState) Kind() ScreenKind { return ScreenTitle }

func (*TitleScreenState) String() string { return "Title screen" }
