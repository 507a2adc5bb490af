package detect

import "fmt"

// Fixed array sizes.
const (
	SlotCount       = 5
	PurifySlotCount = 8
	TargetCount     = 5
)

// ScreenKind tags which detector produced a ScreenState.
type ScreenKind int

const (
	ScreenUnknown ScreenKind = iota
	ScreenColoCombat
	ScreenColoPurify
	ScreenMessageBox
	ScreenCombat
	ScreenPurify
	ScreenTitle
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenColoCombat:
		return "ColoCombat"
	case ScreenColoPurify:
		return "ColoPurify"
	case ScreenMessageBox:
		return "MessageBox"
	case ScreenCombat:
		return "Combat"
	case ScreenPurify:
		return "Purify"
	case ScreenTitle:
		return "TitleScreen"
	default:
		return "Unknown"
	}
}

// WeaponClass of an action slot or an active demon.
type WeaponClass int

const (
	WeaponUnknown WeaponClass = iota
	WeaponInstrument
	WeaponTome
	WeaponStaff
	WeaponOrb
	weaponClassCount
)

// WeaponClassCount is the number of weapon classes including Unknown.
const WeaponClassCount = int(weaponClassCount)

func (w WeaponClass) String() string {
	switch w {
	case WeaponInstrument:
		return "Instrument"
	case WeaponTome:
		return "Tome"
	case WeaponStaff:
		return "Staff"
	case WeaponOrb:
		return "Orb"
	default:
		return "Unknown"
	}
}

// Element of an action slot.
type Element int

const (
	ElementUnknown Element = iota
	ElementFire
	ElementWater
	ElementWind
	elementCount
)

// ElementCount is the number of elements including Unknown.
const ElementCount = int(elementCount)

func (e Element) String() string {
	switch e {
	case ElementFire:
		return "Fire"
	case ElementWater:
		return "Water"
	case ElementWind:
		return "Wind"
	default:
		return "Unknown"
	}
}

// SpecialAction shown on the big button when the action bar is hidden.
type SpecialAction int

const (
	SpecialNone SpecialAction = iota
	SpecialReload
	SpecialRevive
	SpecialAttackShip
)

func (s SpecialAction) String() string {
	switch s {
	case SpecialReload:
		return "Reload"
	case SpecialRevive:
		return "Revive"
	case SpecialAttackShip:
		return "AttackShip"
	default:
		return "None"
	}
}

// DemonState of the colosseum demon summon.
type DemonState int

const (
	DemonNone DemonState = iota
	DemonPreparing
	DemonActive
)

func (d DemonState) String() string {
	switch d {
	case DemonPreparing:
		return "Preparing"
	case DemonActive:
		return "Active"
	default:
		return "None"
	}
}

// PurifySlot is the content of one purify slot.
type PurifySlot int

const (
	SlotNone PurifySlot = iota
	SlotSmall
	SlotBig
	SlotLocked
	SlotLockedBig
	purifySlotKinds
)

func (s PurifySlot) String() string {
	switch s {
	case SlotSmall:
		return "Small"
	case SlotBig:
		return "Big"
	case SlotLocked:
		return "Locked"
	case SlotLockedBig:
		return "LockedBig"
	default:
		return "None"
	}
}

// BurstState of the purify burst action.
type BurstState int

const (
	BurstNone BurstState = iota
	BurstReady
	BurstReadyAndCenter
	BurstActive
)

func (b BurstState) String() string {
	switch b {
	case BurstReady:
		return "Ready"
	case BurstReadyAndCenter:
		return "ReadyAndCenter"
	case BurstActive:
		return "Active"
	default:
		return "None"
	}
}

// ButtonColor is the dominant colour of a dialog button.
type ButtonColor int

const (
	ColorUnknown ButtonColor = iota
	ColorRed
	ColorWhite
	ColorSpec
)

func (c ButtonColor) String() string {
	switch c {
	case ColorRed:
		return "Red"
	case ColorWhite:
		return "White"
	case ColorSpec:
		return "Spec"
	default:
		return "Unknown"
	}
}

// ButtonType is the label of a dialog button.
type ButtonType int

const (
	ButtonTypeUnknown ButtonType = iota
	ButtonRetry
	ButtonOk
	ButtonCancel
	ButtonClose
	ButtonNext
	ButtonStart
	ButtonDetails
	buttonTypeCount
)

func (b ButtonType) String() string {
	switch b {
	case ButtonRetry:
		return "Retry"
	case ButtonOk:
		return "Ok"
	case ButtonCancel:
		return "Cancel"
	case ButtonClose:
		return "Close"
	case ButtonNext:
		return "Next"
	case ButtonStart:
		return "Start"
	case ButtonDetails:
		return "Details"
	default:
		return "Unknown"
	}
}

// ButtonPos indexes the fixed dialog button positions.
type ButtonPos int

const (
	ButtonUnknown ButtonPos = iota
	ButtonCombatReportRetry
	ButtonCombatReportOk
	ButtonCenter
	ButtonCenterTwoLeft
	ButtonCenterTwoRight
	ButtonCombatStart
	ButtonCombatDetails
	buttonPosCount
)

// ButtonPosCount is the size of the dialog button table.
const ButtonPosCount = int(buttonPosCount)

func (p ButtonPos) String() string {
	switch p {
	case ButtonCombatReportRetry:
		return "CombatReportRetry"
	case ButtonCombatReportOk:
		return "CombatReportOk"
	case ButtonCenter:
		return "Center"
	case ButtonCenterTwoLeft:
		return "CenterTwoLeft"
	case ButtonCenterTwoRight:
		return "CenterTwoRight"
	case ButtonCombatStart:
		return "CombatStart"
	case ButtonCombatDetails:
		return "CombatDetails"
	default:
		return "Unknown"
	}
}

// MessageMode is the dialog layout recognised from the button table.
type MessageMode int

const (
	ModeUnknown MessageMode = iota
	ModeCombatReport
	ModeCombatStart
	ModeOk
	ModeOkCancel
	ModeClose
)

func (m MessageMode) String() string {
	switch m {
	case ModeCombatReport:
		return "CombatReport"
	case ModeCombatStart:
		return "CombatStart"
	case ModeOk:
		return "Ok"
	case ModeOkCancel:
		return "OkCancel"
	case ModeClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// PurifyPhase is the PvE purify header state.
type PurifyPhase int

const (
	PhaseUnknown PurifyPhase = iota
	PhaseWaiting
	PhaseRunning
	PhaseFinished
	purifyPhaseCount
)

func (p PurifyPhase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseRunning:
		return "Running"
	case PhaseFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// SpecialBox names the non-slot click targets a detector exposes.
type SpecialBox int

const (
	BoxBigButton SpecialBox = iota
	BoxEnterPurify
	BoxBurstCenter
	BoxReturnToBattle
	BoxBurstAction
	BoxStartArea
)

func (b SpecialBox) String() string {
	switch b {
	case BoxBigButton:
		return "BigButton"
	case BoxEnterPurify:
		return "EnterPurify"
	case BoxBurstCenter:
		return "BurstCenter"
	case BoxReturnToBattle:
		return "ReturnToBattle"
	case BoxBurstAction:
		return "BurstAction"
	case BoxStartArea:
		return "StartArea"
	default:
		return "Unknown"
	}
}

// Classifier ids must land inside the enum; anything else means the model
// and the enum disagree.
func enumFromID(id, count int, what string) int {
	if id < 0 || id >= count {
		panic(fmt.Sprintf("detect: classifier returned %s id %d, want 0..%d", what, id, count-1))
	}
	return id
}

func weaponFromID(id int) WeaponClass {
	return WeaponClass(enumFromID(id, WeaponClassCount, "weapon"))
}

func purifySlotFromID(id int) PurifySlot {
	return PurifySlot(enumFromID(id, int(purifySlotKinds), "purify slot"))
}

func buttonTypeFromID(id int) ButtonType {
	return ButtonType(enumFromID(id, int(buttonTypeCount), "button"))
}

func purifyPhaseFromID(id int) PurifyPhase {
	return PurifyPhase(enumFromID(id, int(purifyPhaseCount), "purify phase"))
}
