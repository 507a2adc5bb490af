package detect

import (
	"image"

	"github.com/soocke/colo-bot-go/domain/vision"
)

var (
	box = vision.Box
	pt  = vision.Pt
)

// Calibration holds every region, sample point and colour rule the
// detectors use. All coordinates are in the logical 338x600 frame. A
// Calibration is built once and never mutated.
type Calibration struct {
	Chat       ChatTable
	Combat     CombatTable
	Colo       ColoTable
	Chest      ChestTable
	ColoPurify ColoPurifyTable
	Purify     PurifyTable
	Message    MessageTable
	Title      TitleTable
	Targets    TargetTable
}

// ChatTable is the chat box signature shared by the combat and purify screens.
type ChatTable struct {
	Inner     []vision.Point
	Outer     []vision.Point
	InnerRule vision.MonoRule
	OuterRule vision.MonoRule
}

// CombatTable covers the bottom action bar common to both combat screens.
type CombatTable struct {
	SPBar   image.Rectangle
	SPFull  vision.HueMonoRule
	SPEmpty vision.HueMonoRule

	Slots       [SlotCount]image.Rectangle
	Icon        image.Rectangle // relative to slot
	Avail       image.Rectangle // relative to slot
	AvailRule   vision.MonoRule
	Elements    []image.Rectangle // relative to slot
	ElementArea image.Rectangle   // relative to slot
	ElementMono int               // samples at or above are ignored

	BoostInner     []vision.Point // relative to slot, ordered by y
	BoostOuter     []vision.Point
	BoostOuterRule vision.MonoRule
	BoostWildcard  int // mono at or above marks a highlight sample
	BoostMaxDrops  int

	BigButton        image.Rectangle
	BigButtonSamples []vision.Point
	BigButtonHueDiff int
	Reload           vision.HueMonoRule
}

// ColoTable is specific to the colosseum combat screen.
type ColoTable struct {
	Lifeforce  []vision.Point
	LifeforceR vision.HueMonoRule
	LifeforceG vision.HueMonoRule

	Revive vision.HueMonoRule
	Ship   vision.HueMonoRule

	DemonLeft     vision.Point
	DemonRight    vision.Point
	DemonActiveI  []vision.Point
	DemonActiveO  []vision.Point
	DemonLI       vision.HSVRule
	DemonLO       vision.HSVRule
	DemonRI       vision.HSVRule
	DemonRO       vision.HSVRule
	DemonPrepI    []vision.Point
	DemonPrepO    []vision.Point
	DemonPrepIR   vision.HSVRule
	DemonPrepOR   vision.HSVRule
	DemonType     image.Rectangle
	EnterPurify   image.Rectangle
}

// ChestTable identifies the reward chests on the regular combat screen.
type ChestTable struct {
	Gold, Silver, Bronze vision.Point
	Area                 image.Rectangle // relative to each chest
}

// ColoPurifyTable covers the colosseum purify screen.
type ColoPurifyTable struct {
	PlateInner     []vision.Point
	PlateOuter     []vision.Point
	PlateInnerRule vision.MonoRule
	PlateOuterRule vision.MonoRule
	PlateStrip     image.Rectangle
	PlateHueDiff   int
	PlateMonoDiff  int

	SPBar image.Rectangle

	BurstActive     image.Rectangle
	BurstActiveMono float32
	BurstCenter     image.Rectangle
	BurstCenterRule vision.HueMonoRule
	BurstArea       image.Rectangle
	BurstMarker     vision.HSVRule
	MarkerInner     []vision.Point // relative to the marker tip
	MarkerOuter     []vision.Point

	Slots        [PurifySlotCount]vision.Point
	SlotFeatures vision.FeatureSpec // area relative to slot origin

	BurstAction    image.Rectangle
	ReturnToBattle image.Rectangle
}

// PurifyTable covers the PvE purify screen.
type PurifyTable struct {
	LabelI, LabelO   []vision.Point
	TimerI, TimerO   []vision.Point
	LabelIRule       vision.MonoRule
	LabelORule       vision.MonoRule
	TimerIRule       vision.MonoRule
	TimerORule       vision.HSVRule
	Pause            []vision.Point
	PauseRule        vision.MonoRule
	BurstCenter      image.Rectangle
	BurstCenterRule  vision.HueMonoRule
	BurstAction      image.Rectangle
	Slots            [PurifySlotCount]image.Rectangle
	Header           vision.FeatureSpec
}

// MessageTable covers dialog buttons.
type MessageTable struct {
	Buttons       [ButtonPosCount]image.Rectangle
	StripInsetX   int
	StripOffsetY  int
	Red           vision.HSVRule
	White         vision.HSVRule
	Spec          vision.HSVRule
	RedDisabled   int
	WhiteDisabled int
	GlyphW        int
	GlyphH        int
	GlyphGridW    int
	GlyphGridH    int
	Modes         []ModeRow
}

// TitleTable covers the game logo on the title screen.
type TitleTable struct {
	White, Black, Blue, Red                 []vision.Point
	WhiteRule, BlackRule                    vision.MonoRule
	BlueRule, RedRule                       vision.HueMonoRule
	StartArea                               image.Rectangle
}

// TargetTable lists the enemy boxes used by target rotation.
type TargetTable struct {
	Enemies  [TargetCount]image.Rectangle
	NoTarget image.Rectangle
}

// DefaultCalibration returns the tables for the logical frame.
func DefaultCalibration() *Calibration {
	c := &Calibration{}

	c.Chat = ChatTable{
		Inner:     []vision.Point{pt(150, 572), pt(150, 588), pt(200, 572), pt(200, 588)},
		Outer:     []vision.Point{pt(136, 565), pt(136, 597), pt(215, 565), pt(215, 597)},
		InnerRule: vision.Mono(210, 250),
		OuterRule: vision.Mono(20, 50),
	}

	c.Combat = CombatTable{
		SPBar:   box(86, 484, 164, 1),
		SPFull:  vision.HueMono(40, 55, 90, 255),
		SPEmpty: vision.HueMono(0, 360, 0, 50),
		Slots: [SlotCount]image.Rectangle{
			box(17, 501, 52, 52), box(80, 501, 52, 52), box(143, 501, 52, 52),
			box(206, 501, 52, 52), box(269, 501, 52, 52),
		},
		Icon:        box(39, 4, 10, 10),
		Avail:       box(3, 44, 4, 4),
		AvailRule:   vision.Mono(180, 255),
		Elements:    []image.Rectangle{box(3, 3, 28, 2), box(35, 47, 14, 2), box(47, 36, 2, 10)},
		ElementArea: box(3, 3, 46, 46),
		ElementMono: 210,
		BoostInner: []vision.Point{
			pt(49, 6), pt(49, 12), pt(49, 18), pt(49, 24),
			pt(49, 30), pt(49, 36), pt(49, 42), pt(49, 48),
		},
		BoostOuter:       []vision.Point{pt(51, 10), pt(51, 22), pt(51, 34), pt(51, 46)},
		BoostOuterRule:   vision.Mono(61, 255),
		BoostWildcard:    230,
		BoostMaxDrops:    3,
		BigButton:        box(103, 506, 131, 44),
		BigButtonSamples: []vision.Point{pt(106, 506), pt(170, 506), pt(230, 506), pt(106, 551), pt(170, 551), pt(230, 551)},
		BigButtonHueDiff: 20,
		Reload:           vision.HueMono(26, 60, 50, 255),
	}

	c.Colo = ColoTable{
		Lifeforce:    []vision.Point{pt(127, 83), pt(168, 71), pt(206, 64), pt(254, 64), pt(294, 71), pt(331, 83)},
		LifeforceR:   vision.HueMono(12, 27, 90, 255),
		LifeforceG:   vision.HueMono(82, 97, 90, 255),
		Revive:       vision.HueMono(80, 120, 50, 255),
		Ship:         vision.HueMono(0, 25, 50, 255),
		DemonLeft:    pt(60, 148),
		DemonRight:   pt(410, 148),
		DemonActiveI: []vision.Point{pt(3, 6), pt(10, 6), pt(16, 6), pt(21, 10), pt(29, 7)},
		DemonActiveO: []vision.Point{pt(6, 4), pt(14, 6), pt(16, 2), pt(20, 6), pt(31, 6)},
		DemonLI:      vision.HSV(50, 100, 20, 30, 75, 95),
		DemonLO:      vision.HSV(110, 140, 55, 75, 25, 35),
		DemonRI:      vision.HSV(0, 50, 30, 50, 70, 90),
		DemonRO:      vision.HSV(0, 20, 85, 100, 30, 40),
		DemonPrepI:   []vision.Point{pt(341, 163), pt(336, 163), pt(331, 163), pt(325, 163), pt(312, 163), pt(304, 163)},
		DemonPrepO:   []vision.Point{pt(339, 163), pt(334, 163), pt(329, 163), pt(322, 161), pt(312, 161), pt(306, 161)},
		DemonPrepIR:  vision.HSV(0, 25, 0, 50, 80, 100),
		DemonPrepOR:  vision.HSV(10, 20, 70, 85, 20, 35),
		DemonType:    box(199, 118, 16, 16),
		EnterPurify:  box(365, 666, 83, 40),
	}

	c.Chest = ChestTable{
		Gold:   pt(299, 57),
		Silver: pt(354, 57),
		Bronze: pt(409, 57),
		Area:   box(5, 8, 6, 2),
	}

	markerTip := pt(12, 13)
	rel := func(pts ...vision.Point) []vision.Point {
		out := make([]vision.Point, len(pts))
		for i, p := range pts {
			out[i] = p.Sub(markerTip)
		}
		return out
	}
	c.ColoPurify = ColoPurifyTable{
		PlateInner:      []vision.Point{pt(100, 9), pt(118, 8), pt(218, 8), pt(235, 9)},
		PlateOuter:      []vision.Point{pt(131, 11), pt(205, 11)},
		PlateInnerRule:  vision.Mono(80, 230),
		PlateOuterRule:  vision.Mono(0, 40),
		PlateStrip:      box(132, 8, 74, 1),
		PlateHueDiff:    35,
		PlateMonoDiff:   25,
		SPBar:           box(34, 66, 296, 1),
		BurstActive:     box(1, 235, 5, 90),
		BurstActiveMono: 15,
		BurstCenter:     box(153, 302, 30, 2),
		BurstCenterRule: vision.HueMono(20, 40, 130, 195),
		BurstArea:       box(65, 90, 190, 285),
		BurstMarker:     vision.HSV(0, 120, 0, 100, 80, 100),
		MarkerInner:     rel(pt(11, 2), pt(13, 2), pt(21, 9), pt(4, 6), pt(20, 6), pt(8, 10), pt(16, 10)),
		MarkerOuter:     rel(pt(8, 4), pt(16, 4), pt(12, 7)),
		Slots: [PurifySlotCount]vision.Point{
			pt(185, 98), pt(259, 162), pt(258, 257), pt(221, 349),
			pt(92, 359), pt(16, 294), pt(52, 202), pt(52, 103),
		},
		SlotFeatures:   vision.FeatureSpec{Area: box(0, 0, 48, 64), GridW: 16, GridH: 16, Value: vision.HueMonoLevel(16)},
		BurstAction:    box(154, 244, 30, 30),
		ReturnToBattle: box(254, 11, 75, 19),
	}

	c.Purify = PurifyTable{
		LabelI:          []vision.Point{pt(23, 40), pt(23, 47)},
		LabelO:          []vision.Point{pt(22, 40), pt(22, 47)},
		TimerI:          []vision.Point{pt(154, 19), pt(154, 22), pt(161, 19), pt(161, 22)},
		TimerO:          []vision.Point{pt(156, 18), pt(156, 23), pt(163, 18), pt(163, 23)},
		LabelIRule:      vision.Mono(170, 255),
		LabelORule:      vision.Mono(0, 140),
		TimerIRule:      vision.Mono(170, 245),
		TimerORule:      vision.HSV(-5, 15, 50, 100, 10, 60),
		Pause:           []vision.Point{pt(303, 24), pt(308, 24)},
		PauseRule:       vision.Mono(200, 255),
		BurstCenter:     box(153, 343, 30, 2),
		BurstCenterRule: vision.HueMono(20, 40, 130, 195),
		BurstAction:     box(156, 288, 30, 30),
		Slots: [PurifySlotCount]image.Rectangle{
			box(184, 203, 32, 32), box(242, 276, 32, 32), box(255, 360, 32, 32), box(224, 455, 32, 32),
			box(146, 445, 32, 32), box(64, 395, 32, 32), box(47, 298, 32, 32), box(97, 219, 32, 32),
		},
		Header: vision.FeatureSpec{Area: box(129, 30, 80, 32), GridW: 20, GridH: 8, Value: vision.MonoLevel(16)},
	}

	c.Message = MessageTable{
		Buttons: [ButtonPosCount]image.Rectangle{
			ButtonUnknown:           {},
			ButtonCombatReportRetry: box(22, 520, 130, 36),
			ButtonCombatReportOk:    box(186, 520, 130, 36),
			ButtonCenter:            box(104, 372, 130, 36),
			ButtonCenterTwoLeft:     box(30, 372, 130, 36),
			ButtonCenterTwoRight:    box(178, 372, 130, 36),
			ButtonCombatStart:       box(186, 540, 130, 36),
			ButtonCombatDetails:     box(22, 540, 130, 36),
		},
		StripInsetX:   8,
		StripOffsetY:  6,
		Red:           vision.HSV(-10, 20, 40, 100, 20, 100),
		White:         vision.HSV(0, 360, 0, 15, 40, 100),
		Spec:          vision.HSV(35, 60, 40, 100, 20, 100),
		RedDisabled:   40,
		WhiteDisabled: 70,
		GlyphW:        64,
		GlyphH:        20,
		GlyphGridW:    16,
		GlyphGridH:    5,
		Modes:         defaultModes(),
	}

	c.Title = TitleTable{
		White: []vision.Point{
			pt(266, 551), pt(266, 556), pt(266, 562),
			pt(290, 551), pt(290, 556), pt(290, 562),
			pt(265, 576), pt(278, 576), pt(291, 576),
			pt(265, 576), pt(278, 576),
		},
		Black: []vision.Point{
			pt(303, 550), pt(312, 550), pt(321, 550), pt(329, 550),
			pt(303, 554), pt(312, 554), pt(321, 554), pt(329, 554),
			pt(303, 571), pt(329, 571),
			pt(303, 575), pt(312, 575), pt(321, 575), pt(329, 575),
		},
		Blue:      []vision.Point{pt(278, 554), pt(278, 558), pt(278, 561), pt(278, 565)},
		Red:       []vision.Point{pt(309, 569), pt(313, 569), pt(318, 569), pt(322, 569)},
		WhiteRule: vision.Mono(253, 255),
		BlackRule: vision.Mono(0, 3),
		BlueRule:  vision.HueMono(200, 220, 50, 100),
		RedRule:   vision.HueMono(0, 20, 20, 80),
		StartArea: box(25, 265, 280, 130),
	}

	c.Targets = TargetTable{
		Enemies: [TargetCount]image.Rectangle{
			box(14, 190, 46, 60), box(80, 190, 46, 60), box(146, 190, 46, 60),
			box(212, 190, 46, 60), box(278, 190, 46, 60),
		},
		NoTarget: box(120, 420, 100, 20),
	}
	return c
}
