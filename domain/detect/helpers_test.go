package detect

import (
	"image"
	"io"
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type rgb struct{ r, g, b uint8 }

var (
	black     = rgb{0, 0, 0}
	white     = rgb{255, 255, 255}
	chatLight = rgb{230, 230, 230}
	chatDark  = rgb{35, 35, 35}
	orange    = rgb{255, 85, 0}    // hue 20, mono 115
	spGold    = rgb{255, 200, 0}   // hue 47, mono 197
	red       = rgb{255, 0, 0}     // hue 0, sat 100, value 50
	burstGlow = rgb{255, 150, 50}  // hue 29, mono 165
	logoBlue  = rgb{0, 100, 255}   // hue 216, mono 90
	grey150   = rgb{150, 150, 150} // sat 0, value 59
)

func newFrame() *vision.FrameBuffer {
	return vision.NewFrameBuffer(vision.LogicalWidth, vision.LogicalHeight)
}

func paint(f *vision.FrameBuffer, c rgb, pts ...vision.Point) {
	for _, p := range pts {
		f.Set(p.X, p.Y, c.r, c.g, c.b)
	}
}

func paintOffset(f *vision.FrameBuffer, c rgb, off vision.Point, pts ...vision.Point) {
	for _, p := range pts {
		f.Set(p.X+off.X, p.Y+off.Y, c.r, c.g, c.b)
	}
}

func fill(f *vision.FrameBuffer, c rgb, r image.Rectangle) {
	f.Fill(r, c.r, c.g, c.b)
}

func paintChatBox(f *vision.FrameBuffer, cal *Calibration) {
	paint(f, chatLight, cal.Chat.Inner...)
	paint(f, chatDark, cal.Chat.Outer...)
}

// coloCombatFrame passes the chat and lifeforce gates with a full SP bar.
func coloCombatFrame(cal *Calibration) *vision.FrameBuffer {
	f := newFrame()
	paintChatBox(f, cal)
	paint(f, orange, cal.Colo.Lifeforce...)
	sp := cal.Combat.SPBar
	fill(f, spGold, image.Rect(sp.Min.X, sp.Min.Y, sp.Max.X+1, sp.Max.Y))
	return f
}

func constModels(weapon, demon, purify, pve, buttons int) *classify.Models {
	return &classify.Models{
		Weapon:    classify.Constant{ID: weapon},
		Demon:     classify.Constant{ID: demon},
		Purify:    classify.Constant{ID: purify},
		PurifyPvE: classify.Constant{ID: pve},
		Buttons:   classify.Constant{ID: buttons},
	}
}
