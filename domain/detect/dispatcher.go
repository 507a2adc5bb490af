package detect

import (
	"log/slog"

	"github.com/soocke/colo-bot-go/domain/classify"
	"github.com/soocke/colo-bot-go/domain/vision"
)

// Dispatcher runs detectors in a fixed priority order and returns the first
// match.
type Dispatcher struct {
	detectors []Detector
}

// NewDispatcher keeps the given order.
func NewDispatcher(detectors ...Detector) *Dispatcher {
	return &Dispatcher{detectors: detectors}
}

// DefaultDispatcher wires the six detectors in production order:
// ColoCombat, ColoPurify, MessageBox, Combat, Purify, TitleScreen.
func DefaultDispatcher(cal *Calibration, models *classify.Models, logger *slog.Logger) *Dispatcher {
	if cal == nil {
		cal = DefaultCalibration()
	}
	if models == nil {
		models = classify.Fallback()
	}
	return NewDispatcher(
		NewColoCombat(cal, models.Weapon, models.Demon, logger),
		NewColoPurify(cal, models.Purify, logger),
		NewMessageBox(cal, models.Buttons, logger),
		NewCombat(cal, models.Weapon, logger),
		NewPurify(cal, models.PurifyPvE, logger),
		NewTitleScreen(cal, logger),
	)
}

// Detectors returns the ordered list.
func (d *Dispatcher) Detectors() []Detector { return d.detectors }

// Detect returns the first detector that recognises f. A nil frame (capture
// failure) yields no match.
func (d *Dispatcher) Detect(f *vision.FrameBuffer) (Detector, ScreenState, bool) {
	if f == nil {
		return nil, nil, false
	}
	for _, det := range d.detectors {
		if s, ok := det.Detect(f); ok {
			return det, s, true
		}
	}
	return nil, nil, false
}
