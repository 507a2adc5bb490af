package classify

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
)

// ModelSpec names a weight file and the shape callers feed it.
type ModelSpec struct {
	File     string
	Features int
	Classes  int
}

// Known model files under the models directory.
var (
	WeaponModel    = ModelSpec{File: "weapons.txt", Features: 10 * 10, Classes: 5}
	DemonModel     = ModelSpec{File: "demon.txt", Features: 16 * 16, Classes: 5}
	PurifyModel    = ModelSpec{File: "purify.txt", Features: 16 * 16, Classes: 5}
	PurifyPvEModel = ModelSpec{File: "purify_pve.txt", Features: 20 * 8, Classes: 4}
	ButtonModel    = ModelSpec{File: "buttons.txt", Features: 16 * 5, Classes: 8}
)

// Models is the set of classifiers the detectors consume.
type Models struct {
	Weapon    Classifier
	Demon     Classifier
	Purify    Classifier
	PurifyPvE Classifier
	Buttons   Classifier
}

// Fallback returns a model set where every classifier answers 0.
func Fallback() *Models {
	return &Models{
		Weapon:    Constant{},
		Demon:     Constant{},
		Purify:    Constant{},
		PurifyPvE: Constant{},
		Buttons:   Constant{},
	}
}

// LoadModels reads every model from dir. Missing files fall back to a
// constant classifier with a warning; malformed or mis-shaped files are errors.
func LoadModels(dir string, cacheSize int, logger *slog.Logger) (*Models, error) {
	load := func(spec ModelSpec) (Classifier, error) {
		path := filepath.Join(dir, spec.File)
		m, err := LoadMLP(path)
		if errors.Is(err, fs.ErrNotExist) {
			if logger != nil {
				logger.Warn("classifier model missing, using fallback", "path", path)
			}
			return Constant{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("classify: load %s: %w", spec.File, err)
		}
		if m.Inputs != spec.Features || m.Outputs != spec.Classes {
			return nil, fmt.Errorf("classify: %s has shape %dx%d, want %dx%d",
				spec.File, m.Inputs, m.Outputs, spec.Features, spec.Classes)
		}
		if logger != nil {
			logger.Debug("classifier model loaded", "path", path, "hidden", m.Hidden)
		}
		return NewCached(m, cacheSize)
	}

	var err error
	out := &Models{}
	if out.Weapon, err = load(WeaponModel); err != nil {
		return nil, err
	}
	if out.Demon, err = load(DemonModel); err != nil {
		return nil, err
	}
	if out.Purify, err = load(PurifyModel); err != nil {
		return nil, err
	}
	if out.PurifyPvE, err = load(PurifyPvEModel); err != nil {
		return nil, err
	}
	if out.Buttons, err = load(ButtonModel); err != nil {
		return nil, err
	}
	return out, nil
}
