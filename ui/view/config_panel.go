package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/colo-bot-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings form. ApplyChanges writes the parsed values
// back into *config.Config, saves it and notifies the app.
type ConfigPanel interface {
	Build(startRow int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config and persists
}

type configPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func(*config.Config)
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget
}

// NewConfigPanel creates the view bound to cfg. onApplied may be nil.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApplied func(*config.Config)) ConfigPanel {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApplied: onApplied, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("tickMS", "Tick (ms)", strconv.Itoa(c.TickMS))
	makeRow("windowTitle", "Window Title", c.WindowTitle)
	makeRow("processNames", "Process Names (comma separated)", strings.Join(c.ProcessNames, ", "))
	makeRow("captureBackend", "Capture Backend", c.CaptureBackend)
	makeRow("inputBackend", "Input Backend", c.InputBackend)
	makeRow("requireFocus", "Require Focus (true/false)", fmt.Sprintf("%t", c.RequireFocus))
	makeRow("targetingMode", "Targeting Mode", c.TargetingMode)
	makeRow("modelsDir", "Models Dir", c.ModelsDir)
	makeRow("classifierCacheSize", "Classifier Cache Size", strconv.Itoa(c.ClassifierCacheSize))
	makeRow("journalPath", "Journal Path (empty = off)", c.JournalPath)
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		if i, ok := parseIntField(v.text(v.widgets[id])); ok {
			*dst = i
		}
	}
	assignBool := func(id string, dst *bool) {
		if b, ok := parseBoolLoose(v.text(v.widgets[id])); ok {
			*dst = b
		}
	}
	assignString := func(id string, dst *string) {
		if w := v.widgets[id]; w != nil {
			*dst = strings.TrimSpace(v.text(w))
		}
	}
	assignInt("tickMS", &cfg.TickMS)
	assignString("windowTitle", &cfg.WindowTitle)
	cfg.ProcessNames = parseList(v.text(v.widgets["processNames"]))
	assignString("captureBackend", &cfg.CaptureBackend)
	assignString("inputBackend", &cfg.InputBackend)
	assignBool("requireFocus", &cfg.RequireFocus)
	assignString("targetingMode", &cfg.TargetingMode)
	assignString("modelsDir", &cfg.ModelsDir)
	assignInt("classifierCacheSize", &cfg.ClassifierCacheSize)
	assignString("journalPath", &cfg.JournalPath)
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		v.logger.Error("config save failed", "error", err)
	} else {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied(v.cfg)
	}
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
