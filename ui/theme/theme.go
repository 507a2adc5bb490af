package theme

// Palette and ttk style setup for the bot window, with a light and a dark
// variant and a colour per recognised screen for the state label.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Warn      string
	Text      string
	TextMuted string
}

var (
	light = PaletteSnapshot{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Border:    "#d0d7de",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		Warn:      "#d97706",
		Text:      "#1e293b",
		TextMuted: "#64748b",
	}
	dark = PaletteSnapshot{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Warn:      "#f59e0b",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
	}
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStateLabel    = "state.TLabel"
)

var darkMode bool

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// ScreenColor picks the state label background for a screen kind name.
func ScreenColor(kind string) string {
	p := CurrentPalette()
	switch kind {
	case "ColoCombat", "Combat":
		return p.Danger
	case "ColoPurify", "Purify":
		return p.Primary
	case "MessageBox", "TitleScreen":
		return p.Warn
	case "", "Unknown":
		return p.TextMuted
	}
	return p.Accent
}

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(CurrentPalette()) }

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(on bool) bool {
	darkMode = on
	InitStyles()
	return darkMode
}

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light")
	App.Configure(Background(p.AppBg))

	for name, bg := range map[string]string{StylePrimaryButton: p.Primary, StyleDangerButton: p.Danger} {
		StyleConfigure(name, Background(bg), Foreground("white"), Padding("4p 3p"), Borderwidth(1), Relief("ridge"))
	}
	StyleConfigure(StyleStateLabel, Foreground("white"), Background(p.Accent), Padding("4p 2p"), Borderwidth(1), Relief("groove"))
}
