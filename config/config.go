package config

import (
	"encoding/json"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"
)

// Tick cadence bounds in milliseconds.
const (
	MinTickMS     = 20
	MaxTickMS     = 1000
	DefaultTickMS = 100
)

var targetingModes = []string{"none", "deselect", "lock_strongest", "cycle_all", "cycle_top3"}

// Config holds runtime configuration for capture, recognition and input.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug   bool   `json:"debug"`
	LogFile string `json:"log_file"`
	TickMS  int    `json:"tick_ms"`

	// Game window lookup
	WindowTitle  string   `json:"window_title"`
	ProcessNames []string `json:"process_names"`

	CaptureBackend string `json:"capture_backend"`
	InputBackend   string `json:"input_backend"`

	ClickingEnabled bool   `json:"clicking_enabled"`
	RequireFocus    bool   `json:"require_focus"`
	TargetingMode   string `json:"targeting_mode"`

	ModelsDir           string `json:"models_dir"`
	ClassifierCacheSize int    `json:"classifier_cache_size"`
	JournalPath         string `json:"journal_path"`

	DarkMode bool `json:"dark_mode"`
}

func defaultCaptureBackend() string {
	if runtime.GOOS == "windows" {
		return "gdi"
	}
	return "screenshot"
}

func defaultInputBackend() string {
	if runtime.GOOS == "windows" {
		return "win32"
	}
	return "robotgo"
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		TickMS:              DefaultTickMS,
		ProcessNames:        []string{"Nox.exe", "NoxVMHandle.exe", "HD-Player.exe", "dnplayer.exe"},
		CaptureBackend:      defaultCaptureBackend(),
		InputBackend:        defaultInputBackend(),
		ClickingEnabled:     true,
		RequireFocus:        true,
		TargetingMode:       "none",
		ModelsDir:           "models",
		ClassifierCacheSize: 512,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.TickMS <= 0 {
		c.TickMS = DefaultTickMS
	}
	c.TickMS = min(max(c.TickMS, MinTickMS), MaxTickMS)

	c.WindowTitle = strings.TrimSpace(c.WindowTitle)
	names := c.ProcessNames[:0]
	for _, n := range c.ProcessNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	c.ProcessNames = names
	if len(c.ProcessNames) == 0 {
		c.ProcessNames = DefaultConfig().ProcessNames
	}

	c.CaptureBackend = strings.ToLower(strings.TrimSpace(c.CaptureBackend))
	if c.CaptureBackend == "" {
		c.CaptureBackend = defaultCaptureBackend()
	}
	c.InputBackend = strings.ToLower(strings.TrimSpace(c.InputBackend))
	if c.InputBackend == "" {
		c.InputBackend = defaultInputBackend()
	}

	c.TargetingMode = strings.ToLower(strings.TrimSpace(c.TargetingMode))
	if !slices.Contains(targetingModes, c.TargetingMode) {
		c.TargetingMode = "none"
	}

	if c.ModelsDir == "" {
		c.ModelsDir = "models"
	}
	if c.ClassifierCacheSize < 0 {
		c.ClassifierCacheSize = 0
	}
	return nil
}

// TickInterval is the tick cadence as a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
