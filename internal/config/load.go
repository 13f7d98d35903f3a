package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wilbur182/runa/internal/keymap"
)

const envConfigPath = "RUNA_CONFIG"

// rawConfig is the JSON-facing shape, read verbatim off disk before any
// clamping or normalization is applied.
type rawConfig struct {
	Display DisplayConfig   `json:"display"`
	Editor  EditorConfig    `json:"editor"`
	Keymap  keymap.Bindings `json:"keymap"`
}

// ConfigPath returns the path runa reads and writes its configuration
// from. RUNA_CONFIG overrides the default "~/.config/runa/config.json".
func ConfigPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".runa", "config.json")
	}
	return filepath.Join(home, ".config", "runa", "config.json")
}

// Load reads the configuration from ConfigPath(), falling back to
// Default() if the file does not exist. Fields present in the file
// override the default; max_find_results is clamped after loading.
func Load(log *slog.Logger) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigPath())
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	raw := rawConfig{Display: cfg.Display, Editor: cfg.Editor}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg.Display = raw.Display
	cfg.Editor = raw.Editor
	if !bindingsEmpty(raw.Keymap) {
		cfg.Keymap = raw.Keymap
	}
	cfg.Display.MaxFindResults = ClampFindResults(log, cfg.Display.MaxFindResults)

	return cfg, nil
}

// Save writes cfg to ConfigPath(), creating the parent directory if
// needed.
func Save(cfg *Config) error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	sc := rawConfig{Display: cfg.Display, Editor: cfg.Editor, Keymap: cfg.Keymap}
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// WriteInit writes a config file to ConfigPath(), either the minimal
// Default() (full=false) or Default() with every field populated and
// commented-equivalent defaults spelled out explicitly (full=true). Both
// variants marshal the same struct; "full" exists as a distinct entry
// point so callers (e.g. --init vs --init-full) can diverge later
// without changing the Load/Save contract.
func WriteInit(full bool) error {
	cfg := Default()
	if full {
		cfg.Display.AlwaysShow = []string{}
	}
	return Save(cfg)
}

func bindingsEmpty(b keymap.Bindings) bool {
	return len(b.GoUp) == 0 && len(b.GoDown) == 0 && len(b.GoParent) == 0 &&
		len(b.GoIntoDir) == 0 && len(b.ToggleMarker) == 0 && len(b.Open) == 0 &&
		len(b.Delete) == 0 && len(b.Copy) == 0 && len(b.Paste) == 0 &&
		len(b.Rename) == 0 && len(b.Create) == 0 && len(b.CreateDirectory) == 0 &&
		len(b.Filter) == 0 && len(b.ShowInfo) == 0 && len(b.FuzzyFind) == 0 &&
		len(b.YankPath) == 0 && len(b.Quit) == 0
}
