// Package config holds runa's user-facing JSON configuration: display
// settings, the editor command, find limits, and key bindings.
package config

import (
	"log/slog"

	"github.com/wilbur182/runa/internal/keymap"
)

const (
	minFindResults     = 15
	defaultFindResults = 2000
	maxFindResultsCap  = 1000000
)

// Config is the root configuration structure, in the teacher's flat
// top-level style.
type Config struct {
	Display DisplayConfig   `json:"display"`
	Editor  EditorConfig    `json:"editor"`
	Keymap  keymap.Bindings `json:"keymap"`
}

// DisplayConfig controls sort order, visibility, and find limits.
type DisplayConfig struct {
	DirsFirst       bool     `json:"dirsFirst"`
	ShowHidden      bool     `json:"showHidden"`
	ShowSystem      bool     `json:"showSystem"`
	CaseInsensitive bool     `json:"caseInsensitive"`
	AlwaysShow      []string `json:"alwaysShow"`
	MaxFindResults  int      `json:"maxFindResults"`
	DirMarker       bool     `json:"dirMarker"`
	SelectionMarker bool     `json:"selectionMarker"`
}

// EditorConfig names the external editor command used by the Open action.
type EditorConfig struct {
	Cmd string `json:"cmd"`
}

// Default returns runa's built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			DirsFirst:       true,
			ShowHidden:      false,
			ShowSystem:      false,
			CaseInsensitive: false,
			AlwaysShow:      nil,
			MaxFindResults:  defaultFindResults,
			DirMarker:       true,
			SelectionMarker: true,
		},
		Editor: EditorConfig{Cmd: defaultEditorCmd()},
		Keymap: keymap.Default(),
	}
}

// ClampFindResults clamps value into [minFindResults, maxFindResultsCap],
// logging a warning via log when it had to.
func ClampFindResults(log *slog.Logger, value int) int {
	clamped := value
	if clamped < minFindResults {
		clamped = minFindResults
	}
	if clamped > maxFindResultsCap {
		clamped = maxFindResultsCap
	}
	if clamped != value && log != nil {
		log.Warn("max_find_results out of range, clamped",
			"value", value, "min", minFindResults, "max", maxFindResultsCap, "clamped", clamped)
	}
	return clamped
}

func defaultEditorCmd() string {
	return "vi"
}
