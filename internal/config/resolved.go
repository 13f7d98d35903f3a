package config

import "github.com/wilbur182/runa/internal/formatter"

// FormatterSettings builds the immutable formatter.Settings this config
// resolves to for a given pane width. Each call builds a new
// *formatter.AlwaysShowSet from AlwaysShow.
func (c *Config) FormatterSettings(paneWidth int) formatter.Settings {
	return formatter.Settings{
		DirsFirst:       c.Display.DirsFirst,
		ShowHidden:      c.Display.ShowHidden,
		ShowSystem:      c.Display.ShowSystem,
		CaseInsensitive: c.Display.CaseInsensitive,
		AlwaysShow:      formatter.NewAlwaysShowSet(c.Display.AlwaysShow),
		PaneWidth:       paneWidth,
	}
}

// MaxFindResults returns the configured cap, already clamped at Load time.
func (c *Config) MaxFindResults() int {
	return c.Display.MaxFindResults
}
