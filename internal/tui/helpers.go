package tui

import (
	"path/filepath"
	"time"
)

func timeNowTUI() time.Time { return time.Now() }

func joinPathTUI(dir, name string) string { return filepath.Join(dir, name) }
